// Copyright (c) 2025 Chakib Ben Ziane <contact@blob42.xyz>  and [`temply` contributors](https://github.com/blob42/temply/graphs/contributors).
// All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// This file is part of Temply.
//
// Temply is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// Temply is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with temply.  If not, see <http://www.gnu.org/licenses/>.

package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDebounce = 20 * time.Millisecond
	waitFor      = 3 * time.Second
	quietPeriod  = 300 * time.Millisecond
)

func startWatcher(t *testing.T, onChange ChangeFunc, opts ...Option) (*Watcher, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "temply.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	w, err := New(path, onChange, append([]Option{WithDebounce(testDebounce)}, opts...)...)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	t.Cleanup(func() {
		w.Stop()
		cancel()
	})
	return w, path
}

func TestNewRequiresCallback(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x"), nil)
	assert.Error(t, err)
}

func TestWriteTriggersChange(t *testing.T) {
	var calls atomic.Int32
	_, path := startWatcher(t, func() error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, os.WriteFile(path, []byte("foo\n"), 0644))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, waitFor, 10*time.Millisecond)
}

func TestRenameOverTriggersChange(t *testing.T) {
	var calls atomic.Int32
	_, path := startWatcher(t, func() error {
		calls.Add(1)
		return nil
	})

	tmp := filepath.Join(filepath.Dir(path), "new.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("bar\n"), 0644))
	require.NoError(t, os.Rename(tmp, path))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, waitFor, 10*time.Millisecond)
}

func TestBurstIsDebounced(t *testing.T) {
	var calls atomic.Int32
	_, path := startWatcher(t, func() error {
		calls.Add(1)
		return nil
	}, WithDebounce(200*time.Millisecond))

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0644))
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, waitFor, 10*time.Millisecond)
	time.Sleep(quietPeriod)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOtherFilesIgnored(t *testing.T) {
	var calls atomic.Int32
	_, path := startWatcher(t, func() error {
		calls.Add(1)
		return nil
	})

	other := filepath.Join(filepath.Dir(path), "temply.txt.lock")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))

	time.Sleep(quietPeriod)
	assert.Zero(t, calls.Load())
}

func TestSuspendDropsEvents(t *testing.T) {
	var calls atomic.Int32
	w, path := startWatcher(t, func() error {
		calls.Add(1)
		return nil
	})

	w.Suspend()
	require.True(t, w.Suspended())
	require.NoError(t, os.WriteFile(path, []byte("while suspended\n"), 0644))
	time.Sleep(quietPeriod)
	w.Resume()

	assert.False(t, w.Suspended())
	assert.Zero(t, calls.Load())

	require.NoError(t, os.WriteFile(path, []byte("after resume\n"), 0644))
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, waitFor, 10*time.Millisecond)
}

func TestSuspendNests(t *testing.T) {
	w, _ := startWatcher(t, func() error { return nil })

	w.Suspend()
	w.Suspend()
	w.Resume()
	assert.True(t, w.Suspended())
	w.Resume()
	assert.False(t, w.Suspended())

	w.Resume()
	assert.False(t, w.Suspended(), "extra Resume must not go negative")
}

func TestCallbackRunsSuspended(t *testing.T) {
	suspended := make(chan bool, 1)
	var current atomic.Pointer[Watcher]
	w, path := startWatcher(t, func() error {
		select {
		case suspended <- current.Load().Suspended():
		default:
		}
		return nil
	})
	current.Store(w)

	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))

	select {
	case s := <-suspended:
		assert.True(t, s)
	case <-time.After(waitFor):
		t.Fatal("change callback not called")
	}
	assert.Eventually(t, func() bool { return !w.Suspended() }, waitFor, 10*time.Millisecond)
}

func TestStopIsIdempotent(t *testing.T) {
	w, _ := startWatcher(t, func() error { return nil })
	w.Stop()
	w.Stop()
}
