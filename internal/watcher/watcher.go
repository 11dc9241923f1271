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

// Package watcher reports changes made to the template database by other
// programs.
//
// The parent directory is watched rather than the file itself: editors
// commonly save by writing a new file and renaming it over the old one, and
// the store does the same, which would silently drop a watch placed on the
// file.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/blob42/temply/pkg/logging"
)

const DefaultDebounce = 100 * time.Millisecond

var log = logging.GetLogger("watcher")

// ChangeFunc is called once per settled burst of changes to the file.
type ChangeFunc func() error

type Watcher struct {
	mu sync.Mutex

	fsw      *fsnotify.Watcher
	path     string
	onChange ChangeFunc
	debounce time.Duration

	// notifications are dropped while > 0
	suspended int

	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

func New(path string, onChange ChangeFunc, opts ...Option) (*Watcher, error) {
	if onChange == nil {
		return nil, errors.New("watcher: nil change callback")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		fsw:      fsw,
		path:     filepath.Clean(abs),
		onChange: onChange,
		debounce: DefaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

func (w *Watcher) Path() string {
	return w.path
}

// Start watches the file until ctx is done or Stop is called. It does not
// block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	dir := filepath.Dir(w.path)
	if err := w.fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.running = true

	log.Debugf("watching %s", w.path)
	go w.run(ctx)
	return nil
}

// Stop ends the watch and waits for a reload in progress to finish.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.fsw.Close(); err != nil {
		log.Errorf("closing file watcher: %s", err)
	}
	log.Debug("stopped")
}

// Suspend drops notifications until the matching Resume. Calls nest.
func (w *Watcher) Suspend() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.suspended++
}

func (w *Watcher) Resume() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.suspended > 0 {
		w.suspended--
	}
}

func (w *Watcher) Suspended() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.suspended > 0
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	// armed by a relevant event, fires after the debounce period
	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				log.Debugf("%s %s", event.Op, event.Name)
				settle = time.After(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Errorf("file watcher: %s", err)

		case <-settle:
			settle = nil
			w.fire()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return !w.Suspended()
}

// fire runs the change callback with notifications suspended so that the
// reload cannot trigger itself.
func (w *Watcher) fire() {
	if w.Suspended() {
		return
	}

	w.Suspend()
	defer w.Resume()

	if err := w.onChange(); err != nil {
		log.Errorf("reloading %s: %s", w.path, err)
	}
}
