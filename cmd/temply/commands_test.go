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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blob42/temply/internal/database"
	"github.com/blob42/temply/internal/menu"
)

func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()

	saved := *database.Config
	t.Cleanup(func() { *database.Config = saved })

	var out bytes.Buffer
	temply := newApp()
	temply.Writer = &out
	temply.ErrWriter = &out

	argv := append([]string{"temply", "--config", "", "--db", db}, args...)
	err := temply.Run(argv)
	return out.String(), err
}

func TestAddListRemove(t *testing.T) {
	db := filepath.Join(t.TempDir(), "temply.txt")

	_, err := run(t, db, "add", "hello", "world")
	require.NoError(t, err)
	_, err = run(t, db, "add", "abc")
	require.NoError(t, err)

	out, err := run(t, db, "list")
	require.NoError(t, err)
	assert.Equal(t, "abc\nhello world\n", out)

	out, err = run(t, db, "add", "abc")
	require.NoError(t, err)
	assert.Contains(t, out, "already present")

	_, err = run(t, db, "rm", "abc")
	require.NoError(t, err)

	data, err := os.ReadFile(db)
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", string(data))

	_, err = run(t, db, "rm", "abc")
	assert.Error(t, err)
}

func TestListRaw(t *testing.T) {
	db := filepath.Join(t.TempDir(), "temply.txt")
	require.NoError(t, os.WriteFile(db, []byte(`one\ttwo`+"\n"), 0644))

	out, err := run(t, db, "list", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "one\\ttwo\n", out)

	out, err = run(t, db, "list")
	require.NoError(t, err)
	assert.Equal(t, "one\ttwo\n", out)
}

func TestAddRequiresText(t *testing.T) {
	db := filepath.Join(t.TempDir(), "temply.txt")

	_, err := run(t, db, "add")
	assert.EqualError(t, err, "missing template text")
}

func TestMenuCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "temply.txt")

	out, err := run(t, db, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, menu.LabelNoTemplates)

	_, err = run(t, db, "add", "foo")
	require.NoError(t, err)

	out, err = run(t, db, "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "foo")
	assert.NotContains(t, out, menu.LabelNoTemplates)
}

func TestConfigCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "temply.txt")

	out, err := run(t, db, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "database.path = "+db)
	assert.Contains(t, out, "watcher.debounce = ")
	assert.Contains(t, out, "app.name = temply")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "temply.txt")

	_, err := run(t, db, "add", "foo")
	require.NoError(t, err)

	out, err := run(t, db, "export", "json", "-")
	require.NoError(t, err)
	assert.Equal(t, `[{"text":"foo","escaped":"foo"}]`+"\n", out)

	dest := filepath.Join(dir, "out.txt")
	_, err = run(t, db, "export", "fortune", dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "foo\n%\n", string(data))

	_, err = run(t, db, "export", "fortune", dest)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, db, "export", "fortune", "--force", dest)
	assert.NoError(t, err)
}
