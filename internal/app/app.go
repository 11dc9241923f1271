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

// Package app wires the template store, the file watcher and the tray menu
// together and handles menu actions.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blob42/temply"
	"github.com/blob42/temply/internal/database"
	"github.com/blob42/temply/internal/gui"
	"github.com/blob42/temply/internal/menu"
	"github.com/blob42/temply/internal/watcher"
	"github.com/blob42/temply/pkg/logging"
)

var log = logging.GetLogger("app")

type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

type Autorun interface {
	Enabled() (bool, error)
	Toggle() (bool, error)
}

// Deps are the platform services the application drives.
type Deps struct {
	Tray      gui.Tray
	Clipboard Clipboard
	Autorun   Autorun

	// Open shows the database file to the user.
	Open func(path string) error

	// Quit ends the tray loop.
	Quit func()
}

type Options struct {
	CaptionWidth int
	Debounce     time.Duration
}

type App struct {
	store     *database.Store
	watcher   *watcher.Watcher
	presenter *gui.Presenter

	clipboard Clipboard
	autorun   Autorun
	open      func(string) error
	quit      func()

	opts Options
}

// New prepares the application. The store must already be loaded.
func New(store *database.Store, deps Deps, opts Options) (*App, error) {
	if deps.Tray == nil || deps.Clipboard == nil || deps.Autorun == nil {
		return nil, errors.New("app: missing tray, clipboard or autorun")
	}

	a := &App{
		store:     store,
		clipboard: deps.Clipboard,
		autorun:   deps.Autorun,
		open:      deps.Open,
		quit:      deps.Quit,
		opts:      opts,
	}
	if a.open == nil {
		a.open = OpenFile
	}
	if a.quit == nil {
		a.quit = func() {}
	}

	var wopts []watcher.Option
	if opts.Debounce > 0 {
		wopts = append(wopts, watcher.WithDebounce(opts.Debounce))
	}

	var err error
	if a.watcher, err = watcher.New(store.Path(), a.reload, wopts...); err != nil {
		return nil, err
	}
	a.presenter = gui.NewPresenter(deps.Tray, a.Handle)

	return a, nil
}

func (a *App) Store() *database.Store {
	return a.store
}

func (a *App) Presenter() *gui.Presenter {
	return a.presenter
}

func (a *App) Watcher() *watcher.Watcher {
	return a.watcher
}

// Start shows the menu and begins watching the database file.
func (a *App) Start(ctx context.Context) error {
	a.Rebuild()

	if err := a.watcher.Start(ctx); err != nil {
		return err
	}
	log.Infof("serving %d templates from %s", a.store.Len(), a.store.Path())
	return nil
}

func (a *App) Stop() {
	a.watcher.Stop()
}

// Menu builds the menu tree for the current store contents.
func (a *App) Menu() *menu.Node {
	enabled, err := a.autorun.Enabled()
	if err != nil {
		log.Warningf("reading autorun setting: %s", err)
	}

	return menu.Build(a.store.Templates(), menu.Options{
		Autorun:      enabled,
		CaptionWidth: a.opts.CaptionWidth,
	})
}

// Rebuild redraws the tray menu from the store.
func (a *App) Rebuild() {
	a.presenter.Show(a.Menu())
}

// Handle runs a menu action. Errors are logged; none of them stops the
// tray.
func (a *App) Handle(action menu.Action, payload temply.Template) {
	var err error

	switch action {
	case menu.ActionCopy:
		err = a.Copy(payload)
	case menu.ActionAdd:
		err = a.AddFromClipboard()
	case menu.ActionDelete:
		err = a.Delete(payload)
	case menu.ActionAutorun:
		err = a.ToggleAutorun()
	case menu.ActionOpen:
		err = a.open(a.store.Path())
	case menu.ActionExit:
		a.quit()
	default:
		err = fmt.Errorf("unknown action %s", action)
	}

	if err != nil {
		log.Errorf("%s: %s", action, err)
	}
}

// Copy puts the unescaped template on the clipboard.
func (a *App) Copy(t temply.Template) error {
	return a.clipboard.WriteText(t.Text())
}

// AddFromClipboard stores the clipboard text as a new template. An empty
// clipboard is ignored.
func (a *App) AddFromClipboard() error {
	text, err := a.clipboard.ReadText()
	if err != nil {
		return err
	}
	if text == "" {
		log.Info("clipboard is empty, nothing to add")
		return nil
	}

	return a.mutate(func() (bool, error) {
		return a.store.Add(text)
	})
}

func (a *App) Delete(t temply.Template) error {
	return a.mutate(func() (bool, error) {
		return a.store.Remove(t)
	})
}

func (a *App) ToggleAutorun() error {
	enabled, err := a.autorun.Toggle()
	if err != nil {
		return err
	}
	log.Infof("run at startup: %t", enabled)
	a.Rebuild()
	return nil
}

// mutate runs a store write with file notifications suspended and redraws
// the menu if the list changed.
func (a *App) mutate(fn func() (bool, error)) error {
	a.watcher.Suspend()
	defer a.watcher.Resume()

	changed, err := fn()
	if changed {
		a.Rebuild()
	}
	return err
}

// reload is the watcher callback for external edits.
func (a *App) reload() error {
	changed, err := a.store.Reload()
	if err != nil {
		return err
	}
	if changed {
		a.Rebuild()
	}
	return nil
}
