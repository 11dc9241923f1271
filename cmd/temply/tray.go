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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/blob42/temply/internal/app"
	"github.com/blob42/temply/internal/autorun"
	"github.com/blob42/temply/internal/clip"
	"github.com/blob42/temply/internal/database"
	"github.com/blob42/temply/internal/gui"
	"github.com/blob42/temply/internal/instance"
	"github.com/blob42/temply/internal/watcher"
)

// runTray is the default action: load the database and serve the tray menu
// until Exit is clicked or the process is signaled.
func runTray(c *cli.Context) error {
	lock, err := instance.Acquire(app.Config.Name)
	if err != nil {
		return err
	}
	defer lock.Release()

	store := database.NewFromConfig()
	if _, err = store.Load(); err != nil {
		return err
	}

	if clip.Unsupported() {
		log.Warning("no clipboard backend available, copy and add will fail")
	}

	temply, err := app.New(store, app.Deps{
		Tray:      gui.NativeTray{},
		Clipboard: clip.System{},
		Autorun:   autorun.New(app.Config.Name),
		Open:      app.OpenFile,
		Quit:      gui.Quit,
	}, app.Options{
		CaptionWidth: gui.Config.CaptionWidth,
		Debounce:     watcher.Config.Debounce,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			log.Info("signal received, quitting")
			gui.Quit()
		case <-done:
		}
	}()

	var startErr error
	gui.Run(func() {
		if startErr = temply.Start(ctx); startErr != nil {
			gui.Quit()
		}
	}, func() {
		temply.Stop()
	})

	return startErr
}
