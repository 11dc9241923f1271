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

// temply keeps short text templates one click away in the system tray.
package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/blob42/temply/internal/app"
	"github.com/blob42/temply/internal/database"
	"github.com/blob42/temply/internal/instance"
	"github.com/blob42/temply/pkg/config"
	"github.com/blob42/temply/pkg/logging"
)

const DefaultConfigName = "temply.toml"

var log = logging.GetLogger("main")

var globalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "db",
		Aliases: []string{"d"},
		Usage:   "path to the template database",
		EnvVars: []string{"TEMPLY_DB"},
	},
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "path to the config file",
		Value:   filepath.Join(database.ExecDir(), DefaultConfigName),
		EnvVars: []string{"TEMPLY_CONFIG"},
	},
	&cli.BoolFlag{
		Name:  "debug",
		Usage: "verbose logging",
	},
}

// setup loads the config file then applies command line overrides.
func setup(c *cli.Context) error {
	if err := config.LoadFile(c.String("config")); err != nil {
		return err
	}

	if c.IsSet("db") {
		path, err := filepath.Abs(c.String("db"))
		if err != nil {
			return err
		}
		database.Config.Path = path
	}

	if c.Bool("debug") {
		app.Config.Debug = true
	}
	logging.SetDebug(app.Config.Debug)
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "temply",
		Usage:  "text templates in the system tray",
		Flags:  globalFlags,
		Before: setup,
		Action: runTray,
		Commands: []*cli.Command{
			listCmd,
			addCmd,
			rmCmd,
			menuCmd,
			autorunCmd,
			configCmd,
			exportCmd,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		if errors.Is(err, instance.ErrAlreadyRunning) {
			log.Warning(err)
			os.Exit(0)
		}
		log.Critical(err)
		os.Exit(1)
	}
}
