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
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/blob42/temply"
	"github.com/blob42/temply/internal/app"
	"github.com/blob42/temply/internal/autorun"
	"github.com/blob42/temply/internal/clip"
	"github.com/blob42/temply/internal/database"
	"github.com/blob42/temply/internal/gui"
	"github.com/blob42/temply/internal/menu"
	"github.com/blob42/temply/pkg/config"
)

var rawFlag = &cli.BoolFlag{
	Name:    "raw",
	Aliases: []string{"r"},
	Usage:   "print templates escaped, as stored in the database",
}

var listCmd = &cli.Command{
	Name:    "list",
	Aliases: []string{"ls"},
	Usage:   "print all templates",
	Flags:   []cli.Flag{rawFlag},
	Action: func(c *cli.Context) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		for _, t := range store.Templates() {
			if c.Bool("raw") {
				fmt.Fprintln(c.App.Writer, t)
			} else {
				fmt.Fprintln(c.App.Writer, t.Text())
			}
		}
		return nil
	},
}

var addCmd = &cli.Command{
	Name:      "add",
	Aliases:   []string{"a"},
	Usage:     "add a template",
	ArgsUsage: "TEXT...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "clipboard",
			Aliases: []string{"p"},
			Usage:   "add the clipboard text instead of the arguments",
		},
	},
	Action: func(c *cli.Context) error {
		text := strings.Join(c.Args().Slice(), " ")
		if c.Bool("clipboard") {
			var err error
			if text, err = (clip.System{}).ReadText(); err != nil {
				return err
			}
		}
		if text == "" {
			return errors.New("missing template text")
		}

		store, err := loadStore()
		if err != nil {
			return err
		}

		changed, err := store.Add(text)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Fprintln(c.App.Writer, "template already present")
		}
		return nil
	},
}

var rmCmd = &cli.Command{
	Name:      "rm",
	Usage:     "remove a template",
	ArgsUsage: "TEXT...",
	Flags:     []cli.Flag{rawFlag},
	Action: func(c *cli.Context) error {
		if !c.Args().Present() {
			return errors.New("missing template text")
		}

		text := strings.Join(c.Args().Slice(), " ")
		t := temply.New(text)
		if c.Bool("raw") {
			t = temply.Template(text)
		}

		store, err := loadStore()
		if err != nil {
			return err
		}

		changed, err := store.Remove(t)
		if err != nil {
			return err
		}
		if !changed {
			return fmt.Errorf("template %q not found", t)
		}
		return nil
	},
}

var menuCmd = &cli.Command{
	Name:  "menu",
	Usage: "print the tray menu",
	Action: func(c *cli.Context) error {
		store, err := loadStore()
		if err != nil {
			return err
		}

		enabled, err := autorun.New(app.Config.Name).Enabled()
		if err != nil {
			log.Warningf("reading autorun setting: %s", err)
		}

		root := menu.Build(store.Templates(), menu.Options{
			Autorun:      enabled,
			CaptionWidth: gui.Config.CaptionWidth,
		})
		fmt.Fprint(c.App.Writer, root.String())
		return nil
	},
}

var autorunCmd = &cli.Command{
	Name:  "autorun",
	Usage: "run temply at session startup",
	Subcommands: []*cli.Command{
		{
			Name:  "on",
			Usage: "register temply to start with the session",
			Action: func(c *cli.Context) error {
				return autorun.New(app.Config.Name).Enable()
			},
		},
		{
			Name:  "off",
			Usage: "remove the startup registration",
			Action: func(c *cli.Context) error {
				return autorun.New(app.Config.Name).Disable()
			},
		},
		{
			Name:   "status",
			Usage:  "print whether temply starts with the session",
			Action: autorunStatus,
		},
	},
	Action: autorunStatus,
}

func autorunStatus(c *cli.Context) error {
	enabled, err := autorun.New(app.Config.Name).Enabled()
	if err != nil {
		return err
	}

	status := "off"
	if enabled {
		status = "on"
	}
	fmt.Fprintln(c.App.Writer, status)
	return nil
}

var configCmd = &cli.Command{
	Name:  "config",
	Usage: "print the effective configuration",
	Action: func(c *cli.Context) error {
		return config.Dump(c.App.Writer)
	},
}

func loadStore() (*database.Store, error) {
	store := database.NewFromConfig()
	if _, err := store.Load(); err != nil {
		return nil, err
	}
	return store, nil
}
