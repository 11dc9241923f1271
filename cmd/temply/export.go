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
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/blob42/temply/pkg/export"
)

var exportCmd = &cli.Command{
	Name:        "export",
	Usage:       "One-time export to other formats",
	Description: `The export command writes all templates to a file, or to stdout when the path is -.`,
	Subcommands: []*cli.Command{
		exportJSONCmd,
		exportFortuneCmd,
	},
}

var overwriteFlag = &cli.BoolFlag{
	Name:    "force",
	Aliases: []string{"f"},
	Usage:   "Overwrite existing files without prompting",
}

var exportJSONCmd = &cli.Command{
	Name:      "json",
	Usage:     "Export templates to a JSON array",
	ArgsUsage: "path/to/export.json",
	Action:    exportToFormat(export.JSON),
	Flags:     []cli.Flag{overwriteFlag},
}

var exportFortuneCmd = &cli.Command{
	Name:      "fortune",
	Usage:     "Export templates to a fortune(6) style text file",
	ArgsUsage: "path/to/export.txt",
	Action:    exportToFormat(export.Fortune),
	Flags:     []cli.Flag{overwriteFlag},
}

func exportToFormat(format int) cli.ActionFunc {
	return func(c *cli.Context) error {
		var exporter export.Exporter
		var output io.Writer
		var err error

		path := c.Args().First()
		if path == "" {
			return fmt.Errorf("missing path: ... export %s %s", c.Command.Name, c.Command.ArgsUsage)
		}

		if _, err = os.Stat(path); err == nil && !c.Bool("force") {
			return fmt.Errorf("file %s already exists. Use -f to overwrite", path)
		}

		store, err := loadStore()
		if err != nil {
			return err
		}

		switch format {
		case export.JSON:
			exporter = &export.JSONExporter{}
		case export.Fortune:
			exporter = &export.FortuneExporter{}
		default:
			panic(fmt.Sprintf("unsupported export format %#v", format))
		}

		if path == "-" {
			output = c.App.Writer
		} else {
			f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
			if err != nil {
				return err
			}
			defer f.Close()
			output = f
		}

		templatesExporter := export.NewTemplatesExporter(exporter, output)
		if format == export.JSON {
			templatesExporter.Separator = ","
		}
		return templatesExporter.Export(store.Templates())
	}
}
