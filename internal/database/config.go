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

package database

import (
	"os"
	"path/filepath"
	"time"

	"github.com/blob42/temply/pkg/config"
)

const DefaultFileName = "temply.txt"

var Config *databaseConf

type databaseConf struct {
	// Path to the template database. Relative paths are resolved against
	// the directory of the executable.
	Path string `toml:"path"`

	ReadRetries int           `toml:"read_retries"`
	RetryDelay  time.Duration `toml:"retry_delay"`
}

// DefaultPath returns the database path beside the running executable.
func DefaultPath() string {
	return filepath.Join(ExecDir(), DefaultFileName)
}

// ExecDir returns the directory of the running executable, or the working
// directory if it cannot be resolved.
func ExecDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// ResolvePath makes path absolute relative to the executable directory.
func ResolvePath(path string) string {
	if path == "" {
		return DefaultPath()
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ExecDir(), path)
}

func init() {
	Config = &databaseConf{
		Path:        DefaultFileName,
		ReadRetries: DefaultReadRetries,
		RetryDelay:  DefaultRetryDelay,
	}

	config.RegisterConfigurator("database", config.AsConfigurator(Config))
}
