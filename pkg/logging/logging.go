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

// Package logging sets up the shared leveled logging backend. Each package
// keeps its own module logger obtained with GetLogger.
package logging

import (
	"io"
	"os"

	gologging "github.com/op/go-logging"
)

type Logger = gologging.Logger

const (
	ERROR   = gologging.ERROR
	WARNING = gologging.WARNING
	INFO    = gologging.INFO
	DEBUG   = gologging.DEBUG
)

var (
	stderrFormat = gologging.MustStringFormatter(
		`%{color}%{time:15:04:05.000} %{module:-9s} %{level:.4s}%{color:reset} %{message}`,
	)

	leveled gologging.LeveledBackend
)

func init() {
	SetOutput(os.Stderr)
}

// GetLogger returns the logger for the given module name.
func GetLogger(module string) *Logger {
	return gologging.MustGetLogger(module)
}

// SetOutput redirects all module loggers to w, keeping the current level.
func SetOutput(w io.Writer) {
	level := INFO
	if leveled != nil {
		level = leveled.GetLevel("")
	}

	backend := gologging.NewLogBackend(w, "", 0)
	formatted := gologging.NewBackendFormatter(backend, stderrFormat)
	leveled = gologging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	gologging.SetBackend(leveled)
}

func SetLevel(level gologging.Level) {
	leveled.SetLevel(level, "")
}

// SetDebug switches every module between DEBUG and INFO.
func SetDebug(debug bool) {
	if debug {
		SetLevel(DEBUG)
		return
	}
	SetLevel(INFO)
}

func IsDebug() bool {
	return leveled.IsEnabledFor(DEBUG, "")
}
