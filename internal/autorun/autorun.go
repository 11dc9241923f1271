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

// Package autorun registers the application to start with the user session.
package autorun

import (
	"errors"
	"fmt"
	"os"

	"github.com/blob42/temply/pkg/logging"
)

var (
	log = logging.GetLogger("autorun")

	ErrUnsupported = errors.New("autorun is not supported on this platform")
)

// Setting is the start-up registration of one application, keyed by name.
type Setting struct {
	Name string

	// returns the command registered for start-up
	execPath func() (string, error)
}

func New(name string) *Setting {
	return &Setting{
		Name:     name,
		execPath: executable,
	}
}

func executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("get executable path: %w", err)
	}
	return exe, nil
}

func (s *Setting) Enabled() (bool, error) {
	return s.enabled()
}

func (s *Setting) Enable() error {
	exe, err := s.execPath()
	if err != nil {
		return err
	}
	if err = s.enable(exe); err != nil {
		return err
	}
	log.Infof("registered %s to run at startup", exe)
	return nil
}

func (s *Setting) Disable() error {
	if err := s.disable(); err != nil {
		return err
	}
	log.Infof("removed %s from startup", s.Name)
	return nil
}

// Toggle flips the registration and returns the state in effect afterwards.
// When the switch fails the previous state is returned with the error.
func (s *Setting) Toggle() (bool, error) {
	enabled, err := s.enabled()
	if err != nil {
		return false, err
	}

	if enabled {
		err = s.Disable()
	} else {
		err = s.Enable()
	}
	if err != nil {
		return enabled, err
	}
	return !enabled, nil
}
