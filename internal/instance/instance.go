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

// Package instance keeps a single copy of the application running per user
// session.
package instance

import (
	"errors"

	"github.com/blob42/temply/pkg/logging"
)

var (
	log = logging.GetLogger("instance")

	ErrAlreadyRunning = errors.New("another instance is already running")
)

// Lock is held for the lifetime of the running instance.
type Lock struct {
	name    string
	release func() error
}

func (l *Lock) Name() string {
	return l.name
}

// Release lets another instance start.
func (l *Lock) Release() error {
	if l == nil || l.release == nil {
		return nil
	}
	err := l.release()
	l.release = nil
	if err == nil {
		log.Debugf("released instance lock %s", l.name)
	}
	return err
}
