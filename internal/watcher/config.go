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

package watcher

import (
	"time"

	"github.com/blob42/temply/pkg/config"
)

var Config *watcherConf

type watcherConf struct {
	// Quiet period after the last file event before reloading.
	Debounce time.Duration `toml:"debounce"`
}

func init() {
	Config = &watcherConf{
		Debounce: DefaultDebounce,
	}

	config.RegisterConfigurator("watcher", config.AsConfigurator(Config))
}
