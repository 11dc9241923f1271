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

package app

import (
	"github.com/blob42/temply/pkg/config"
)

const DefaultName = "temply"

var Config *appConf

type appConf struct {
	// Key for the start-up registration and the single instance mutex.
	Name string `toml:"name"`

	Debug bool `toml:"debug"`
}

func init() {
	Config = &appConf{
		Name: DefaultName,
	}

	config.RegisterConfigurator("app", config.AsConfigurator(Config))
}
