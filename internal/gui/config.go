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

package gui

import (
	"github.com/blob42/temply/internal/menu"
	"github.com/blob42/temply/pkg/config"
)

var Config *trayConf

type trayConf struct {
	Title   string `toml:"title"`
	Tooltip string `toml:"tooltip"`

	// Maximum length of a menu caption, in characters.
	CaptionWidth int `toml:"caption_width"`
}

func init() {
	Config = &trayConf{
		Title:        "Temply",
		Tooltip:      "Temply - text templates",
		CaptionWidth: menu.DefaultCaptionWidth,
	}

	config.RegisterConfigurator("tray", config.AsConfigurator(Config))
}
