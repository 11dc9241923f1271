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
	"github.com/energye/systray"
)

// Tray is the part of the native tray API the presenter drives.
type Tray interface {
	ResetMenu()
	AddItem(title, tooltip string) Item
	AddCheckbox(title, tooltip string, checked bool) Item
	AddSeparator()
}

// Item is a native menu entry.
type Item interface {
	AddSubItem(title, tooltip string) Item
	AddSubCheckbox(title, tooltip string, checked bool) Item
	Disable()
	OnClick(fn func())
}

// NativeTray drives the OS notification area through systray. It is only
// usable between the onReady and onExit callbacks of Run.
type NativeTray struct{}

func (NativeTray) ResetMenu() {
	systray.ResetMenu()
}

func (NativeTray) AddItem(title, tooltip string) Item {
	return nativeItem{systray.AddMenuItem(title, tooltip)}
}

func (NativeTray) AddCheckbox(title, tooltip string, checked bool) Item {
	return nativeItem{systray.AddMenuItemCheckbox(title, tooltip, checked)}
}

func (NativeTray) AddSeparator() {
	systray.AddSeparator()
}

type nativeItem struct {
	*systray.MenuItem
}

func (i nativeItem) AddSubItem(title, tooltip string) Item {
	return nativeItem{i.AddSubMenuItem(title, tooltip)}
}

func (i nativeItem) AddSubCheckbox(title, tooltip string, checked bool) Item {
	return nativeItem{i.AddSubMenuItemCheckbox(title, tooltip, checked)}
}

func (i nativeItem) OnClick(fn func()) {
	i.Click(fn)
}

var _ Tray = NativeTray{}

// Run shows the tray icon and blocks until Quit is called. onReady runs once
// the icon is installed; menus can only be built from then on.
func Run(onReady func(), onExit func()) {
	systray.Run(func() {
		systray.SetIcon(Icon())
		systray.SetTitle(Config.Title)
		systray.SetTooltip(Config.Tooltip)

		// left click opens the menu as well
		systray.SetOnClick(func(menu systray.IMenu) {
			if err := menu.ShowMenu(); err != nil {
				log.Errorf("showing menu: %s", err)
			}
		})

		onReady()
	}, onExit)
}

func Quit() {
	systray.Quit()
}
