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

// Package gui owns the tray icon and renders menu trees into the native
// tray menu.
package gui

import (
	"runtime"
	"strings"
	"sync"

	"github.com/blob42/temply"
	"github.com/blob42/temply/internal/menu"
	"github.com/blob42/temply/pkg/logging"
)

var log = logging.GetLogger("gui")

// Handler receives menu clicks.
type Handler func(action menu.Action, payload temply.Template)

type Presenter struct {
	mu sync.Mutex

	tray    Tray
	handler Handler

	// dispatch runs a click handler; clicks are handled off the native
	// callback since handlers rebuild the menu.
	dispatch func(func())

	current *menu.Node
}

func NewPresenter(tray Tray, handler Handler) *Presenter {
	return &Presenter{
		tray:     tray,
		handler:  handler,
		dispatch: func(fn func()) { go fn() },
	}
}

// Current returns the tree currently shown.
func (p *Presenter) Current() *menu.Node {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Show replaces the whole native menu with root.
func (p *Presenter) Show(root *menu.Node) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tray.ResetMenu()
	for _, node := range root.Children {
		if node.Separator {
			p.tray.AddSeparator()
			continue
		}

		var item Item
		if node.Checkable {
			item = p.tray.AddCheckbox(label(node.Title), node.Tooltip, node.Checked)
		} else {
			item = p.tray.AddItem(label(node.Title), node.Tooltip)
		}
		p.attach(item, node)
	}

	p.current = root
	log.Debugf("menu rebuilt with %d entries", len(root.Children))
}

func (p *Presenter) attach(item Item, node *menu.Node) {
	if node.Disabled {
		item.Disable()
	}

	for _, child := range node.Children {
		// nested separators are not supported by the native menus
		if child.Separator {
			continue
		}

		var sub Item
		if child.Checkable {
			sub = item.AddSubCheckbox(label(child.Title), child.Tooltip, child.Checked)
		} else {
			sub = item.AddSubItem(label(child.Title), child.Tooltip)
		}
		p.attach(sub, child)
	}

	if node.Action == menu.ActionNone || len(node.Children) > 0 {
		return
	}

	action, payload := node.Action, node.Payload
	item.OnClick(func() {
		log.Debugf("clicked %s %q", action, payload)
		p.dispatch(func() { p.handler(action, payload) })
	})
}

// label escapes characters the native menu would interpret. On Windows a
// single & marks the keyboard accelerator.
func label(title string) string {
	if runtime.GOOS == "windows" {
		return strings.ReplaceAll(title, "&", "&&")
	}
	return title
}
