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

// Package menu builds the tray menu tree from the template list. Build has
// no state: the tray is redrawn from a fresh tree after every change.
package menu

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/blob42/temply"
)

const DefaultCaptionWidth = 60

const (
	LabelNoTemplates = "No templates"
	LabelAdd         = "Add from clipboard"
	LabelDelete      = "Delete"
	LabelSettings    = "Settings"
	LabelAutorun     = "Run at startup"
	LabelOpen        = "Open database file"
	LabelExit        = "Exit"
)

// Action identifies what a menu entry does when clicked.
type Action int

const (
	ActionNone Action = iota
	ActionCopy
	ActionAdd
	ActionDelete
	ActionAutorun
	ActionOpen
	ActionExit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionCopy:
		return "copy"
	case ActionAdd:
		return "add"
	case ActionDelete:
		return "delete"
	case ActionAutorun:
		return "autorun"
	case ActionOpen:
		return "open"
	case ActionExit:
		return "exit"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

type Node struct {
	Title   string
	Tooltip string

	Action Action

	// Template the action applies to (copy and delete).
	Payload temply.Template

	Disabled  bool
	Separator bool

	Checkable bool
	Checked   bool

	Children []*Node
}

type Options struct {
	// Current state of the start-up registration.
	Autorun bool

	// Maximum caption length in runes; <= 0 uses DefaultCaptionWidth.
	CaptionWidth int
}

func separator() *Node {
	return &Node{Separator: true}
}

// Build returns the root of the menu for the given templates. Entries keep
// the order of templates.
func Build(templates []temply.Template, opts Options) *Node {
	width := opts.CaptionWidth
	if width <= 0 {
		width = DefaultCaptionWidth
	}

	root := &Node{}

	if len(templates) == 0 {
		root.Children = append(root.Children, &Node{
			Title:    LabelNoTemplates,
			Disabled: true,
		})
	}

	deleteMenu := &Node{
		Title:    LabelDelete,
		Tooltip:  "Remove a template",
		Disabled: len(templates) == 0,
	}

	for _, t := range templates {
		caption := t.Caption(width)

		root.Children = append(root.Children, &Node{
			Title:   caption,
			Tooltip: "Copy to clipboard",
			Action:  ActionCopy,
			Payload: t,
		})

		deleteMenu.Children = append(deleteMenu.Children, &Node{
			Title:   caption,
			Tooltip: "Delete this template",
			Action:  ActionDelete,
			Payload: t,
		})
	}

	root.Children = append(root.Children,
		separator(),
		&Node{
			Title:   LabelAdd,
			Tooltip: "Save the clipboard text as a new template",
			Action:  ActionAdd,
		},
		deleteMenu,
		separator(),
		&Node{
			Title: LabelSettings,
			Children: []*Node{
				{
					Title:     LabelAutorun,
					Tooltip:   "Start with the session",
					Action:    ActionAutorun,
					Checkable: true,
					Checked:   opts.Autorun,
				},
				{
					Title:   LabelOpen,
					Tooltip: "Edit the templates in a text editor",
					Action:  ActionOpen,
				},
			},
		},
		&Node{
			Title:  LabelExit,
			Action: ActionExit,
		},
	)

	return root
}

// Find returns the first node, depth first, for which match returns true.
func (n *Node) Find(match func(*Node) bool) *Node {
	for _, child := range n.Children {
		if match(child) {
			return child
		}
		if found := child.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// ByTitle finds a node by its title.
func (n *Node) ByTitle(title string) *Node {
	return n.Find(func(c *Node) bool { return c.Title == title })
}

// Items returns the direct children that copy a template.
func (n *Node) Items() []*Node {
	var items []*Node
	for _, child := range n.Children {
		if child.Action == ActionCopy {
			items = append(items, child)
		}
	}
	return items
}

func (n *Node) meta() string {
	switch {
	case n.Checkable && n.Checked:
		return "x"
	case n.Checkable:
		return " "
	case n.Disabled:
		return "disabled"
	}
	return ""
}

func (n *Node) addTo(tree treeprint.Tree) {
	for _, child := range n.Children {
		title := child.Title
		if child.Separator {
			title = "--------"
		}

		meta := child.meta()
		switch {
		case len(child.Children) > 0 && meta != "":
			child.addTo(tree.AddMetaBranch(meta, title))
		case len(child.Children) > 0:
			child.addTo(tree.AddBranch(title))
		case meta != "":
			tree.AddMetaNode(meta, title)
		default:
			tree.AddNode(title)
		}
	}
}

// String renders the tree for the terminal.
func (n *Node) String() string {
	tree := treeprint.New()
	n.addTo(tree)
	return tree.String()
}
