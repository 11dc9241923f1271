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

package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blob42/temply"
)

func TestBuildEmpty(t *testing.T) {
	root := Build(nil, Options{})

	first := root.Children[0]
	assert.Equal(t, LabelNoTemplates, first.Title)
	assert.True(t, first.Disabled)
	assert.Equal(t, ActionNone, first.Action)

	assert.Empty(t, root.Items())

	del := root.ByTitle(LabelDelete)
	require.NotNil(t, del)
	assert.True(t, del.Disabled)
	assert.Empty(t, del.Children)
}

func TestBuildEntries(t *testing.T) {
	templates := []temply.Template{"bar", temply.New("foo\nbaz")}
	root := Build(templates, Options{})

	assert.Nil(t, root.ByTitle(LabelNoTemplates))

	items := root.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "bar", items[0].Title)
	assert.Equal(t, "foo baz", items[1].Title)
	assert.Equal(t, temply.Template(`foo\nbaz`), items[1].Payload)

	del := root.ByTitle(LabelDelete)
	require.NotNil(t, del)
	assert.False(t, del.Disabled)
	require.Len(t, del.Children, 2)
	for i, child := range del.Children {
		assert.Equal(t, ActionDelete, child.Action)
		assert.Equal(t, templates[i], child.Payload)
	}
}

func TestBuildLayout(t *testing.T) {
	root := Build([]temply.Template{"a"}, Options{})

	var layout []string
	for _, child := range root.Children {
		if child.Separator {
			layout = append(layout, "-")
			continue
		}
		layout = append(layout, child.Title)
	}

	assert.Equal(t, []string{"a", "-", LabelAdd, LabelDelete, "-", LabelSettings, LabelExit}, layout)
	assert.Equal(t, ActionAdd, root.ByTitle(LabelAdd).Action)
	assert.Equal(t, ActionExit, root.ByTitle(LabelExit).Action)
	assert.Equal(t, ActionOpen, root.ByTitle(LabelOpen).Action)
}

func TestBuildAutorunCheckbox(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		root := Build(nil, Options{Autorun: enabled})

		item := root.ByTitle(LabelAutorun)
		require.NotNil(t, item)
		assert.True(t, item.Checkable)
		assert.Equal(t, enabled, item.Checked)
		assert.Equal(t, ActionAutorun, item.Action)
	}
}

func TestBuildCaptionWidth(t *testing.T) {
	long := temply.Template(strings.Repeat("x", 100))

	root := Build([]temply.Template{long}, Options{CaptionWidth: 10})
	assert.Equal(t, strings.Repeat("x", 9)+"…", root.Items()[0].Title)
	assert.Equal(t, long, root.Items()[0].Payload)

	root = Build([]temply.Template{long}, Options{})
	assert.Len(t, []rune(root.Items()[0].Title), DefaultCaptionWidth)
}

func TestBuildIsPure(t *testing.T) {
	templates := []temply.Template{"a", "b"}
	first := Build(templates, Options{}).String()
	second := Build(templates, Options{}).String()

	assert.Equal(t, first, second)
	assert.Equal(t, []temply.Template{"a", "b"}, templates)
}

func TestString(t *testing.T) {
	out := Build([]temply.Template{"foo"}, Options{Autorun: true}).String()

	assert.Contains(t, out, "foo")
	assert.Contains(t, out, LabelAdd)
	assert.Contains(t, out, "[x]  "+LabelAutorun)
	assert.Contains(t, out, LabelExit)

	out = Build(nil, Options{}).String()
	assert.Contains(t, out, "[disabled]  "+LabelNoTemplates)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "copy", ActionCopy.String())
	assert.Equal(t, "Action(42)", Action(42).String())
}
