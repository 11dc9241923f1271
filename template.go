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

// Package temply holds the template type shared by the store, the menu
// builder and the command line.
//
// Templates are kept escaped so that every template fits on a single line of
// the database file. Backslash, newline, carriage return and tab are the
// only escaped characters.
package temply

import (
	"strings"
	"unicode/utf8"
)

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Escape returns s with control characters replaced by their backslash
// sequences.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape. Unknown sequences and a trailing lone backslash
// are kept as is.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}

		i++
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

// Template is a stored snippet in its escaped, single line form.
type Template string

// New escapes text into a Template.
func New(text string) Template {
	return Template(Escape(text))
}

// Text returns the original, unescaped snippet.
func (t Template) Text() string {
	return Unescape(string(t))
}

// Caption returns a one line label for the template: whitespace runs are
// folded into a single space and the result is cut to width runes. A width
// <= 0 disables truncation.
func (t Template) Caption(width int) string {
	caption := strings.Join(strings.Fields(t.Text()), " ")
	if caption == "" {
		caption = string(t)
	}

	if width <= 0 || utf8.RuneCountInString(caption) <= width {
		return caption
	}

	runes := []rune(caption)
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

func (t Template) String() string {
	return string(t)
}
