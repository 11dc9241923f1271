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

package temply

import (
	"testing"
)

func TestEscapeRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		escaped string
	}{
		{"plain", "hello world", "hello world"},
		{"empty", "", ""},
		{"backslash", `C:\Users\me`, `C:\\Users\\me`},
		{"newline", "line1\nline2", `line1\nline2`},
		{"crlf", "a\r\nb", `a\r\nb`},
		{"tab", "key\tvalue", `key\tvalue`},
		{"literal escape text", `\n is not a newline`, `\\n is not a newline`},
		{"trailing backslash", `dir\`, `dir\\`},
		{"all together", "\\\n\r\t", `\\\n\r\t`},
		{"unicode", "héllo\twörld", `héllo\twörld`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escape(tt.text)
			if got != tt.escaped {
				t.Errorf("Escape(%q) = %q, want %q", tt.text, got, tt.escaped)
			}

			if back := Unescape(got); back != tt.text {
				t.Errorf("Unescape(%q) = %q, want %q", got, back, tt.text)
			}
		})
	}
}

func TestUnescapeLenient(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`unknown \q sequence`, `unknown \q sequence`},
		{`lone\`, `lone\`},
		{`\`, `\`},
	}

	for _, tt := range tests {
		if got := Unescape(tt.in); got != tt.want {
			t.Errorf("Unescape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapedIsSingleLine(t *testing.T) {
	tpl := New("first\nsecond\r\nthird")
	for _, c := range tpl.String() {
		if c == '\n' || c == '\r' {
			t.Fatalf("escaped template %q contains a line break", tpl)
		}
	}
	if tpl.Text() != "first\nsecond\r\nthird" {
		t.Errorf("Text() = %q", tpl.Text())
	}
}

func TestCaption(t *testing.T) {
	tests := []struct {
		name  string
		tpl   Template
		width int
		want  string
	}{
		{"short", New("foo"), 40, "foo"},
		{"folds whitespace", New("Dear Sir,\n\n\tThanks"), 40, "Dear Sir, Thanks"},
		{"truncates", New("abcdefghij"), 5, "abcd…"},
		{"exact width", New("abcde"), 5, "abcde"},
		{"no limit", New("abcdefghij"), 0, "abcdefghij"},
		{"runes not bytes", New("ééééé"), 3, "éé…"},
		{"blank falls back to escaped", New("\n\t"), 40, `\n\t`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tpl.Caption(tt.width); got != tt.want {
				t.Errorf("Caption(%d) = %q, want %q", tt.width, got, tt.want)
			}
		})
	}
}
