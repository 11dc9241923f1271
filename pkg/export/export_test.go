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

package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/blob42/temply"
)

func TestJSONExport(t *testing.T) {
	var buf bytes.Buffer

	exporter := NewTemplatesExporter(&JSONExporter{}, &buf)
	exporter.Separator = ","

	templates := []temply.Template{"a", temply.New("b\nc")}
	if err := exporter.Export(templates); err != nil {
		t.Fatal(err)
	}

	var got []jsonTemplate
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json %q: %s", buf.String(), err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(got))
	}
	if got[1].Text != "b\nc" || got[1].Escaped != `b\nc` {
		t.Errorf("unexpected second template %+v", got[1])
	}
}

func TestJSONExportReplacesInvalidUTF8(t *testing.T) {
	var got jsonTemplate
	data := (&JSONExporter{}).MarshalTemplate(temply.Template("bad\xff"))
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid json %q: %s", data, err)
	}

	if got.Text != "bad\uFFFD" || got.Escaped != "bad\uFFFD" {
		t.Errorf("unexpected template %+v", got)
	}
}

func TestJSONExportEmpty(t *testing.T) {
	var buf bytes.Buffer

	if err := NewTemplatesExporter(&JSONExporter{}, &buf).Export(nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[]\n" {
		t.Errorf("expected empty array, got %q", buf.String())
	}
}

func TestFortuneExport(t *testing.T) {
	var buf bytes.Buffer

	templates := []temply.Template{"one", temply.New("two\n\tlines")}
	if err := NewTemplatesExporter(&FortuneExporter{}, &buf).Export(templates); err != nil {
		t.Fatal(err)
	}

	want := "one\n%\ntwo\n\tlines\n%\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
