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
	"encoding/json"
	"io"

	"github.com/blob42/temply"
)

type JSONExporter struct{}

type jsonTemplate struct {
	Text    string `json:"text"`
	Escaped string `json:"escaped"`
}

func (je *JSONExporter) WriteHeader(w io.Writer) error {
	_, err := w.Write([]byte("["))
	return err
}

func (je *JSONExporter) WriteFooter(w io.Writer) error {
	_, err := w.Write([]byte("]\n"))
	return err
}

// MarshalTemplate encodes t as a {"text", "escaped"} object. Invalid UTF-8
// in a template is replaced with U+FFFD in both fields, so such templates do
// not round-trip through this format.
func (je *JSONExporter) MarshalTemplate(t temply.Template) []byte {
	// marshaling two strings cannot fail
	data, _ := json.Marshal(jsonTemplate{
		Text:    t.Text(),
		Escaped: string(t),
	})
	return data
}

var _ Exporter = (*JSONExporter)(nil)
