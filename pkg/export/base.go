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

// Package export writes the template list to interchange formats.
package export

import (
	"io"

	"github.com/blob42/temply"
)

const (
	// JSON array of objects
	JSON = iota

	// Unescaped templates separated by `%` lines, as in fortune files
	Fortune
)

type TemplatesExporter struct {
	w io.Writer
	e Exporter

	// template separator (ex: , for json)
	Separator string
}

func NewTemplatesExporter(
	e Exporter,
	w io.Writer,
) TemplatesExporter {
	return TemplatesExporter{w, e, ""}
}

func (te TemplatesExporter) Export(templates []temply.Template) error {
	var err error

	if err = te.e.WriteHeader(te.w); err != nil {
		return err
	}

	for i, t := range templates {
		if i > 0 && te.Separator != "" {
			if _, err = io.WriteString(te.w, te.Separator); err != nil {
				return err
			}
		}

		if _, err = te.w.Write(te.e.MarshalTemplate(t)); err != nil {
			return err
		}
	}

	return te.e.WriteFooter(te.w)
}

type Exporter interface {
	MarshalTemplate(temply.Template) []byte
	WriteHeader(w io.Writer) error
	WriteFooter(w io.Writer) error
}
