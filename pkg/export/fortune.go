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
	"io"

	"github.com/blob42/temply"
)

// FortuneExporter writes templates in their original multi-line form, each
// one terminated by a line holding a single `%`.
type FortuneExporter struct{}

func (fe *FortuneExporter) WriteHeader(io.Writer) error {
	return nil
}

func (fe *FortuneExporter) WriteFooter(io.Writer) error {
	return nil
}

func (fe *FortuneExporter) MarshalTemplate(t temply.Template) []byte {
	return []byte(t.Text() + "\n%\n")
}

var _ Exporter = (*FortuneExporter)(nil)
