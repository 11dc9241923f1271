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
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"runtime"
	"sync"
)

const iconSize = 32

var (
	iconOnce  sync.Once
	iconBytes []byte

	paper = color.NRGBA{0xfa, 0xfa, 0xf5, 0xff}
	ink   = color.NRGBA{0x2b, 0x5c, 0x9e, 0xff}
	fold  = color.NRGBA{0xc8, 0xd2, 0xe0, 0xff}
)

// Icon returns the tray icon in the format the platform tray expects: ICO on
// Windows, PNG elsewhere.
func Icon() []byte {
	iconOnce.Do(func() {
		data, err := encodeIcon(runtime.GOOS)
		if err != nil {
			log.Errorf("encoding tray icon: %s", err)
			return
		}
		iconBytes = data
	})
	return iconBytes
}

func encodeIcon(goos string) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, drawIcon()); err != nil {
		return nil, err
	}
	if goos != "windows" {
		return buf.Bytes(), nil
	}
	return wrapICO(buf.Bytes(), iconSize), nil
}

// drawIcon paints a sheet of paper with a folded corner and a few lines of
// text.
func drawIcon() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))

	const (
		left, right = 5, 27
		top, bottom = 2, 30
		corner      = 7
	)

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			dx, dy := x-(right-corner), y-top
			switch {
			case dx >= 0 && dy < corner && dx > dy:
				// cut corner stays transparent
			case dx >= 0 && dy < corner:
				img.Set(x, y, fold)
			case x == left || x == right-1 || y == bottom-1 || (y == top && dx < 0):
				img.Set(x, y, ink)
			default:
				img.Set(x, y, paper)
			}
		}
	}

	for _, line := range []struct{ y, end int }{{12, 22}, {16, 24}, {20, 19}, {24, 22}} {
		for x := left + 4; x < line.end; x++ {
			img.Set(x, line.y, ink)
			img.Set(x, line.y+1, ink)
		}
	}

	return img
}

// wrapICO stores a PNG image in a single entry ICO container.
func wrapICO(pngData []byte, size int) []byte {
	const headerLen = 6 + 16

	var buf bytes.Buffer
	buf.Grow(headerLen + len(pngData))

	// ICONDIR
	binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, 1})

	// ICONDIRENTRY
	dim := byte(size)
	if size >= 256 {
		dim = 0
	}
	buf.Write([]byte{dim, dim, 0, 0})
	binary.Write(&buf, binary.LittleEndian, struct {
		Planes, BitCount uint16
		Size, Offset     uint32
	}{1, 32, uint32(len(pngData)), headerLen})

	buf.Write(pngData)
	return buf.Bytes()
}
