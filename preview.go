// Copyright 2026 The Pixel Font Baker Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pixelfont

import (
	"bytes"
	"image"
	"image/color"
	"strings"

	"github.com/icza/bitio"
)

// GlyphString renders cp's slot as text, one line per pixel row, '#'
// for set pixels and '.' for clear ones. It reads the packed bytes
// MSB-first exactly the way display drivers do, so it doubles as a
// check of the table layout. Returns "" for a cp outside the range.
func (t *Table) GlyphString(cp rune) string {
	g := t.Glyph(cp)
	if g == nil {
		return ""
	}
	r := bitio.NewReader(bytes.NewReader(g))
	pad := uint8(t.BytesPerLine*8 - t.CharWidth)

	var sb strings.Builder
	for y := 0; y < t.CharHeight; y++ {
		for x := 0; x < t.CharWidth; x++ {
			set, _ := r.ReadBool()
			if set {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if pad > 0 {
			r.ReadBits(pad)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Image renders the whole table as a grayscale strip, glyph cells side
// by side in codepoint order. Set pixels are black on white.
func (t *Table) Image() *image.Gray {
	n := t.GlyphCount()
	img := image.NewGray(image.Rect(0, 0, t.CharWidth*n, t.CharHeight))
	for i := 0; i < n; i++ {
		cp := t.First + rune(i)
		for y := 0; y < t.CharHeight; y++ {
			for x := 0; x < t.CharWidth; x++ {
				c := color.Gray{Y: 0xff}
				if t.BitAt(cp, x, y) {
					c.Y = 0
				}
				img.SetGray(i*t.CharWidth+x, y, c)
			}
		}
	}
	return img
}
