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
	"fmt"
	"log/slog"
)

// BakeBDF builds a packed glyph table for the inclusive codepoint range
// [first,last] from the contents of a BDF bitmap font.
//
// The font's FONTBOUNDINGBOX fixes the cell geometry; every glyph's own
// bitmap is trusted to match it (monospace fonts only, per-glyph boxes
// are not re-validated). Glyphs present in the font land in their slot,
// slots never seen keep an alternating-bit placeholder fill so missing
// characters show up as stripes rather than blanks.
//
// On a mid-parse failure the table allocated so far is returned along
// with the error, so callers can inspect how far the bake got; it still
// needs a Release like a successful one.
func BakeBDF(data []byte, first, last rune) (*Table, error) {
	c := newCursor(data)

	if !c.seekLinePrefix("FONTBOUNDINGBOX ") {
		return nil, ErrFontBoundingBoxMissing
	}
	var box [4]int // width, height, x-origin, y-origin; only w/h matter
	for i := range box {
		v, err := c.parseInt()
		if err != nil {
			return nil, fmt.Errorf("field %d of 4: %w", i+1, ErrFontBoundingBoxMalformed)
		}
		box[i] = v
	}

	t, err := newTable(box[0], box[1], first, last, fillPlaceholder)
	if err != nil {
		return nil, err
	}
	slog.Debug("baking bdf glyph table",
		"width", t.CharWidth, "height", t.CharHeight,
		"bytes_per_line", t.BytesPerLine, "bytes_per_glyph", t.BytesPerGlyph,
		"glyphs", t.GlyphCount())

	for c.seekLinePrefix("ENCODING ") {
		cp, err := c.parseInt()
		if err != nil {
			return t, ErrCodepointMalformed
		}
		if rune(cp) < first || rune(cp) > last {
			// Out of range: the glyph's bitmap rows are never visited,
			// the next ENCODING seek skips over them as plain text.
			continue
		}

		// 2 hex digits per byte plus at least a newline per row.
		c.seekLinePrefix("BITMAP")
		c.eatWhitespace()
		if c.remaining() < t.CharHeight*(2*t.BytesPerLine+1) {
			return t, fmt.Errorf("codepoint %d: %w", cp, ErrCharacterBytesTruncated)
		}

		slot := t.slot(rune(cp))
		for y := 0; y < t.CharHeight; y++ {
			for b := 0; b < t.BytesPerLine; b++ {
				v, err := c.parseHexByte()
				if err != nil {
					return t, fmt.Errorf("codepoint %d row %d: %w", cp, y, ErrCharacterBytesMalformed)
				}
				t.Bits[slot+y*t.BytesPerLine+b] = v
			}
			c.eatWhitespace()
		}
		t.markPopulated(rune(cp))
	}
	return t, nil
}

// BakeBDFFile is BakeBDF over the contents of the file at path. At most
// maxFontFileBytes are read.
func BakeBDFFile(path string, first, last rune) (*Table, error) {
	data, err := readFontFile(path)
	if err != nil {
		return nil, err
	}
	return BakeBDF(data, first, last)
}
