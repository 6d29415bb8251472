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

// Package pixelfont bakes monospace 1-bit-per-pixel glyph tables for
// simple display hardware (e-ink panels and the like) that consumes a
// flat, row-major bitmap table indexed by codepoint.
//
// Two acquisition paths produce the same table layout: BakeBDF scans a
// line-oriented bitmap-font text file, BakeOutline rasterizes a scalable
// outline font and thresholds the coverage down to one bit per pixel.
// The resulting Table can be handed byte-for-byte to drivers expecting a
// Waveshare-style sFONT table.
package pixelfont

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bits-and-blooms/bitset"
)

// Baking errors. Every failure an entry operation can report wraps
// exactly one of these.
var (
	ErrFontBoundingBoxMissing   = errors.New("no FONTBOUNDINGBOX line in font")
	ErrFontBoundingBoxMalformed = errors.New("malformed FONTBOUNDINGBOX line")
	ErrCodepointMalformed       = errors.New("malformed ENCODING codepoint")
	ErrCharacterBytesTruncated  = errors.New("truncated glyph bitmap rows")
	ErrCharacterBytesMalformed  = errors.New("malformed glyph bitmap hex byte")
	ErrAllocationFailed         = errors.New("glyph table allocation failed")
	ErrFontFileInvalid          = errors.New("outline font file invalid")
)

const (
	// maxFontFileBytes bounds how much of a font file the *File entry
	// points will read. Larger files are truncated, not streamed.
	maxFontFileBytes = 1 << 25

	// maxTableBytes bounds the size of a single baked table. Geometry
	// that works out beyond this reports ErrAllocationFailed.
	maxTableBytes = 1 << 28
)

// Placeholder fill for glyph slots the BDF path never populates. The
// two bytes alternate by table index, so unvisited slots show up as a
// 16-bit stripe instead of blank space.
const (
	placeholderEven = 0x55
	placeholderOdd  = 0xAA
)

// Table is a baked monospace glyph table. Bits holds the glyphs of
// [First,Last] in ascending codepoint order, each glyph occupying
// BytesPerGlyph contiguous bytes, rows packed MSB-first left to right.
type Table struct {
	Bits []byte

	CharWidth  int // fixed pixel width of every glyph cell
	CharHeight int // fixed pixel height of every glyph cell

	BytesPerLine  int // ceil(CharWidth/8)
	BytesPerGlyph int // BytesPerLine * CharHeight

	First rune // first baked codepoint
	Last  rune // last baked codepoint, inclusive

	populated *bitset.BitSet
}

type tableFill uint8

const (
	fillZero tableFill = iota
	fillPlaceholder
)

// newTable allocates the packed table for the cell geometry and
// codepoint range, with the requested fill pattern.
func newTable(charWidth, charHeight int, first, last rune, fill tableFill) (*Table, error) {
	if first > last {
		return nil, fmt.Errorf("codepoint range %d..%d: %w", first, last, ErrAllocationFailed)
	}
	if charWidth <= 0 || charHeight <= 0 {
		return nil, fmt.Errorf("cell %dx%d: %w", charWidth, charHeight, ErrAllocationFailed)
	}
	bytesPerLine := (charWidth + 7) / 8
	bytesPerGlyph := bytesPerLine * charHeight
	n := int64(last-first) + 1
	total := int64(bytesPerGlyph) * n
	if total > maxTableBytes {
		return nil, fmt.Errorf("%d glyphs of %d bytes: %w", n, bytesPerGlyph, ErrAllocationFailed)
	}

	t := &Table{
		Bits:          make([]byte, total),
		CharWidth:     charWidth,
		CharHeight:    charHeight,
		BytesPerLine:  bytesPerLine,
		BytesPerGlyph: bytesPerGlyph,
		First:         first,
		Last:          last,
		populated:     bitset.New(uint(n)),
	}
	if fill == fillPlaceholder {
		for i := range t.Bits {
			if i&1 == 0 {
				t.Bits[i] = placeholderEven
			} else {
				t.Bits[i] = placeholderOdd
			}
		}
	}
	return t, nil
}

// Release frees the table storage. Calling it on a nil or never-baked
// table is a no-op. The table must not be used afterwards.
func (t *Table) Release() {
	if t == nil {
		return
	}
	t.Bits = nil
	t.populated = nil
}

// GlyphCount returns the number of glyph slots in the table.
func (t *Table) GlyphCount() int {
	return int(t.Last-t.First) + 1
}

// slot returns the byte offset of cp's glyph, or -1 if cp is outside
// the baked range.
func (t *Table) slot(cp rune) int {
	if cp < t.First || cp > t.Last {
		return -1
	}
	return int(cp-t.First) * t.BytesPerGlyph
}

// Glyph returns the packed bytes of cp's slot, or nil if cp is outside
// the baked range. The slice aliases the table storage.
func (t *Table) Glyph(cp rune) []byte {
	s := t.slot(cp)
	if s < 0 {
		return nil
	}
	return t.Bits[s : s+t.BytesPerGlyph]
}

// BitAt reports whether pixel (x, y) of cp's glyph is set. Coordinates
// outside the cell, or a cp outside the range, read as unset.
func (t *Table) BitAt(cp rune, x, y int) bool {
	s := t.slot(cp)
	if s < 0 || x < 0 || x >= t.CharWidth || y < 0 || y >= t.CharHeight {
		return false
	}
	b := t.Bits[s+y*t.BytesPerLine+x/8]
	return b&(1<<(7-uint(x%8))) != 0
}

// Populated reports whether cp's slot was actually baked from the
// source font, as opposed to left at the allocation fill.
func (t *Table) Populated(cp rune) bool {
	if cp < t.First || cp > t.Last || t.populated == nil {
		return false
	}
	return t.populated.Test(uint(cp - t.First))
}

// PopulatedCount returns how many slots were baked from the source.
func (t *Table) PopulatedCount() int {
	if t.populated == nil {
		return 0
	}
	return int(t.populated.Count())
}

func (t *Table) markPopulated(cp rune) {
	t.populated.Set(uint(cp - t.First))
}

// readFontFile reads at most maxFontFileBytes of the file at path. A
// missing file surfaces as the os.Open error (fs.ErrNotExist).
func readFontFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxFontFileBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
