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

// coverage is one glyph's greyscale sample buffer, possibly rendered at
// an integer supersample of the target cell, plus the placement of its
// top-left corner relative to the cell's baseline-anchored origin.
// Width, height and the offsets are in full-resolution pixels; the
// buffer itself is width*scale x height*scale samples.
type coverage struct {
	pix    []byte
	stride int
	width  int
	height int
	scale  int // supersample factor, >= 1

	xOffset int // full-res columns right of the cell origin
	yOffset int // full-res rows below the baseline (negative above)
}

// at returns the full-resolution sample at (x, y), averaging the
// scale*scale sub-pixel block when supersampling is active.
func (cov *coverage) at(x, y int) uint8 {
	if cov.scale <= 1 {
		return cov.pix[y*cov.stride+x]
	}
	sum := 0
	for sy := y * cov.scale; sy < (y+1)*cov.scale; sy++ {
		row := sy * cov.stride
		for sx := x * cov.scale; sx < (x+1)*cov.scale; sx++ {
			sum += int(cov.pix[row+sx])
		}
	}
	return uint8(sum / (cov.scale * cov.scale))
}

// bitCursor writes single bits MSB-first into a byte slice through an
// explicit (byte index, bit shift) position instead of raw pointer
// walking over the destination.
type bitCursor struct {
	buf   []byte
	index int
	shift int
}

// write ORs bit into the current position and steps one bit right,
// rolling over to the next byte when the shift underflows.
func (bp *bitCursor) write(bit bool) {
	if bit {
		bp.buf[bp.index] |= 1 << uint(bp.shift)
	}
	bp.shift--
	if bp.shift < 0 {
		bp.shift = 7
		bp.index++
	}
}

// packCoverage thresholds cov into the glyph slot starting at slot.
// Destination rows run from ascent+yOffset, destination columns from
// xOffset; ink falling outside the cell is clipped at the cell edge.
// Set bits are ORed in, so the routine is idempotent over a zeroed
// slot. The packed layout is MSB-first per row with rows aligned to
// BytesPerLine, matching what display drivers consume directly.
func (t *Table) packCoverage(slot int, cov *coverage, ascent int, threshold uint8) {
	xStart := cov.xOffset
	yStart := ascent + cov.yOffset
	xEnd := xStart + cov.width
	yEnd := yStart + cov.height

	x0 := max(0, xStart)
	x1 := min(xEnd, t.CharWidth)
	y1 := min(yEnd, t.CharHeight)

	for y := max(0, yStart); y < y1; y++ {
		// Each row's starting byte and shift are re-derived from the
		// first written column.
		bp := bitCursor{
			buf:   t.Bits,
			index: slot + y*t.BytesPerLine + x0/8,
			shift: 7 - x0%8,
		}
		for x := x0; x < x1; x++ {
			bp.write(cov.at(x-xStart, y-yStart) >= threshold)
		}
	}
}
