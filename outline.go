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
	"image"
	"image/draw"
	"log/slog"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// maxSupersample caps the per-axis supersampling factor of the outline
// path. Factors above it are clamped, factors below 1 mean "none".
const maxSupersample = 8

// outlineFont wraps the sfnt engine with the metrics the baker needs:
// a pixel scale hitting a target cell height, the monospace cell width,
// and per-codepoint coverage bitmaps.
type outlineFont struct {
	font *sfnt.Font
	buf  sfnt.Buffer

	ppem     fixed.Int26_6
	ascent   int // scaled pixels above the baseline
	descent  int // scaled pixels below the baseline
	cellW    int
	cellH    int
	rast     *vector.Rasterizer
	coverPix []byte
}

// openOutline parses the font and fixes the cell geometry for the
// requested pixel height. The cell width is the advance width of the
// capital W at that scale; downstream output depends on exactly this
// estimator, so it is not substituted by a per-font maximum.
func openOutline(data []byte, heightPx int) (*outlineFont, error) {
	if heightPx <= 0 {
		return nil, fmt.Errorf("char height %d: %w", heightPx, ErrAllocationFailed)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontFileInvalid, err)
	}
	o := &outlineFont{font: f, cellH: heightPx}

	// Scale so that ascent+descent spans the cell height, the
	// stb_truetype ScaleForPixelHeight convention. Metrics scale
	// linearly without hinting, so one probe fixes the ppem.
	probe := fixed.I(heightPx)
	m, err := f.Metrics(&o.buf, probe, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontFileInvalid, err)
	}
	span := m.Ascent + m.Descent
	if span <= 0 {
		return nil, fmt.Errorf("%w: degenerate vertical metrics", ErrFontFileInvalid)
	}
	o.ppem = fixed.Int26_6(int64(probe) * int64(fixed.I(heightPx)) / int64(span))

	m, err = f.Metrics(&o.buf, o.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontFileInvalid, err)
	}
	o.ascent = int(float64(m.Ascent)/64 + 0.5)
	o.descent = heightPx - o.ascent

	wi, err := f.GlyphIndex(&o.buf, 'W')
	if err != nil || wi == 0 {
		return nil, fmt.Errorf("%w: no capital W to size the cell", ErrFontFileInvalid)
	}
	adv, err := f.GlyphAdvance(&o.buf, wi, o.ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontFileInvalid, err)
	}
	o.cellW = int(math.Ceil(float64(adv) / 64))
	return o, nil
}

// rasterize samples cp's outline at supersample times the cell scale
// and returns its coverage buffer, or nil if the font has no ink for cp
// (missing glyph or a blank one such as space). populated reports
// whether the codepoint exists in the font at all.
func (o *outlineFont) rasterize(cp rune, supersample int) (cov *coverage, populated bool) {
	gi, err := o.font.GlyphIndex(&o.buf, cp)
	if err != nil || gi == 0 {
		return nil, false
	}
	ss := min(max(supersample, 1), maxSupersample)
	segs, err := o.font.LoadGlyph(&o.buf, gi, o.ppem.Mul(fixed.I(ss)), nil)
	if err != nil {
		return nil, false
	}
	if len(segs) == 0 {
		return nil, true
	}

	minX, minY := fixed.Int26_6(math.MaxInt32), fixed.Int26_6(math.MaxInt32)
	maxX, maxY := fixed.Int26_6(math.MinInt32), fixed.Int26_6(math.MinInt32)
	for _, seg := range segs {
		for _, p := range segPoints(seg) {
			minX = min(minX, p.X)
			maxX = max(maxX, p.X)
			minY = min(minY, p.Y)
			maxY = max(maxY, p.Y)
		}
	}

	// Snap the box to full-resolution pixels so the supersampled buffer
	// stays aligned with the cell grid.
	xOff := floorDiv(minX.Floor(), ss)
	yOff := floorDiv(minY.Floor(), ss)
	w := ceilDiv(maxX.Ceil(), ss) - xOff
	h := ceilDiv(maxY.Ceil(), ss) - yOff
	if w <= 0 || h <= 0 {
		return nil, true
	}

	ws, hs := w*ss, h*ss
	if o.rast == nil {
		o.rast = vector.NewRasterizer(ws, hs)
	} else {
		o.rast.Reset(ws, hs)
	}
	o.rast.DrawOp = draw.Src
	dx, dy := float32(xOff*ss), float32(yOff*ss)
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			o.rast.MoveTo(
				float32(seg.Args[0].X)/64-dx,
				float32(seg.Args[0].Y)/64-dy)
		case sfnt.SegmentOpLineTo:
			o.rast.LineTo(
				float32(seg.Args[0].X)/64-dx,
				float32(seg.Args[0].Y)/64-dy)
		case sfnt.SegmentOpQuadTo:
			o.rast.QuadTo(
				float32(seg.Args[0].X)/64-dx,
				float32(seg.Args[0].Y)/64-dy,
				float32(seg.Args[1].X)/64-dx,
				float32(seg.Args[1].Y)/64-dy)
		case sfnt.SegmentOpCubeTo:
			o.rast.CubeTo(
				float32(seg.Args[0].X)/64-dx,
				float32(seg.Args[0].Y)/64-dy,
				float32(seg.Args[1].X)/64-dx,
				float32(seg.Args[1].Y)/64-dy,
				float32(seg.Args[2].X)/64-dx,
				float32(seg.Args[2].Y)/64-dy)
		}
	}

	if ws*hs > len(o.coverPix) {
		o.coverPix = make([]byte, ws*hs)
	}
	dst := &image.Alpha{
		Pix:    o.coverPix[:ws*hs],
		Stride: ws,
		Rect:   image.Rect(0, 0, ws, hs),
	}
	o.rast.Draw(dst, dst.Rect, image.Opaque, image.Point{})

	return &coverage{
		pix:     dst.Pix,
		stride:  dst.Stride,
		width:   w,
		height:  h,
		scale:   ss,
		xOffset: xOff,
		yOffset: yOff,
	}, true
}

func segPoints(seg sfnt.Segment) []fixed.Point26_6 {
	switch seg.Op {
	case sfnt.SegmentOpQuadTo:
		return seg.Args[:2]
	case sfnt.SegmentOpCubeTo:
		return seg.Args[:3]
	}
	return seg.Args[:1]
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// BakeOutline builds a packed glyph table for [first,last] from a
// scalable outline font (TrueType/OpenType). heightPx fixes the cell
// height; the cell width follows the capital-W advance at that scale.
// Coverage at or above threshold becomes an inked pixel. supersample
// greater than 1 renders each glyph at that multiple per axis and
// averages the sub-pixels before thresholding, anti-aliasing the 1-bit
// result. Codepoints the font does not provide are left all-zero and
// report as not populated.
func BakeOutline(data []byte, heightPx int, first, last rune, threshold uint8, supersample int) (*Table, error) {
	o, err := openOutline(data, heightPx)
	if err != nil {
		return nil, err
	}
	t, err := newTable(o.cellW, o.cellH, first, last, fillZero)
	if err != nil {
		return nil, err
	}
	slog.Debug("baking outline glyph table",
		"width", t.CharWidth, "height", t.CharHeight,
		"bytes_per_line", t.BytesPerLine, "bytes_per_glyph", t.BytesPerGlyph,
		"ascent", o.ascent, "descent", o.descent,
		"glyphs", t.GlyphCount())

	for cp := first; cp <= last; cp++ {
		cov, populated := o.rasterize(cp, supersample)
		if !populated {
			continue
		}
		if cov != nil {
			t.packCoverage(t.slot(cp), cov, o.ascent, threshold)
		}
		t.markPopulated(cp)
	}
	return t, nil
}

// BakeOutlineFile is BakeOutline over the contents of the file at path.
// At most maxFontFileBytes are read.
func BakeOutlineFile(path string, heightPx int, first, last rune, threshold uint8, supersample int) (*Table, error) {
	data, err := readFontFile(path)
	if err != nil {
		return nil, err
	}
	return BakeOutline(data, heightPx, first, last, threshold, supersample)
}
