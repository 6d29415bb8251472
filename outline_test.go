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
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestBakeOutlineGoRegular(t *testing.T) {
	table, err := BakeOutline(goregular.TTF, 16, 32, 90, 128, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer table.Release()

	if table.CharHeight != 16 {
		t.Errorf("CharHeight = %d, want 16", table.CharHeight)
	}
	if table.CharWidth <= 0 {
		t.Fatalf("CharWidth = %d", table.CharWidth)
	}
	wantLen := table.BytesPerGlyph * 59
	if len(table.Bits) != wantLen {
		t.Errorf("table len = %d, want %d", len(table.Bits), wantLen)
	}

	if !table.Populated('A') {
		t.Error("'A' not populated")
	}
	ink := false
	for _, b := range table.Glyph('A') {
		if b != 0 {
			ink = true
			break
		}
	}
	if !ink {
		t.Error("'A' baked without any ink")
	}

	// Space exists in the font but has no coverage above threshold, so
	// its slot stays all-zero.
	if !table.Populated(' ') {
		t.Error("space not populated")
	}
	for _, b := range table.Glyph(' ') {
		if b != 0 {
			t.Errorf("space glyph has ink: % x", table.Glyph(' '))
			break
		}
	}
}

func TestBakeOutlineSupersample(t *testing.T) {
	plain, err := BakeOutline(goregular.TTF, 16, 'A', 'Z', 128, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer plain.Release()
	smooth, err := BakeOutline(goregular.TTF, 16, 'A', 'Z', 128, 2)
	if err != nil {
		t.Fatal(err)
	}
	defer smooth.Release()

	// Same geometry either way; supersampling only changes which
	// samples cross the threshold.
	if plain.CharWidth != smooth.CharWidth || len(plain.Bits) != len(smooth.Bits) {
		t.Errorf("geometry differs: %dx%d/%d vs %dx%d/%d",
			plain.CharWidth, plain.CharHeight, len(plain.Bits),
			smooth.CharWidth, smooth.CharHeight, len(smooth.Bits))
	}
	ink := false
	for _, b := range smooth.Glyph('A') {
		if b != 0 {
			ink = true
			break
		}
	}
	if !ink {
		t.Error("supersampled 'A' baked without any ink")
	}
}

func TestBakeOutlineMissingGlyph(t *testing.T) {
	// Go Regular has no CJK coverage; the slot stays zero and reports
	// as not populated.
	table, err := BakeOutline(goregular.TTF, 16, 0x3042, 0x3042, 128, 1)
	if err != nil {
		t.Fatal(err)
	}
	defer table.Release()

	if table.Populated(0x3042) {
		t.Error("missing glyph reported populated")
	}
	for _, b := range table.Bits {
		if b != 0 {
			t.Errorf("missing glyph slot has ink: % x", table.Bits)
			break
		}
	}
}

func TestBakeOutlineInvalidFont(t *testing.T) {
	_, err := BakeOutline([]byte("definitely not a font"), 16, 32, 126, 128, 1)
	if !errors.Is(err, ErrFontFileInvalid) {
		t.Errorf("error = %v, want %v", err, ErrFontFileInvalid)
	}
}

func TestBakeOutlineBadGeometry(t *testing.T) {
	if _, err := BakeOutline(goregular.TTF, 0, 32, 126, 128, 1); !errors.Is(err, ErrAllocationFailed) {
		t.Errorf("height 0: error = %v, want %v", err, ErrAllocationFailed)
	}
	if _, err := BakeOutline(goregular.TTF, 16, 126, 32, 128, 1); !errors.Is(err, ErrAllocationFailed) {
		t.Errorf("inverted range: error = %v, want %v", err, ErrAllocationFailed)
	}
}

func TestOutlineMetrics(t *testing.T) {
	o, err := openOutline(goregular.TTF, 16)
	if err != nil {
		t.Fatal(err)
	}
	if o.ascent <= 0 || o.ascent > 16 {
		t.Errorf("ascent = %d, want within (0,16]", o.ascent)
	}
	if o.ascent+o.descent != 16 {
		t.Errorf("ascent %d + descent %d != cell height 16", o.ascent, o.descent)
	}
	if o.cellW <= 0 {
		t.Errorf("cell width = %d", o.cellW)
	}
}

func TestFloorCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, floor, ceil int
	}{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{8, 2, 4, 4},
		{-8, 2, -4, -4},
		{0, 3, 0, 0},
	}
	for _, tc := range tests {
		if got := floorDiv(tc.a, tc.b); got != tc.floor {
			t.Errorf("floorDiv(%d,%d) = %d, want %d", tc.a, tc.b, got, tc.floor)
		}
		if got := ceilDiv(tc.a, tc.b); got != tc.ceil {
			t.Errorf("ceilDiv(%d,%d) = %d, want %d", tc.a, tc.b, got, tc.ceil)
		}
	}
}
