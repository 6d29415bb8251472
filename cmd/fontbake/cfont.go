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

package main

import (
	"fmt"
	"io"

	pixelfont "github.com/FelixBrendel/pixel-font-baker"
)

// emitC writes the table as C source compatible with Waveshare's sFONT
// struct, one row of hex bytes per pixel row, glyphs separated by a
// codepoint comment.
func emitC(w io.Writer, name string, t *pixelfont.Table) {
	fmt.Fprintf(w, "#include \"fonts.h\"\n\nconst uint8_t %s_Table[] =\n{\n", name)
	for cp := t.First; cp <= t.Last; cp++ {
		fmt.Fprintf(w, "  // %c %d\n", cp, cp)
		g := t.Glyph(cp)
		for y := 0; y < t.CharHeight; y++ {
			fmt.Fprint(w, " ")
			for _, b := range g[y*t.BytesPerLine : (y+1)*t.BytesPerLine] {
				fmt.Fprintf(w, " 0x%02X,", b)
			}
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintf(w, "};\n\nsFONT %s = {\n  %s_Table,\n  %d, /* Width */\n  %d, /* Height */\n};\n",
		name, name, t.CharWidth, t.CharHeight)
}
