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

// Command fontbake converts a BDF bitmap font or a TrueType/OpenType
// outline font into a packed monospace 1bpp glyph table, and can write
// it out as raw bytes, as a Waveshare-style C source table, or as a PNG
// proof sheet.
package main

import (
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"
	flags "github.com/jessevdk/go-flags"

	pixelfont "github.com/FelixBrendel/pixel-font-baker"
)

var conf struct {
	BDF flags.Filename `long:"bdf" description:"BDF bitmap font to bake"`
	TTF flags.Filename `long:"ttf" description:"TrueType/OpenType font to bake"`

	First int `long:"first" description:"first codepoint, inclusive" default:"32"`
	Last  int `long:"last"  description:"last codepoint, inclusive"  default:"126"`

	Height      int   `short:"s" long:"height"      description:"cell height in px (outline fonts)" default:"16"`
	Threshold   uint8 `short:"t" long:"threshold"   description:"coverage threshold 0-255"          default:"128"`
	Supersample int   `long:"supersample"           description:"per-axis supersampling factor"     default:"1"`

	Out    flags.Filename `short:"o" long:"out"   description:"write the raw table bytes to this file"`
	CArray string         `short:"c" long:"c-arr" description:"emit a C sFONT table with this name to stdout"`
	PNG    flags.Filename `long:"png"  description:"write a PNG proof sheet to this file"`
	Zoom   int            `long:"zoom" description:"nearest-neighbour zoom of the proof sheet" default:"1"`
	Dump   bool           `long:"dump" description:"dump every glyph as text to stdout"`

	Debug bool `short:"d" long:"debug" description:"enable debug logging"`
}

var parser = flags.NewParser(&conf, flags.Default)

func main() {
	args, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if len(args) > 0 {
		log.Fatal("do not provide additional parameters")
	}
	if conf.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	if (conf.BDF == "") == (conf.TTF == "") {
		log.Fatal("exactly one of --bdf and --ttf is required")
	}
	first, last := rune(conf.First), rune(conf.Last)

	var table *pixelfont.Table
	if conf.BDF != "" {
		table, err = pixelfont.BakeBDFFile(string(conf.BDF), first, last)
	} else {
		table, err = pixelfont.BakeOutlineFile(string(conf.TTF),
			conf.Height, first, last, conf.Threshold, conf.Supersample)
	}
	if err != nil {
		log.Fatalf("bake: %v", err)
	}
	defer table.Release()

	log.Printf("baked %d of %d glyphs, cell %dx%d px, %d bytes per glyph, %d bytes total",
		table.PopulatedCount(), table.GlyphCount(),
		table.CharWidth, table.CharHeight, table.BytesPerGlyph, len(table.Bits))

	if conf.Dump {
		for cp := table.First; cp <= table.Last; cp++ {
			fmt.Printf("// %c %d\n%s", cp, cp, table.GlyphString(cp))
		}
	}
	if conf.CArray != "" {
		emitC(os.Stdout, conf.CArray, table)
	}
	if conf.Out != "" {
		if err := os.WriteFile(string(conf.Out), table.Bits, 0644); err != nil {
			log.Fatalf("write table: %v", err)
		}
	}
	if conf.PNG != "" {
		writePNG(string(conf.PNG), table, conf.Zoom)
	}
}

func writePNG(path string, table *pixelfont.Table, zoom int) {
	img := table.Image()
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("proof sheet: %v", err)
	}
	defer f.Close()
	if zoom > 1 {
		b := img.Bounds()
		zoomed := imaging.Resize(img, b.Dx()*zoom, b.Dy()*zoom, imaging.NearestNeighbor)
		err = png.Encode(f, zoomed)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		log.Fatalf("proof sheet: %v", err)
	}
}
