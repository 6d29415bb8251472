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

import "testing"

func TestCursorAdvance(t *testing.T) {
	c := newCursor([]byte("abc"))
	if err := c.advance(2); err != nil {
		t.Fatalf("advance(2): %v", err)
	}
	if c.remaining() != 1 {
		t.Errorf("remaining = %d, want 1", c.remaining())
	}
	if err := c.advance(2); err == nil {
		t.Error("advance past end: expected error")
	}
	if c.remaining() != 0 {
		t.Errorf("remaining after failed advance = %d, want 0", c.remaining())
	}
}

func TestCursorEatWhitespace(t *testing.T) {
	c := newCursor([]byte(" \t\r\n x"))
	c.eatWhitespace()
	if c.remaining() != 1 || c.peek() != 'x' {
		t.Errorf("cursor stopped at %q with %d remaining", c.peek(), c.remaining())
	}
}

func TestCursorEatToNextLine(t *testing.T) {
	c := newCursor([]byte("first line\n\n  second"))
	c.eatToNextLine()
	if string(c.rest()) != "second" {
		t.Errorf("rest = %q, want %q", c.rest(), "second")
	}
	c.eatToNextLine()
	if c.remaining() != 0 {
		t.Errorf("remaining = %d, want 0", c.remaining())
	}
}

func TestCursorSeekLinePrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		token string
		found bool
		rest  string
	}{
		{"first line", "TOKEN rest", "TOKEN ", true, "rest"},
		{"later line", "junk\nmore junk\nTOKEN rest", "TOKEN ", true, "rest"},
		{"mid-line text ignored", "not TOKEN here\nTOKEN x", "TOKEN ", true, "x"},
		{"absent", "nothing\nof note", "TOKEN ", false, ""},
		{"empty input", "", "TOKEN ", false, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newCursor([]byte(tc.input))
			if got := c.seekLinePrefix(tc.token); got != tc.found {
				t.Fatalf("seekLinePrefix = %v, want %v", got, tc.found)
			}
			if tc.found && string(c.rest()) != tc.rest {
				t.Errorf("rest = %q, want %q", c.rest(), tc.rest)
			}
		})
	}
}

func TestCursorParseInt(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{"  -7", -7, false},
		{"\t+13 tail", 13, false},
		{"007", 7, false},
		{"x", 0, true},
		{"", 0, true},
		{"\n5", 0, true}, // never crosses a line boundary
	}
	for _, tc := range tests {
		c := newCursor([]byte(tc.input))
		got, err := c.parseInt()
		if (err != nil) != tc.wantErr {
			t.Errorf("parseInt(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("parseInt(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestCursorParseHexByte(t *testing.T) {
	tests := []struct {
		input   string
		want    byte
		wantErr bool
	}{
		{"FF", 0xFF, false},
		{"a5", 0xA5, false},
		{"0C", 0x0C, false},
		{"G0", 0, true},
		{"F", 0, true},
		{"", 0, true},
	}
	for _, tc := range tests {
		c := newCursor([]byte(tc.input))
		got, err := c.parseHexByte()
		if (err != nil) != tc.wantErr {
			t.Errorf("parseHexByte(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("parseHexByte(%q) = %#02x, want %#02x", tc.input, got, tc.want)
		}
	}
}
