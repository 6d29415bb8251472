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
	"errors"
)

var errOutOfInput = errors.New("out of input")

// cursor is a bounds-checked view into an immutable source buffer.
// Advancing shrinks the remaining input; advancing past the end fails
// with errOutOfInput instead of reading out of bounds.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor {
	return &cursor{buf: buf}
}

func (c *cursor) remaining() int {
	return len(c.buf) - c.pos
}

func (c *cursor) rest() []byte {
	return c.buf[c.pos:]
}

// peek returns the current byte. Only valid while remaining() > 0.
func (c *cursor) peek() byte {
	return c.buf[c.pos]
}

func (c *cursor) advance(n int) error {
	if n > c.remaining() {
		c.pos = len(c.buf)
		return errOutOfInput
	}
	c.pos += n
	return nil
}

func (c *cursor) onNewline() bool {
	return c.remaining() > 0 && (c.peek() == '\n' || c.peek() == '\r')
}

func (c *cursor) onWhitespace() bool {
	if c.remaining() == 0 {
		return false
	}
	switch c.peek() {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func (c *cursor) eatWhitespace() {
	for c.onWhitespace() {
		c.pos++
	}
}

// eatToNextLine advances past the current line's newline, then past any
// following whitespace. If no newline remains, the cursor ends up at
// end of input.
func (c *cursor) eatToNextLine() {
	for c.remaining() > 0 && !c.onNewline() {
		c.pos++
	}
	c.eatWhitespace()
}

// seekLinePrefix advances line by line until the remaining input begins
// with token, then consumes the token and reports true. It reports
// false once the input is exhausted without a match.
func (c *cursor) seekLinePrefix(token string) bool {
	for {
		if bytes.HasPrefix(c.rest(), []byte(token)) {
			c.pos += len(token)
			return true
		}
		if c.remaining() == 0 {
			return false
		}
		c.eatToNextLine()
	}
}

// parseInt reads an optionally signed decimal integer, skipping spaces
// and tabs before it but never crossing a line boundary.
func (c *cursor) parseInt() (int, error) {
	for c.remaining() > 0 && (c.peek() == ' ' || c.peek() == '\t') {
		c.pos++
	}
	neg := false
	if c.remaining() > 0 && (c.peek() == '-' || c.peek() == '+') {
		neg = c.peek() == '-'
		c.pos++
	}
	n, digits := 0, 0
	for c.remaining() > 0 && c.peek() >= '0' && c.peek() <= '9' {
		n = n*10 + int(c.peek()-'0')
		c.pos++
		digits++
	}
	if digits == 0 {
		return 0, errOutOfInput
	}
	if neg {
		n = -n
	}
	return n, nil
}

// parseHexByte reads exactly two hex digits as one byte.
func (c *cursor) parseHexByte() (byte, error) {
	if c.remaining() < 2 {
		return 0, errOutOfInput
	}
	hi, ok1 := hexDigit(c.buf[c.pos])
	lo, ok2 := hexDigit(c.buf[c.pos+1])
	if !ok1 || !ok2 {
		return 0, errOutOfInput
	}
	c.pos += 2
	return hi<<4 | lo, nil
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
