// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package parser

import "unicode"

const eof = -1

// cursor is a position over the runes of a source.
type cursor struct {
	src []rune
	pos int
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.src)
}

func (c *cursor) peek() rune {
	return c.peekAt(0)
}

func (c *cursor) peekAt(off int) rune {
	if i := c.pos + off; i >= 0 && i < len(c.src) {
		return c.src[i]
	}
	return eof
}

func (c *cursor) next() rune {
	r := c.peek()
	if r != eof {
		c.pos++
	}
	return r
}

// run consumes runes while f holds and returns them.
func (c *cursor) run(f func(rune) bool) string {
	beg := c.pos
	for !c.eof() && f(c.src[c.pos]) {
		c.pos++
	}
	return string(c.src[beg:c.pos])
}

// matchFold reports whether the input at the cursor starts with s, ignoring case.
func (c *cursor) matchFold(s string) bool {
	i := c.pos
	for _, r := range s {
		if i >= len(c.src) || unicode.ToLower(c.src[i]) != unicode.ToLower(r) {
			return false
		}
		i++
	}
	return true
}

// skip advances past n runes.
func (c *cursor) skip(n int) {
	c.pos += n
	if c.pos > len(c.src) {
		c.pos = len(c.src)
	}
}

func (c *cursor) since(beg int) string {
	return string(c.src[beg:c.pos])
}

func (c *cursor) end() {
	c.pos = len(c.src)
}
