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

package html

import (
	"regexp"
	"strings"
)

var (
	brAfterP  = regexp.MustCompile(`(?i)(</?p>)(?:\s*?<br />){1,2}`)
	brBeforeP = regexp.MustCompile(`(?i)(?:<br />\s*?){1,2}(</?p>)`)
	doubleBr  = regexp.MustCompile(`(?i)<br />\s*?<br />`)
)

// Normalize wraps generated markup in a paragraph and settles the paragraphs
// and line breaks around block tags. Each step depends on the one before.
func Normalize(body string) string {
	s := "<p>" + strings.TrimSpace(body) + "</p>"
	// Breaks next to paragraph boundaries are absorbed by the boundary.
	s = brAfterP.ReplaceAllString(s, "$1")
	s = brBeforeP.ReplaceAllString(s, "$1")
	// Block tags close and reopen the paragraph around themselves.
	s = strings.ReplaceAll(s, "<p></p>", "")
	s = doubleBr.ReplaceAllString(s, "</p><p>")
	s = strings.ReplaceAll(s, "<p><br />", "<br /><p>")
	s = strings.ReplaceAll(s, "<br /></p>", "</p><br />")
	s = strings.ReplaceAll(s, "<p></p>", "<br /><br />")
	return s
}
