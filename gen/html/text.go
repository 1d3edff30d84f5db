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
	"html"
	"path"
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// text escapes user text and applies, in order: censoring, escaping,
// link detection, smilies and whitespace preservation.
func (g *Generator) text(s string, autolink bool) string {
	o := &g.Options
	if o.Censor && o.Censorer != nil {
		s = o.Censorer.Censor(s)
	}
	s = html.EscapeString(s)
	if o.Links && autolink {
		s = g.linkify(s)
	}
	if o.Smilies {
		s = g.smilies(s)
	}
	return whitespace(s)
}

// whitespace keeps line breaks, tabs and runs of spaces visible.
func whitespace(s string) string {
	s = strings.ReplaceAll(s, "\n", "<br />")
	s = strings.ReplaceAll(s, "\t", "&#160; &#160; ")
	s = strings.ReplaceAll(s, "  ", "&#160; ")
	s = strings.ReplaceAll(s, "  ", " &#160;")
	return s
}

// linkRx matches bare URLs in escaped text.
var linkRx = regexp.MustCompile(`(?i)(https?://|www\.)([a-z0-9\-]+\.)+([a-z0-9]{2,})(/[a-z0-9\-\./]*(\?[a-z0-9\-_\.]+(=[a-z0-9\-_\.]*)?(&amp;[a-z0-9\-_\.]+(=[a-z0-9\-_\.]*)?)*)?(#[a-z0-9\-_]*)?)?`)

func (g *Generator) linkify(s string) string {
	return linkRx.ReplaceAllStringFunc(s, func(m string) string {
		href := m
		if !strings.HasPrefix(strings.ToLower(m), "http") {
			href = "https://" + m
		}
		return `<a href="` + href + `" rel="nofollow">` + m + `</a>`
	})
}

type smiley struct {
	text string
	img  string
	rx   *regexp2.Regexp
}

// smilies are tried in order.
var smilies = []*smiley{
	{text: ":)", img: "smile.png"},
	{text: "=)", img: "smile.png"},
	{text: ":|", img: "neutral.png"},
	{text: "=|", img: "neutral.png"},
	{text: ":(", img: "sad.png"},
	{text: "=(", img: "sad.png"},
	{text: ":D", img: "big_smile.png"},
	{text: "=D", img: "big_smile.png"},
	{text: ":o", img: "yikes.png"},
	{text: ":O", img: "yikes.png"},
	{text: ";)", img: "wink.png"},
	{text: ":/", img: "hmm.png"},
	{text: ":P", img: "tongue.png"},
	{text: ":p", img: "tongue.png"},
	{text: ":lol:", img: "lol.png"},
	{text: ":mad:", img: "mad.png"},
	{text: ":rolleyes:", img: "roll.png"},
	{text: ":cool:", img: "cool.png"},
}

func init() {
	// A smiley must follow whitespace or a tag and must not run into a word.
	for _, s := range smilies {
		s.rx = regexp2.MustCompile(`(?<=[>\s])`+regexp2.Escape(s.text)+`(?=[^\p{L}\p{N}])`, regexp2.None)
	}
}

func (g *Generator) smilies(s string) string {
	s = " " + s + " "
	for _, sm := range smilies {
		if !strings.Contains(s, sm.text) {
			continue
		}
		img := `<img src="` + html.EscapeString(g.Options.BaseURL+"/img/smilies/"+sm.img) +
			`" width="15" height="15" alt="` + strings.TrimSuffix(sm.img, path.Ext(sm.img)) + `" />`
		out, err := sm.rx.ReplaceFunc(s, func(regexp2.Match) string { return img }, -1, -1)
		if err == nil {
			s = out
		}
	}
	return s[1 : len(s)-1]
}
