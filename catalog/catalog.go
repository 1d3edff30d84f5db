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

// Package catalog holds the fixed set of BBCode tags and the rules that govern them.
//
// Tag grammar (attribute presence, attribute format, body shape) is described by Spec.
// Nesting is governed by two independent tables: the child table restricts which tags a
// parent may directly contain, and the block table classifies tags that introduce
// paragraph-level structure. A block tag may only appear at the top level or directly
// inside another block tag.
package catalog // import "akhil.cc/bbcode/catalog"

// Attr describes whether a tag takes an attribute.
type Attr int

const (
	AttrNone Attr = iota
	AttrOptional
	AttrRequired
)

// AttrFormat selects the grammar an attribute value must satisfy.
type AttrFormat int

const (
	FormatAny AttrFormat = iota
	FormatListMarker
	FormatColor
	FormatURL
	FormatEmail
	FormatID
)

// Spec is the grammar of a single tag.
type Spec struct {
	Name   string
	Attr   Attr
	Format AttrFormat

	// Preformatted bodies are not scanned for tags.
	Preformatted bool
	// SingleChild bodies hold exactly one node: text, or an [img] for links.
	SingleChild bool
	// Link tags produce anchors and are subject to link permissions.
	Link bool
	// Image tags are subject to image permissions.
	Image bool
}

// AcceptsAttr reports whether the tag may appear with (has == true) or without an attribute.
func (s *Spec) AcceptsAttr(has bool) bool {
	switch s.Attr {
	case AttrNone:
		return !has
	case AttrRequired:
		return has
	}
	return true
}

var specs = map[string]*Spec{
	"quote":  {Name: "quote", Attr: AttrOptional},
	"img":    {Name: "img", Attr: AttrOptional, Format: FormatAny, SingleChild: true, Image: true},
	"code":   {Name: "code", Preformatted: true, SingleChild: true},
	"url":    {Name: "url", Attr: AttrOptional, Format: FormatURL, SingleChild: true, Link: true},
	"topic":  {Name: "topic", Attr: AttrOptional, Format: FormatID, SingleChild: true, Link: true},
	"post":   {Name: "post", Attr: AttrOptional, Format: FormatID, SingleChild: true, Link: true},
	"forum":  {Name: "forum", Attr: AttrOptional, Format: FormatID, SingleChild: true, Link: true},
	"user":   {Name: "user", Attr: AttrOptional, Format: FormatID, SingleChild: true, Link: true},
	"email":  {Name: "email", Attr: AttrOptional, Format: FormatEmail, SingleChild: true, Link: true},
	"b":      {Name: "b"},
	"i":      {Name: "i"},
	"u":      {Name: "u"},
	"s":      {Name: "s"},
	"c":      {Name: "c", Preformatted: true, SingleChild: true},
	"h":      {Name: "h"},
	"del":    {Name: "del"},
	"ins":    {Name: "ins"},
	"em":     {Name: "em"},
	"color":  {Name: "color", Attr: AttrRequired, Format: FormatColor},
	"colour": {Name: "colour", Attr: AttrRequired, Format: FormatColor},
	"list":   {Name: "list", Attr: AttrOptional, Format: FormatListMarker},
	"*":      {Name: "*"},
}

var inline = []string{"b", "i", "u", "s", "ins", "del", "em", "color", "colour", "url", "email", "topic", "post", "forum", "user"}

// children maps a parent to the only tags it may directly contain.
// Parents absent from the map are unrestricted.
var children = map[string]map[string]bool{
	"*":     set(append(inline, "c", "list", "img", "code")...),
	"list":  set("*"),
	"url":   set("img"),
	"email": set("img"),
	"topic": set("img"),
	"post":  set("img"),
	"forum": set("img"),
	"user":  set("img"),
	"img":   set(),
	"code":  set(),
	"c":     set(),
	"h":     set(inline...),
}

var block = set("quote", "code", "list", "h", "*")

// parents maps a tag to the parent it must be directly nested in.
var parents = map[string]string{
	"*": "list",
}

// MaxListDepth bounds nesting of [list] and [*].
const MaxListDepth = 5

var depth = map[string]int{
	"list": MaxListDepth,
	"*":    MaxListDepth,
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Lookup returns the spec for the lowercase tag name.
func Lookup(name string) (*Spec, bool) {
	s, ok := specs[name]
	return s, ok
}

// Names returns every recognized tag name.
func Names() []string {
	names := make([]string, 0, len(specs))
	for n := range specs {
		names = append(names, n)
	}
	return names
}

// AllowsChild reports whether child may be nested directly inside parent.
// An empty parent is the top level, which allows everything.
func AllowsChild(parent, child string) bool {
	if parent == "" {
		return true
	}
	allowed, restricted := children[parent]
	return !restricted || allowed[child]
}

// IsBlock reports whether the tag introduces paragraph-level structure.
func IsBlock(name string) bool {
	return block[name]
}

// RequiredParent returns the tag name must be directly nested in, if any.
func RequiredParent(name string) (string, bool) {
	p, ok := parents[name]
	return p, ok
}

// MaxDepth returns how many times the tag may appear along one ancestor chain.
// quoteDepth is the configured bound for [quote].
func MaxDepth(name string, quoteDepth int) int {
	if name == "quote" {
		return quoteDepth
	}
	if d, ok := depth[name]; ok {
		return d
	}
	return 1
}
