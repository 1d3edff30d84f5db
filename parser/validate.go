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

import (
	"regexp"
	"strconv"
	"strings"

	"akhil.cc/bbcode/ast"
	"akhil.cc/bbcode/catalog"
)

var (
	colorRx = regexp.MustCompile(`^([a-zA-Z]{3,20}|#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6})$`)
	idRx    = regexp.MustCompile(`^[0-9]+$`)
)

var listMarkers = map[string]bool{"1": true, "a": true, "*": true}

// validateOpen checks the tag's permission, attribute and position before its body is parsed.
func (p *parser) validateOpen(spec *catalog.Spec, hasAttr bool, attr string, pos int) bool {
	fail := func(e *Error) bool {
		e.Tag, e.Pos = spec.Name, pos
		p.fail(e)
		return false
	}
	if spec.Link && !p.opts.AllowLinks || spec.Image && !p.opts.AllowImages {
		return fail(&Error{Kind: DisallowedTag})
	}
	if hasAttr {
		if attr == "" {
			return fail(&Error{Kind: EmptyAttribute})
		}
		if k, ok := p.checkAttr(spec.Format, attr); !ok {
			return fail(&Error{Kind: k, Attr: attr})
		}
	}
	parent := p.parent()
	if want, ok := catalog.RequiredParent(spec.Name); ok && parent != want {
		return fail(&Error{Kind: InvalidNesting, Parent: parent, Want: want})
	}
	if !catalog.AllowsChild(parent, spec.Name) {
		return fail(&Error{Kind: InvalidNesting, Parent: parent})
	}
	if catalog.IsBlock(spec.Name) && parent != "" && !catalog.IsBlock(parent) {
		return fail(&Error{Kind: InvalidNesting, Parent: parent})
	}
	if limit := catalog.MaxDepth(spec.Name, p.opts.QuoteDepth); p.depth(spec.Name) >= limit {
		return fail(&Error{Kind: NestingDepthExceeded, Limit: limit})
	}
	return true
}

// checkAttr validates a value against format, returning the error kind on failure.
func (p *parser) checkAttr(format catalog.AttrFormat, v string) (Kind, bool) {
	switch format {
	case catalog.FormatListMarker:
		return InvalidAttribute, listMarkers[v]
	case catalog.FormatColor:
		return InvalidAttribute, colorRx.MatchString(v)
	case catalog.FormatURL:
		return InvalidAttribute, !strings.ContainsAny(v, "[]")
	case catalog.FormatEmail:
		return InvalidAttribute, p.opts.ValidEmail(v)
	case catalog.FormatID:
		return InvalidID, positiveID(v)
	}
	return 0, true
}

func positiveID(s string) bool {
	if !idRx.MatchString(s) {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n > 0
}

// validateContent checks the body of a tag once its close tag has been found.
func (p *parser) validateContent(spec *catalog.Spec, attr string, children ast.Tree, pos int) bool {
	fail := func(e *Error) bool {
		e.Tag, e.Pos = spec.Name, pos
		p.fail(e)
		return false
	}
	if len(children) == 0 {
		return fail(&Error{Kind: InvalidContent})
	}
	if !spec.SingleChild {
		return true
	}
	if len(children) != 1 {
		return fail(&Error{Kind: InvalidContent})
	}
	switch c := children[0].(type) {
	case ast.Text:
		if spec.Preformatted {
			return true
		}
		text := strings.TrimSpace(string(c))
		if text == "" {
			return fail(&Error{Kind: InvalidContent})
		}
		if attr != "" || spec.Format == catalog.FormatAny {
			return true
		}
		// Without an attribute the body is the link target.
		if k, ok := p.checkAttr(spec.Format, text); !ok {
			if k == InvalidAttribute {
				k = InvalidContent
			}
			return fail(&Error{Kind: k, Attr: text})
		}
	case *ast.Tag:
		// [url][img]src[/img][/url] links to the image itself.
		if !spec.Link || c.Name != "img" || attr == "" && spec.Format != catalog.FormatURL {
			return fail(&Error{Kind: InvalidContent})
		}
	}
	return true
}
