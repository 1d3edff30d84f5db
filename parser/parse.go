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

// Package parser implements a validating parser for BBCode source. It takes a string
// as input and outputs an ast.Tree, or an ErrorList describing why the source is invalid.
// A tree and errors are never returned together.
//
// The parser adheres to the following grammar:
//
//      name      = letter { letter } | asterisk .
//      attr      = quote { unicode_char } quote | { unicode_char } .
//      open_tag  = lbrack name [ equals attr ] rbrack .
//      close_tag = lbrack slash name rbrack .
//      tag       = open_tag sequence close_tag .
//      sequence  = { text | tag } .
//      source    = sequence .
//
// Names and close tags are matched without regard to case. An open tag that does
// not satisfy the grammar, names an unknown tag, or has an attribute where none is
// permitted (or lacks a required one) is kept as literal text. A well-formed tag
// that breaks the nesting, attribute or content rules of package catalog fails the
// whole document. Parsing stops at the first such failure.
//
// The bodies of [code] and [c] are not scanned for tags. A [*] list item is closed
// by [/*], or implicitly by the next [*] or the enclosing [/list].
package parser // import "akhil.cc/bbcode/parser"

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"akhil.cc/bbcode/ast"
	"akhil.cc/bbcode/catalog"
)

const (
	DefaultQuoteDepth = 3
	DefaultMaxLength  = 65535
)

// Options control which tags are permitted and how deep quotes may nest.
// Callers should start from DefaultOptions.
type Options struct {
	QuoteDepth  int
	MaxLength   int // in characters; zero means unbounded
	AllowLinks  bool
	AllowImages bool
	// ValidEmail reports whether s is an acceptable address for [email].
	// If nil, addresses are checked with net/mail.
	ValidEmail func(s string) bool
}

// DefaultOptions permits every tag.
func DefaultOptions() Options {
	return Options{
		QuoteDepth:  DefaultQuoteDepth,
		MaxLength:   DefaultMaxLength,
		AllowLinks:  true,
		AllowImages: true,
	}
}

// MustParse is like Parse but panics if the source cannot be parsed.
func MustParse(src string) ast.Tree {
	t, err := Parse(src)
	if err != nil {
		panic("Parse error: " + err.Error())
	}
	return t
}

// Parse parses the source with DefaultOptions.
func Parse(src string) (ast.Tree, error) {
	return ParseOptions(src, DefaultOptions())
}

// ParseOptions parses the source and if successful, returns its syntax tree.
// Otherwise the returned error is an ErrorList holding the first failure.
func ParseOptions(src string, opts Options) (ast.Tree, error) {
	if opts.QuoteDepth <= 0 {
		opts.QuoteDepth = DefaultQuoteDepth
	}
	if opts.ValidEmail == nil {
		opts.ValidEmail = validEmail
	}
	src = strings.TrimSpace(strings.ReplaceAll(src, "\r\n", "\n"))
	if opts.MaxLength > 0 && utf8.RuneCountInString(src) > opts.MaxLength {
		return nil, ErrorList{{Kind: InputTooLong, Limit: opts.MaxLength}}
	}
	if !strings.ContainsRune(src, '[') {
		return ast.Tree{}.Append(ast.Text(src)), nil
	}
	p := &parser{
		c:    cursor{src: []rune(src)},
		opts: opts,
	}
	tree := p.sequence("", 0)
	if p.err != nil {
		return nil, ErrorList{p.err}
	}
	return tree, nil
}

func validEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s
}

// parser holds the state of a single parse.
type parser struct {
	c     cursor
	opts  Options
	stack []string // open tags, innermost last
	err   *Error
}

// sequence = { text | tag } .
//
// sequence parses until the close tag of context, which it consumes.
// An empty context is the top level and runs to the end of input.
func (p *parser) sequence(context string, open int) ast.Tree {
	tree := ast.Tree{}
	var (
		closeTag     string
		preformatted bool
	)
	if context != "" {
		closeTag = "[/" + context + "]"
		spec, _ := catalog.Lookup(context)
		preformatted = spec.Preformatted
	}
	beg := p.c.pos
	flush := func() {
		tree = tree.Append(ast.Text(p.c.src[beg:p.c.pos]))
	}
	for p.err == nil && !p.c.eof() {
		if p.c.peek() != '[' {
			p.c.next()
			continue
		}
		if context != "" && p.c.matchFold(closeTag) {
			flush()
			p.c.skip(utf8.RuneCountInString(closeTag))
			return tree
		}
		if context == "*" && (p.c.matchFold("[*]") || p.c.matchFold("[/list]")) {
			flush()
			return tree
		}
		if preformatted || p.c.peekAt(1) == '/' || p.c.peekAt(1) == eof {
			p.c.next()
			continue
		}
		flush()
		if n := p.tag(); n != nil {
			tree = tree.Append(n)
		}
		beg = p.c.pos
	}
	if p.err != nil {
		return nil
	}
	flush()
	if context != "" {
		p.fail(&Error{Kind: UnterminatedTag, Tag: context, Pos: open})
		return nil
	}
	return tree
}

// tag = open_tag sequence close_tag .
//
// tag returns the literal text consumed if the input does not form an open tag,
// and nil if the tag fails validation.
func (p *parser) tag() ast.Node {
	beg := p.c.pos
	p.c.next()
	name := strings.ToLower(p.c.run(isNameRune))
	if p.c.eof() {
		return ast.Text(p.c.since(beg))
	}
	hasAttr := p.c.peek() == '='
	spec, ok := catalog.Lookup(name)
	if !ok || !spec.AcceptsAttr(hasAttr) {
		return ast.Text(p.c.since(beg))
	}
	var attr string
	if hasAttr {
		p.c.next()
		attr = p.attribute()
	}
	if p.c.peek() != ']' {
		return ast.Text(p.c.since(beg))
	}
	if !p.validateOpen(spec, hasAttr, attr, beg) {
		return nil
	}
	p.c.next()

	p.stack = append(p.stack, name)
	children := p.sequence(name, beg)
	p.stack = p.stack[:len(p.stack)-1]
	if p.err != nil {
		return nil
	}
	if name == "list" {
		children = dropBlank(children)
	}
	if !p.validateContent(spec, attr, children, beg) {
		return nil
	}
	return &ast.Tag{Name: name, Attr: attr, Children: children}
}

// attr = quote { unicode_char } quote | { unicode_char } .
//
// An unquoted value runs to the next rbrack. A quoted value runs to the matching
// quote. Neither may span lines. The value is returned without quotes.
func (p *parser) attribute() string {
	term := ']'
	quoted := false
	switch p.c.peek() {
	case '"', '\'', '`':
		term = p.c.next()
		quoted = true
	}
	val := p.c.run(func(r rune) bool { return r != term && r != '\n' })
	if quoted && p.c.peek() == term {
		p.c.next()
	}
	return strings.TrimSpace(val)
}

func (p *parser) fail(e *Error) {
	if p.err == nil {
		p.err = e
	}
	p.c.end()
}

func (p *parser) parent() string {
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

// depth returns how many times name is open along the ancestor chain.
func (p *parser) depth(name string) int {
	n := 0
	for _, s := range p.stack {
		if s == name {
			n++
		}
	}
	return n
}

func isNameRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '*'
}

func dropBlank(t ast.Tree) ast.Tree {
	out := t[:0]
	for _, n := range t {
		if txt, ok := n.(ast.Text); ok && strings.TrimSpace(string(txt)) == "" {
			continue
		}
		out = append(out, n)
	}
	return out
}
