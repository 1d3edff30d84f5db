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

// Package html converts a validated BBCode syntax tree into an HTML fragment.
// Text is always escaped. The generated markup is passed through Normalize,
// which settles paragraph and line break placement around block tags.
//
// Tags correspond to the following HTML:
// 	b                       <strong></strong>
// 	i, em                   <em></em>
// 	u                       <span class="bbu"></span>
// 	s                       <span class="bbs"></span>
// 	del, ins                <del></del>, <ins></ins>
// 	c                       <code class="code"></code>
// 	color, colour           <span style="color: X;"></span>
// 	h                       <h5></h5>
// 	quote                   <div class="quotebox"><cite></cite><blockquote><div><p></p></div></blockquote></div>
// 	code                    <div class="codebox"><pre><code></code></pre></div>
// 	list                    <ul></ul>, <ol class="decimal"></ol>, <ol class="alpha"></ol>
// 	*                       <li><p></p></li>
// 	img                     <img>, <span class="postimg"><img></span> or <a></a>
// 	url, email, topic,
// 	post, forum, user       <a href="" rel="nofollow"></a>
package html // import "akhil.cc/bbcode/gen/html"

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"path"
	"strings"

	"akhil.cc/bbcode/ast"
	"akhil.cc/bbcode/gen"
)

// Generator represents a non-reusable HTML output generator for an ast.Tree.
type Generator struct {
	// Stdout receives the normalized HTML.
	Stdout  io.Writer
	Options gen.Options
	ctx     context.Context
	tree    ast.Tree
}

// Gen returns the Generator to convert the given tree into HTML output.
func Gen(tree ast.Tree, opts gen.Options) *Generator {
	return &Generator{ctx: context.TODO(), tree: tree, Options: opts}
}

// GenContext is like Gen but includes a context, which halts generation
// between top-level nodes.
func GenContext(ctx context.Context, tree ast.Tree, opts gen.Options) *Generator {
	if ctx == nil {
		panic("nil context")
	}
	return &Generator{ctx: ctx, tree: tree, Options: opts}
}

// Run generates the HTML and writes it to Stdout.
func (g *Generator) Run() error {
	if g.Stdout == nil {
		g.Stdout = io.Discard
	}
	if g.Options.Translator == nil {
		g.Options.Translator = gen.English
	}
	var b strings.Builder
	for _, n := range g.tree {
		select {
		case <-g.ctx.Done():
			return g.ctx.Err()
		default:
			g.node(&b, n, true)
		}
	}
	_, err := io.WriteString(g.Stdout, Normalize(b.String()))
	return err
}

// Output runs the generator and returns its output.
func (g *Generator) Output() ([]byte, error) {
	if g.Stdout != nil {
		return nil, fmt.Errorf("Stdout already set")
	}
	var out bytes.Buffer
	g.Stdout = &out
	err := g.Run()
	return out.Bytes(), err
}

// Render returns the HTML for a tree returned by a successful parse.
func Render(tree ast.Tree, opts gen.Options) string {
	b, _ := Gen(tree, opts).Output()
	return string(b)
}

// RenderFallback renders source that failed to parse as plain text.
// No tags are interpreted.
func RenderFallback(src string, opts gen.Options) string {
	g := &Generator{Options: opts}
	src = strings.TrimSpace(strings.ReplaceAll(src, "\r\n", "\n"))
	return Normalize(g.text(src, true))
}

// node writes n. Bare URLs in text are linked only if autolink is set,
// which it is not inside link tags.
func (g *Generator) node(w *strings.Builder, n ast.Node, autolink bool) {
	switch t := n.(type) {
	case ast.Text:
		w.WriteString(g.text(string(t), autolink))
	case *ast.Tag:
		switch t.Name {
		case "img":
			w.WriteString(g.img(t))
		case "code":
			w.WriteString(g.code(t))
		case "c":
			w.WriteString(`<code class="code">` + html.EscapeString(interior(t)) + `</code>`)
		case "url", "email", "topic", "post", "forum", "user":
			w.WriteString(g.link(t))
		case "list":
			w.WriteString(g.list(t, autolink))
		default:
			w.WriteString(g.open(t))
			g.nodes(w, t.Children, autolink)
			w.WriteString(closers[t.Name])
		}
	}
}

func (g *Generator) nodes(w *strings.Builder, t ast.Tree, autolink bool) {
	for _, n := range t {
		g.node(w, n, autolink)
	}
}

var openers = map[string]string{
	"b":     "<strong>",
	"i":     "<em>",
	"u":     `<span class="bbu">`,
	"s":     `<span class="bbs">`,
	"del":   "<del>",
	"ins":   "<ins>",
	"em":    "<em>",
	"h":     "</p><h5>",
	"quote": `</p><div class="quotebox"><blockquote><div><p>`,
}

var closers = map[string]string{
	"b":      "</strong>",
	"i":      "</em>",
	"u":      "</span>",
	"s":      "</span>",
	"del":    "</del>",
	"ins":    "</ins>",
	"em":     "</em>",
	"color":  "</span>",
	"colour": "</span>",
	"h":      "</h5><p>",
	"quote":  "</p></div></blockquote></div><p>",
}

func (g *Generator) open(t *ast.Tag) string {
	attr := html.EscapeString(t.Attr)
	switch t.Name {
	case "color", "colour":
		return `<span style="color: ` + attr + `;">`
	case "quote":
		if attr != "" {
			return `</p><div class="quotebox"><cite>` + attr + " " + g.Options.Translator.T("wrote") +
				`</cite><blockquote><div><p>`
		}
	}
	return openers[t.Name]
}

// interior returns the text body of a single-child tag.
func interior(t *ast.Tag) string {
	if len(t.Children) == 0 {
		return ""
	}
	txt, _ := t.Children[0].(ast.Text)
	return string(txt)
}

func (g *Generator) img(t *ast.Tag) string {
	o := &g.Options
	url := strings.TrimSpace(interior(t))
	alt := t.Attr
	if alt == "" {
		alt = path.Base(url)
	}
	alt = html.EscapeString(alt)
	src := html.EscapeString(gen.PrependProtocol(url, t.Name, o.BaseURL, o.Protocol))
	switch {
	case o.ShowImages && o.IsSignature:
		return `<img class="sigimage" src="` + src + `" alt="` + alt + `" />`
	case o.ShowImages:
		return `<span class="postimg"><img src="` + src + `" alt="` + alt + `" /></span>`
	}
	return `<a href="` + src + `" rel="nofollow">&lt;` + o.Translator.T("image_link") + ` - ` + alt + `&gt;</a>`
}

// vscrollLines is the line count above which code blocks scroll.
const vscrollLines = 28

func (g *Generator) code(t *ast.Tag) string {
	code := html.EscapeString(strings.Trim(interior(t), "\n\r"))
	class := ""
	if strings.Count(code, "\n") > vscrollLines {
		class = ` class="vscroll"`
	}
	return `</p><div class="codebox"><pre` + class + `><code>` + code + `</code></pre></div><p>`
}

// link renders a link tag. The target is the attribute if there is one,
// otherwise the body, which may be an [img] to link to.
func (g *Generator) link(t *ast.Tag) string {
	o := &g.Options
	custom := t.Attr != ""
	var ref, inner string
	switch c := t.Children[0].(type) {
	case ast.Text:
		ref = strings.TrimSpace(string(c))
		if custom {
			inner = g.text(string(c), false)
		}
	case *ast.Tag:
		ref = strings.TrimSpace(interior(c))
		inner = g.img(c)
	}
	if custom {
		ref = strings.TrimSpace(t.Attr)
	}
	url := gen.TargetURL(t.Name, ref, o.BaseURL)
	if inner == "" {
		inner = html.EscapeString(gen.TruncateURL(url))
	}
	href := gen.PrependProtocol(url, t.Name, o.BaseURL, o.Protocol)
	return `<a href="` + html.EscapeString(href) + `" rel="nofollow">` + inner + `</a>`
}

func (g *Generator) list(t *ast.Tag, autolink bool) string {
	var items strings.Builder
	for _, n := range t.Children {
		items.WriteString("<li><p>")
		if item, ok := n.(*ast.Tag); ok && item.Name == "*" {
			g.nodes(&items, item.Children, autolink)
		} else {
			g.node(&items, n, autolink)
		}
		items.WriteString("</p></li>")
	}
	switch t.Attr {
	case "1":
		return `</p><ol class="decimal">` + items.String() + `</ol><p>`
	case "a":
		return `</p><ol class="alpha">` + items.String() + `</ol><p>`
	}
	return `</p><ul>` + items.String() + `</ul><p>`
}
