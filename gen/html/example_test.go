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

// Examples for html.go
package html_test

import (
	"bytes"
	"fmt"
	"log"

	"akhil.cc/bbcode/gen"
	"akhil.cc/bbcode/gen/html"
	"akhil.cc/bbcode/parser"
)

func ExampleGen() {
	src := `[h]Heading[/h]
This is a paragraph.
[i]something something Gopher...[/i]`
	tree := parser.MustParse(src)
	g := html.Gen(tree, gen.Options{})
	var out bytes.Buffer
	g.Stdout = &out

	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", out.String())
	// Output:
	// <h5>Heading</h5><p>This is a paragraph.<br /><em>something something Gopher...</em></p>
}

func ExampleGenerator_Output() {
	src := "[quote=Frodo]It's a dangerous business :)[/quote]"
	tree := parser.MustParse(src)
	b, err := html.Gen(tree, gen.Options{Smilies: true, BaseURL: "https://shire.example"}).Output()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\n", b)
	// Output:
	// <div class="quotebox"><cite>Frodo wrote:</cite><blockquote><div><p>It&#39;s a dangerous business <img src="https://shire.example/img/smilies/smile.png" width="15" height="15" alt="smile" /></p></div></blockquote></div>
}

func ExampleRenderFallback() {
	src := "[b]never closed"
	if _, err := parser.Parse(src); err != nil {
		fmt.Println(html.RenderFallback(src, gen.Options{}))
	}
	// Output:
	// <p>[b]never closed</p>
}
