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

package catalog

import (
	"sort"
	"testing"
)

func TestLookup(t *testing.T) {
	names := Names()
	sort.Strings(names)
	if len(names) != 22 {
		t.Errorf("want 22 tags, got %d: %v", len(names), names)
	}
	for _, n := range names {
		s, ok := Lookup(n)
		if !ok || s.Name != n {
			t.Errorf("Lookup(%q) = %v, %v", n, s, ok)
		}
	}
	if _, ok := Lookup("B"); ok {
		t.Error("Lookup should only accept lowercase names")
	}
}

func TestAcceptsAttr(t *testing.T) {
	cases := []struct {
		tag  string
		has  bool
		want bool
	}{
		{"b", false, true},
		{"b", true, false},
		{"color", false, false},
		{"color", true, true},
		{"url", false, true},
		{"url", true, true},
	}
	for _, c := range cases {
		s, _ := Lookup(c.tag)
		if got := s.AcceptsAttr(c.has); got != c.want {
			t.Errorf("[%s].AcceptsAttr(%v) = %v, want %v", c.tag, c.has, got, c.want)
		}
	}
}

func TestAllowsChild(t *testing.T) {
	cases := []struct {
		parent, child string
		want          bool
	}{
		{"", "quote", true},
		{"quote", "quote", true},
		{"b", "img", true},
		{"list", "*", true},
		{"list", "b", false},
		{"*", "list", true},
		{"*", "quote", false},
		{"url", "img", true},
		{"url", "b", false},
		{"h", "b", true},
		{"h", "img", false},
		{"code", "b", false},
	}
	for _, c := range cases {
		if got := AllowsChild(c.parent, c.child); got != c.want {
			t.Errorf("AllowsChild(%q, %q) = %v, want %v", c.parent, c.child, got, c.want)
		}
	}
}

func TestStructure(t *testing.T) {
	for _, n := range []string{"quote", "code", "list", "h", "*"} {
		if !IsBlock(n) {
			t.Errorf("[%s] should be a block tag", n)
		}
	}
	if IsBlock("b") {
		t.Error("[b] should not be a block tag")
	}
	if p, ok := RequiredParent("*"); !ok || p != "list" {
		t.Errorf("RequiredParent(*) = %q, %v", p, ok)
	}
	if _, ok := RequiredParent("b"); ok {
		t.Error("[b] has no required parent")
	}
	if d := MaxDepth("quote", 7); d != 7 {
		t.Errorf("quote depth %d, want 7", d)
	}
	if d := MaxDepth("list", 3); d != MaxListDepth {
		t.Errorf("list depth %d, want %d", d, MaxListDepth)
	}
	if d := MaxDepth("b", 3); d != 1 {
		t.Errorf("b depth %d, want 1", d)
	}
}
