package ast

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAppend(t *testing.T) {
	var tr Tree
	tr = tr.Append(Text("a"))
	tr = tr.Append(Text(""))
	tr = tr.Append(Text("b"))
	tr = tr.Append(&Tag{Name: "b", Children: Tree{Text("x")}})
	tr = tr.Append(Text("c"))
	want := Tree{Text("ab"), &Tag{Name: "b", Children: Tree{Text("x")}}, Text("c")}
	if d := cmp.Diff(want, tr); d != "" {
		t.Errorf("Append mismatch (-want +got):\n%s", d)
	}
}

func TestString(t *testing.T) {
	tr := Tree{
		Text("see "),
		&Tag{Name: "url", Attr: "http://x.test", Children: Tree{Text("here")}},
		&Tag{Name: "list", Children: Tree{
			&Tag{Name: "*", Children: Tree{Text("one")}},
		}},
	}
	want := "see [url=http://x.test]here[/url][list][*]one[/*][/list]"
	if got := tr.String(); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestStringQuotesAttr(t *testing.T) {
	cases := []struct {
		attr string
		want string
	}{
		{"a]b", `[quote="a]b"]x[/quote]`},
		{`say "a]b"`, `[quote='say "a]b"']x[/quote]`},
		{`it's "a]b"`, "[quote=`it's \"a]b\"`]x[/quote]"},
		{`"a"`, `[quote="a"]x[/quote]`},
	}
	for i, c := range cases {
		tr := Tree{&Tag{Name: "quote", Attr: c.attr, Children: Tree{Text("x")}}}
		if got := tr.String(); got != c.want {
			t.Errorf("case %d, attr %q, want %q, got %q", i, c.attr, c.want, got)
		}
	}
}

func TestWalkRemove(t *testing.T) {
	root := &Tag{Name: "quote", Children: Tree{
		Text("a"),
		&Tag{Name: "img", Children: Tree{Text("x.png")}},
		Text("b"),
	}}
	n, err := Walk(root, func(n Node) (Node, error) {
		if tag, ok := n.(*Tag); ok && tag.Name == "img" {
			return nil, nil
		}
		return n, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := &Tag{Name: "quote", Children: Tree{Text("ab")}}
	if d := cmp.Diff(want, n); d != "" {
		t.Errorf("Walk mismatch (-want +got):\n%s", d)
	}
}

func TestWalkError(t *testing.T) {
	stop := errors.New("stop")
	visited := 0
	root := &Tag{Name: "b", Children: Tree{&Tag{Name: "i", Children: Tree{Text("x")}}}}
	_, err := Walk(root, func(n Node) (Node, error) {
		visited++
		if _, ok := n.(*Tag); ok && visited > 1 {
			return n, stop
		}
		return n, nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("want %v, got %v", stop, err)
	}
	if visited != 2 {
		t.Errorf("want 2 nodes visited, got %d", visited)
	}
}
