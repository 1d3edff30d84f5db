package ast

import "strings"

//go:generate sumgen Node = Text | *Tag
type Node interface {
	node()
}

// Tree is an ordered sequence of nodes in document order.
// No two Text nodes in a Tree are ever adjacent.
type Tree []Node

// Text is literal content.
type Text string

// Tag is a validated BBCode tag. Name is lowercase and Attr is empty
// when the tag carries no attribute.
type Tag struct {
	Name     string
	Attr     string
	Children Tree
}

func (Text) node() {}
func (*Tag) node() {}

// Append adds n to the end of t, merging it into a trailing Text node.
// Empty text is dropped.
func (t Tree) Append(n Node) Tree {
	if txt, ok := n.(Text); ok {
		if txt == "" {
			return t
		}
		if len(t) > 0 {
			if last, ok := t[len(t)-1].(Text); ok {
				t[len(t)-1] = last + txt
				return t
			}
		}
	}
	return append(t, n)
}

// String reconstructs BBCode source for the tree.
func (t Tree) String() string {
	var b strings.Builder
	for _, n := range t {
		switch n := n.(type) {
		case Text:
			b.WriteString(string(n))
		case *Tag:
			b.WriteString("[" + n.Name)
			if n.Attr != "" {
				b.WriteString("=" + quoteAttr(n.Attr))
			}
			b.WriteString("]")
			b.WriteString(n.Children.String())
			b.WriteString("[/" + n.Name + "]")
		}
	}
	return b.String()
}

// quoteAttr quotes an attribute that would otherwise end its tag early,
// using the first quote character it does not contain.
func quoteAttr(a string) string {
	if !strings.ContainsRune(a, ']') {
		return a
	}
	for _, q := range []string{`"`, "'", "`"} {
		if !strings.Contains(a, q) {
			return q + a + q
		}
	}
	return a
}

// Walk calls f for n and then, depth first, for every descendant of a *Tag.
// If f returns a nil Node the node is removed from its parent's children.
func Walk(n Node, f Walker) (Node, error) {
	if n == nil {
		return nil, nil
	}
	nn, e := f(n)
	if e != nil {
		return n, e
	}
	if nn == nil {
		return nil, nil
	}
	n = nn
	if t, ok := n.(*Tag); ok {
		children := make(Tree, 0, len(t.Children))
		for _, c := range t.Children {
			s, e := Walk(c, f)
			if e != nil {
				return n, e
			}
			if s != nil {
				children = children.Append(s)
			}
		}
		t.Children = children
	}
	return n, nil
}

type Walker func(Node) (Node, error)
