package grammar

import (
	"fmt"
	"strings"

	"github.com/dhamidi/combo/parse"
)

// Span represents a range of the input.
type Span struct {
	Start parse.Position
	End   parse.Position
}

// Node represents a node in the concrete syntax tree.
// Leaf nodes hold the matched Token; interior nodes have Children.
type Node struct {
	Kind     string  // Production name, or the quoted literal for tokens
	Children []*Node // Child nodes (nil for leaves)
	Token    string  // Matched text of a leaf
	Span     Span
}

// IsTerminal returns true if this is a leaf node.
func (n *Node) IsTerminal() bool {
	return n.Children == nil
}

// AddChild appends a child node and widens the span to cover it.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
	if len(n.Children) == 1 {
		n.Span.Start = child.Span.Start
	}
	n.Span.End = child.Span.End
}

// Walk calls fn for n and its descendants in depth-first order. Returning
// false from fn skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Find returns every node of the given kind below and including n.
func (n *Node) Find(kind string) []*Node {
	var found []*Node
	n.Walk(func(m *Node) bool {
		if m.Kind == kind {
			found = append(found, m)
		}
		return true
	})
	return found
}

// String renders the tree one node per line, children indented below their
// parent.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n *Node) write(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Kind)
	if n.IsTerminal() && n.Kind != fmt.Sprintf("%q", n.Token) {
		fmt.Fprintf(b, " %q", n.Token)
	}
	fmt.Fprintf(b, " %d:%d-%d:%d\n",
		n.Span.Start.Line, n.Span.Start.Column, n.Span.End.Line, n.Span.End.Column)
	for _, child := range n.Children {
		child.write(b, depth+1)
	}
}

func newLeaf(kind, token string, span Span) *Node {
	if kind == "" {
		kind = fmt.Sprintf("%q", token)
	}
	return &Node{Kind: kind, Token: token, Span: span}
}

func newBranch(kind string) *Node {
	return &Node{
		Kind:     kind,
		Children: make([]*Node, 0),
	}
}
