package tree

import (
	"strings"

	"github.com/npillmayer/cyk"
	"github.com/npillmayer/cyk/grammar"
)

// Node is a node of a derivation tree. Leaf nodes carry a variable together
// with the terminal it derives and the input token; inner nodes carry a
// variable together with exactly two children.
type Node struct {
	label    grammar.Symbol
	terminal string // terminal value, for leaves only
	text     string // input token, for leaves only
	left     *Node
	right    *Node
	span     cyk.Span
}

func newLeaf(A grammar.Symbol, terminal, text string, pos uint64) *Node {
	return &Node{
		label:    A,
		terminal: terminal,
		text:     text,
		span:     cyk.Span{pos, pos + 1},
	}
}

func newInner(A grammar.Symbol, left, right *Node) *Node {
	return &Node{
		label: A,
		left:  left,
		right: right,
		span:  left.span.Extend(right.span),
	}
}

// Label returns the variable of a node.
func (node *Node) Label() grammar.Symbol {
	return node.label
}

// IsLeaf is true for leaf nodes.
func (node *Node) IsLeaf() bool {
	return node.left == nil
}

// Terminal returns the terminal value of a leaf, or "" for inner nodes.
func (node *Node) Terminal() string {
	return node.terminal
}

// Text returns the input token of a leaf, or "" for inner nodes.
func (node *Node) Text() string {
	return node.text
}

// Left returns the left child of an inner node, or nil for leaves.
func (node *Node) Left() *Node {
	return node.left
}

// Right returns the right child of an inner node, or nil for leaves.
func (node *Node) Right() *Node {
	return node.right
}

// Span returns the input positions covered by a node. Positions are 0-based,
// the end of the span is exclusive.
func (node *Node) Span() cyk.Span {
	return node.span
}

// Leaves returns the input tokens of the leaves of a (sub-)tree, from left
// to right.
func (node *Node) Leaves() []string {
	var leaves []string
	node.Walk(func(n *Node, depth int) bool {
		if n.IsLeaf() {
			leaves = append(leaves, n.text)
		}
		return true
	})
	return leaves
}

// Walk visits the nodes of a tree in pre-order, calling f with every node and
// its depth (the root has depth 0). If f returns false, the children of the
// node are skipped.
func (node *Node) Walk(f func(n *Node, depth int) bool) {
	node.walk(f, 0)
}

func (node *Node) walk(f func(*Node, int) bool, depth int) {
	if node == nil || !f(node, depth) || node.IsLeaf() {
		return
	}
	node.left.walk(f, depth+1)
	node.right.walk(f, depth+1)
}

// String returns a bracketed notation of a tree, e.g.
//
//    (S (NP she) (VP (V eats) (NP (Det a) (N cake))))
//
func (node *Node) String() string {
	if node == nil {
		return "()"
	}
	var b strings.Builder
	node.bracket(&b)
	return b.String()
}

func (node *Node) bracket(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteString(node.label.Name)
	b.WriteByte(' ')
	if node.IsLeaf() {
		b.WriteString(node.text)
	} else {
		node.left.bracket(b)
		b.WriteByte(' ')
		node.right.bracket(b)
	}
	b.WriteByte(')')
}
