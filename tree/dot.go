package tree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot exports a derivation tree to the Graphviz DOT format. Inner nodes are
// drawn as ellipses labelled with their variable, leaves as boxes labelled
// with their variable and input token.
//
// Render it with
//
//    dot -Tpng tree.dot -o tree.png
//
func ToDot(root *Node, w io.Writer) error {
	dw := &dotWriter{w: w}
	dw.printf("digraph ParseTree {\n")
	dw.printf("node [shape=ellipse];\n")
	if root != nil {
		dw.node(root)
	}
	dw.printf("}\n")
	return dw.err
}

type dotWriter struct {
	w   io.Writer
	err error
	id  int
}

func (dw *dotWriter) printf(format string, args ...interface{}) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, format, args...)
}

// node writes a node and its sub-tree and returns the node's ID.
func (dw *dotWriter) node(n *Node) int {
	dw.id++
	id := dw.id
	if n.IsLeaf() {
		dw.printf("%d [label=\"%s\\n\\\"%s\\\"\", shape=box];\n", id, escape(n.label.Name), escape(n.text))
		return id
	}
	dw.printf("%d [label=\"%s\"];\n", id, escape(n.label.Name))
	for _, child := range []*Node{n.left, n.right} {
		c := dw.node(child)
		dw.printf("%d -> %d;\n", id, c)
	}
	return id
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escape(s string) string {
	return dotEscaper.Replace(s)
}
