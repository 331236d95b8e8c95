package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes an indented, human-readable representation of a node to w.
func Fprint(w io.Writer, n *Node) error {
	return printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) error {
	indent := strings.Repeat("    ", level)
	if n == nil {
		_, err := fmt.Fprintf(w, "%s:nil\n", indent)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s(%s): ", indent, n.Type()); err != nil {
		return err
	}
	switch n.Type() {

	case NodeTypeList:
		if _, err := fmt.Fprintf(w, "(%v)\n", n.Token()); err != nil {
			return err
		}
		list := n.List()
		for i := range list {
			if err := printLevel(w, list[i], level+1); err != nil {
				return err
			}
		}
		return nil

	case NodeTypeInt, NodeTypeFloat, NodeTypeSymbol:
		_, err := fmt.Fprintf(w, "%#v (%v)\n", n.Value(), n.Token())
		return err
	}

	panic("unknown node type")
}

// Encode transforms a node into its text representation.
func Encode(n *Node) string {
	var b strings.Builder
	encodeNode(&b, n)
	return b.String()
}

func encodeNode(b *strings.Builder, n *Node) {
	if n == nil {
		b.WriteString("()")
		return
	}
	switch n.Type() {
	case NodeTypeList:
		b.WriteByte('(')
		for i, child := range n.List() {
			if i > 0 {
				b.WriteByte(' ')
			}
			encodeNode(b, child)
		}
		b.WriteByte(')')
	case NodeTypeInt:
		b.WriteString(strconv.FormatInt(n.Int(), 10))
	case NodeTypeFloat:
		b.WriteString(FormatFloat(n.Float()))
	case NodeTypeSymbol:
		b.WriteString(n.Symbol())
	default:
		panic("unknown node type")
	}
}

// FormatFloat formats a float so that it never reads back as an integer:
// 2 is written as "2.0".
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}
