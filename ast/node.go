package ast

import (
	"fmt"

	"github.com/xiam/lispster/lexer"
)

// Node represents an expression: either an atom (int, float or symbol) or a
// list of expressions. Nodes are immutable once created.
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// NewInt creates an integer atom
func NewInt(tok *lexer.Token, v int64) *Node {
	return newNode(NodeTypeInt, tok, v)
}

// NewFloat creates a floating point atom
func NewFloat(tok *lexer.Token, v float64) *Node {
	return newNode(NodeTypeFloat, tok, v)
}

// NewSymbol creates a symbol atom
func NewSymbol(tok *lexer.Token, name string) *Node {
	return newNode(NodeTypeSymbol, tok, name)
}

// NewList creates a list node that owns the given children. The slice must
// not be modified by the caller afterwards.
func NewList(tok *lexer.Token, children []*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return newNode(NodeTypeList, tok, children)
}

// Token returns the token the node was read from, it may be nil for nodes
// that were built programmatically.
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Value returns the raw value of an atom: int64, float64 or string. Lists
// return their children.
func (n *Node) Value() interface{} {
	return n.v
}

// Int returns the value of an int atom.
func (n *Node) Int() int64 {
	return n.v.(int64)
}

// Float returns the value of a float atom.
func (n *Node) Float() float64 {
	return n.v.(float64)
}

// Symbol returns the name of a symbol atom.
func (n *Node) Symbol() string {
	return n.v.(string)
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

// Len returns the number of children of a list node, zero for atoms.
func (n *Node) Len() int {
	if !n.IsList() {
		return 0
	}
	return len(n.List())
}

// IsSymbol reports whether the node is the symbol with the given name.
func (n *Node) IsSymbol(name string) bool {
	return n.nt == NodeTypeSymbol && n.v.(string) == name
}

// IsAtom returns true if the node is a number or a symbol
func (n *Node) IsAtom() bool {
	return n.nt&nodeTypeAtom > 0
}

// IsList returns true if the node is a list
func (n *Node) IsList() bool {
	return n.nt&nodeTypeList > 0
}

func (n *Node) String() string {
	if n.IsList() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.List()))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.v)
}
