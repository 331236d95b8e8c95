package ast

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xiam/lispster/lexer"
)

func TestNodeAtoms(t *testing.T) {
	tok := lexer.NewToken(lexer.TokenAtom, "10", 1, 1)

	{
		node := NewInt(&tok, 10)
		assert.True(t, node.IsAtom())
		assert.False(t, node.IsList())
		assert.Equal(t, NodeTypeInt, node.Type())
		assert.Equal(t, int64(10), node.Value())
		assert.Equal(t, &tok, node.Token())
		assert.Equal(t, 0, node.Len())
	}

	{
		node := NewFloat(&tok, 10.5)
		assert.Equal(t, NodeTypeFloat, node.Type())
		assert.Equal(t, 10.5, node.Float())
	}

	{
		node := NewSymbol(&tok, "abc")
		assert.Equal(t, NodeTypeSymbol, node.Type())
		assert.Equal(t, "abc", node.Symbol())
		assert.True(t, node.IsSymbol("abc"))
		assert.False(t, node.IsSymbol("ABC"))
	}
}

func TestNodeList(t *testing.T) {
	list := NewList(nil, []*Node{
		NewSymbol(nil, "+"),
		NewInt(nil, 1),
		NewInt(nil, 2),
	})

	assert.True(t, list.IsList())
	assert.False(t, list.IsAtom())
	assert.Equal(t, 3, list.Len())
	assert.Equal(t, "(list)[3]", list.String())
	assert.False(t, list.IsSymbol("+"))

	empty := NewList(nil, nil)
	assert.NotNil(t, empty.List())
	assert.Equal(t, 0, empty.Len())
}

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  *Node
		Out string
	}{
		{NewInt(nil, -3), `-3`},
		{NewFloat(nil, 2), `2.0`},
		{NewFloat(nil, 3.25), `3.25`},
		{NewFloat(nil, 1e21), `1e+21`},
		{NewFloat(nil, math.Inf(1)), `+Inf`},
		{NewSymbol(nil, "null?"), `null?`},
		{NewList(nil, nil), `()`},
		{
			NewList(nil, []*Node{
				NewSymbol(nil, "*"),
				NewSymbol(nil, "pi"),
				NewList(nil, []*Node{NewSymbol(nil, "*"), NewSymbol(nil, "r"), NewFloat(nil, 0.5)}),
			}),
			`(* pi (* r 0.5))`,
		},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, Encode(testCases[i].In))
	}
}

func TestFprint(t *testing.T) {
	list := NewList(nil, []*Node{
		NewSymbol(nil, "f"),
		NewList(nil, []*Node{NewInt(nil, 1)}),
	})

	var buf bytes.Buffer
	err := Fprint(&buf, list)
	assert.NoError(t, err)
	assert.Equal(t, "(list): (<nil>)\n"+
		"    (symbol): \"f\" (<nil>)\n"+
		"    (list): (<nil>)\n"+
		"        (int): 1 (<nil>)\n", buf.String())
}
