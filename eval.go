package lispster

import (
	"github.com/xiam/lispster/ast"
	"github.com/xiam/lispster/parser"
)

const (
	formIf     = "if"
	formDefine = "define"
	formLambda = "lambda"
)

// Parse reads a single expression from the given text.
func Parse(in string) (*ast.Node, error) {
	return parser.Parse(in)
}

// EvalString parses the given text and evaluates the expression in env.
func EvalString(in string, env *Environment) (*Value, error) {
	node, err := Parse(in)
	if err != nil {
		return nil, err
	}
	return Eval(node, env)
}

// Eval evaluates an expression in the given environment. Definitions made
// before an error is returned are kept.
func Eval(node *ast.Node, env *Environment) (*Value, error) {
	if err := env.stack.push(); err != nil {
		return nil, err
	}
	defer env.stack.pop()

	env.config.tracef("eval [%d] env %d: %v", env.stack.Depth(), env.id, encodedNode{node})

	switch node.Type() {
	case ast.NodeTypeSymbol:
		return env.Lookup(node.Symbol())
	case ast.NodeTypeInt:
		return NewInt(node.Int()), nil
	case ast.NodeTypeFloat:
		return NewFloat(node.Float()), nil
	case ast.NodeTypeList:
		return evalList(node, env)
	}

	panic("unreachable")
}

func evalList(node *ast.Node, env *Environment) (*Value, error) {
	list := node.List()
	if len(list) == 0 {
		return NewList(), nil
	}

	head := list[0]
	if head.Type() == ast.NodeTypeSymbol {
		switch head.Symbol() {
		case formIf:
			return evalIf(list, env)
		case formDefine:
			return evalDefine(list, env)
		case formLambda:
			return evalLambda(list, env)
		}
	}

	return evalApplication(list, env)
}

// (if test consequent alternative)
func evalIf(list []*ast.Node, env *Environment) (*Value, error) {
	if len(list) != 4 {
		return nil, &ArityError{Name: formIf, Expected: 3, Actual: len(list) - 1}
	}
	cond, err := Eval(list[1], env)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return Eval(list[2], env)
	}
	return Eval(list[3], env)
}

// (define symbol expression)
func evalDefine(list []*ast.Node, env *Environment) (*Value, error) {
	if len(list) != 3 {
		return nil, &ArityError{Name: formDefine, Expected: 2, Actual: len(list) - 1}
	}
	if list[1].Type() != ast.NodeTypeSymbol {
		return nil, &TypeError{Operation: formDefine, Operand: nodeToValue(list[1]), Expected: "symbol"}
	}
	value, err := Eval(list[2], env)
	if err != nil {
		return nil, err
	}
	env.Define(list[1].Symbol(), value)
	return value, nil
}

// (lambda (params...) body)
func evalLambda(list []*ast.Node, env *Environment) (*Value, error) {
	if len(list) != 3 {
		return nil, &ArityError{Name: formLambda, Expected: 2, Actual: len(list) - 1}
	}
	if list[1].Type() != ast.NodeTypeList {
		return nil, &TypeError{Operation: formLambda, Operand: nodeToValue(list[1]), Expected: "parameter list"}
	}
	params := make([]string, 0, list[1].Len())
	for _, param := range list[1].List() {
		if param.Type() != ast.NodeTypeSymbol {
			return nil, &TypeError{Operation: formLambda, Operand: nodeToValue(param), Expected: "symbol"}
		}
		params = append(params, param.Symbol())
	}
	return newProcedureValue(&Procedure{
		params: params,
		body:   list[2],
		env:    env,
	}), nil
}

func evalApplication(list []*ast.Node, env *Environment) (*Value, error) {
	head, err := Eval(list[0], env)
	if err != nil {
		return nil, err
	}
	fn, ok := head.Callable()
	if !ok {
		return nil, &TypeError{Operation: "apply", Operand: head, Expected: "procedure"}
	}

	args := make([]*Value, 0, len(list)-1)
	for _, item := range list[1:] {
		arg, err := Eval(item, env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	return fn.Apply(args)
}

// encodedNode defers encoding an expression until a trace line is actually
// written.
type encodedNode struct {
	node *ast.Node
}

func (e encodedNode) String() string {
	return ast.Encode(e.node)
}

// nodeToValue converts an expression into plain data, used to report
// offending operands of special forms.
func nodeToValue(node *ast.Node) *Value {
	switch node.Type() {
	case ast.NodeTypeInt:
		return NewInt(node.Int())
	case ast.NodeTypeFloat:
		return NewFloat(node.Float())
	case ast.NodeTypeSymbol:
		return NewSymbol(node.Symbol())
	}
	items := make([]*Value, 0, node.Len())
	for _, child := range node.List() {
		items = append(items, nodeToValue(child))
	}
	return NewList(items...)
}
