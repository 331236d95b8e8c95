package lispster

import (
	"fmt"
	"strings"

	"github.com/xiam/lispster/ast"
)

// Procedure is a user defined function. It keeps a reference to the
// environment it was created in, so definitions made there after the
// procedure was created are visible when it runs.
type Procedure struct {
	params []string
	body   *ast.Node
	env    *Environment
}

// Params returns the parameter names of the procedure.
func (p *Procedure) Params() []string {
	return p.params
}

// Body returns the expression evaluated when the procedure is applied.
func (p *Procedure) Body() *ast.Node {
	return p.body
}

// Apply evaluates the body in a new frame whose parent is the environment the
// procedure was defined in.
func (p *Procedure) Apply(args []*Value) (*Value, error) {
	frame, err := p.env.Extend(p.params, args)
	if err != nil {
		return nil, err
	}
	return Eval(p.body, frame)
}

func (p *Procedure) String() string {
	return fmt.Sprintf("<procedure (%s)>", strings.Join(p.params, " "))
}

// PrimitiveFunc implements a built-in operation. Arity has already been
// checked when it is called.
type PrimitiveFunc func(args []*Value) (*Value, error)

// Primitive is a built-in operation. MaxArgs is -1 for variadic primitives.
type Primitive struct {
	Name    string
	MinArgs int
	MaxArgs int
	Fn      PrimitiveFunc
}

// Apply checks the number of arguments and calls the primitive.
func (p *Primitive) Apply(args []*Value) (*Value, error) {
	if len(args) < p.MinArgs {
		return nil, &ArityError{Name: p.Name, Expected: p.MinArgs, Actual: len(args), Variadic: p.MaxArgs != p.MinArgs}
	}
	if p.MaxArgs >= 0 && len(args) > p.MaxArgs {
		return nil, &ArityError{Name: p.Name, Expected: p.MaxArgs, Actual: len(args), AtMost: p.MaxArgs != p.MinArgs}
	}
	return p.Fn(args)
}

func (p *Primitive) String() string {
	return fmt.Sprintf("<primitive %s>", p.Name)
}

var (
	_ = Callable(&Procedure{})
	_ = Callable(&Primitive{})
)
