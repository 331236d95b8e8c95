package lispster

import (
	"fmt"
	"sync/atomic"
)

var envID = uint64(0)

// Environment is a frame of bindings chained to an optional parent. Lookups
// walk the chain from the innermost frame outwards, definitions only touch
// the current frame.
//
// An Environment is not safe for concurrent use; hosts that evaluate from
// several goroutines against the same chain must serialize the calls.
type Environment struct {
	id uint64

	parent *Environment
	st     *symbolTable

	stack  *callStack
	config *Config
}

// NewEnvironment creates a frame whose parent is the given environment. A
// nil parent creates an empty root frame with the default configuration.
func NewEnvironment(parent *Environment) *Environment {
	env := &Environment{
		id:     atomic.AddUint64(&envID, 1),
		parent: parent,
		st:     newSymbolTable(),
	}
	if parent == nil {
		env.config = DefaultConfig()
		env.stack = &callStack{}
	} else {
		env.config = parent.config
		env.stack = parent.stack
	}
	return env
}

// NewRootEnvironment creates an empty root frame using the given
// configuration.
func NewRootEnvironment(cfg *Config) *Environment {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	env := NewEnvironment(nil)
	env.config = cfg
	env.stack.max = cfg.MaxDepth
	return env
}

// StandardEnvironment creates a root frame with the primitive table
// installed.
func StandardEnvironment(cfg *Config) *Environment {
	env := NewRootEnvironment(cfg)
	installPrimitives(env)
	return env
}

// Parent returns the enclosing frame, nil for a root frame.
func (env *Environment) Parent() *Environment {
	return env.parent
}

// Lookup returns the value bound to name in the nearest frame that defines
// it.
func (env *Environment) Lookup(name string) (*Value, error) {
	for e := env; e != nil; e = e.parent {
		if value, ok := e.st.Get(name); ok {
			return value, nil
		}
	}
	return nil, &UnboundSymbolError{Symbol: name}
}

// Define binds name in this frame, replacing any previous binding of the
// same name in this frame only.
func (env *Environment) Define(name string, value *Value) {
	env.config.tracef("env %d: define %s = %v", env.id, name, value)
	env.st.Set(name, value)
}

// DefinePrimitive binds a built-in operation in this frame. Use -1 as
// maxArgs for variadic primitives.
func (env *Environment) DefinePrimitive(name string, minArgs int, maxArgs int, fn PrimitiveFunc) {
	env.Define(name, newPrimitiveValue(&Primitive{
		Name:    name,
		MinArgs: minArgs,
		MaxArgs: maxArgs,
		Fn:      fn,
	}))
}

// Extend creates a child frame binding every parameter to the argument at
// the same position.
func (env *Environment) Extend(params []string, args []*Value) (*Environment, error) {
	if len(params) != len(args) {
		return nil, &ArityError{Name: "lambda", Expected: len(params), Actual: len(args)}
	}
	child := NewEnvironment(env)
	for i := range params {
		child.st.Set(params[i], args[i])
	}
	return child, nil
}

func (env *Environment) String() string {
	return fmt.Sprintf("<environment %d: %d bindings>", env.id, env.st.Len())
}
