// Package lispster is a small Lisp interpreter meant to be embedded in a host
// program for configuration expressions and rule evaluation.
//
// Text is turned into an expression with Parse and evaluated against an
// Environment with Eval:
//
//	env := lispster.StandardEnvironment(nil)
//	v, err := lispster.EvalString("(begin (define r 10) (* pi (* r r)))", env)
//
// The special forms are if, define and lambda. Everything else, including
// sequencing with begin, is provided by primitives installed in the root
// environment; hosts add their own with DefinePrimitive.
//
// Evaluation is recursive and has no tail call elimination. Set
// Config.MaxDepth to bound it. Environments are not safe for concurrent use.
package lispster
