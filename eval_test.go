package lispster

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/lispster/parser"
)

func mustEval(t *testing.T, env *Environment, in string) *Value {
	t.Helper()
	v, err := EvalString(in, env)
	require.NoError(t, err, "input: %q", in)
	require.NotNil(t, v)
	return v
}

func TestEval(t *testing.T) {
	type testexpr []struct {
		expr   string
		result string
	}
	testCases := []struct {
		name string
		testexpr
	}{
		{"atoms", testexpr{
			{"3", "3"},
			{"-3", "-3"},
			{"2.5", "2.5"},
			{"()", "()"},
			{"pi", "3.141592653589793"},
		}},
		{"arithmetic", testexpr{
			{"(* 2 3)", "6"},
			{"(+ 1 2)", "3"},
			{"(+ 1 (* 2 3))", "7"},
			{"(+ 1 1.5)", "2.5"},
			{"(- 0.5 1)", "-0.5"},
			{"(/ 6 3)", "2.0"},
		}},
		{"define persists", testexpr{
			{"(define r 10)", "10"},
			{"r", "10"},
			{"(* pi (* r r))", "314.1592653589793"},
			{"(define r 2)", "2"},
			{"(* r r)", "4"},
		}},
		{"if", testexpr{
			{"(if (> 3 2) 1 2)", "1"},
			{"(if (> 2 3) 1 2)", "2"},
			{"(if () 1 2)", "2"},
			{"(if 0.0 1 2)", "2"},
			{"(if (list 0) 1 2)", "1"},
			{"(if car 1 2)", "1"},
		}},
		{"lambda", testexpr{
			{"((lambda (x y) (+ x y)) 1 2)", "3"},
			{"((lambda () 42))", "42"},
			{"(lambda (x y) (+ x y))", "<procedure (x y)>"},
			{"(define square (lambda (x) (* x x)))", "<procedure (x)>"},
			{"(square 12)", "144"},
			{"(map square (list 1 2 3))", "(1 4 9)"},
		}},
		{"recursion", testexpr{
			{"(define fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1))))))", "<procedure (n)>"},
			{"(fact 10)", "3628800"},
			{"(fact 20)", "2432902008176640000"},
			{"(define fib (lambda (n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2))))))", "<procedure (n)>"},
			{"(fib 15)", "610"},
		}},
		{"lexical scope", testexpr{
			{"(define make-adder (lambda (n) (lambda (x) (+ x n))))", "<procedure (n)>"},
			{"(define add2 (make-adder 2))", "<procedure (x)>"},
			{"(add2 3)", "5"},
			{"(define n 100)", "100"},
			{"(add2 3)", "5"},
			{"((lambda (n) (add2 n)) 7)", "9"},
		}},
		{"begin", testexpr{
			{"(begin (define a 1) (define b 2) (+ a b))", "3"},
			{"(begin 1)", "1"},
			{"a", "1"},
		}},
		{"define in frame", testexpr{
			{"(define g (lambda (x) (begin (define local (* x 2)) local)))", "<procedure (x)>"},
			{"(g 4)", "8"},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := StandardEnvironment(nil)
			for _, expr := range tc.testexpr {
				v := mustEval(t, env, expr.expr)
				assert.Equal(t, expr.result, v.String(), "input: %q", expr.expr)
			}
		})
	}
}

func TestEvalNumberTypes(t *testing.T) {
	env := StandardEnvironment(nil)

	v := mustEval(t, env, "(* 2 3)")
	assert.Equal(t, ValueTypeInt, v.Type)
	assert.Equal(t, int64(6), v.Int())

	v = mustEval(t, env, "10.5")
	assert.Equal(t, ValueTypeFloat, v.Type)
	assert.Equal(t, 10.5, v.Float64())
}

func TestEvalClosureCapturesByReference(t *testing.T) {
	env := StandardEnvironment(nil)

	mustEval(t, env, "(define x 1)")
	mustEval(t, env, "(define get-x (lambda () x))")
	assert.Equal(t, int64(1), mustEval(t, env, "(get-x)").Int())

	mustEval(t, env, "(define x 2)")
	assert.Equal(t, int64(2), mustEval(t, env, "(get-x)").Int())
}

func TestEvalClosureOutlivesCall(t *testing.T) {
	env := StandardEnvironment(nil)

	mustEval(t, env, "(define counter (lambda (start) (lambda () start)))")
	mustEval(t, env, "(define c1 (counter 1))")
	mustEval(t, env, "(define c2 (counter 2))")

	assert.Equal(t, int64(1), mustEval(t, env, "(c1)").Int())
	assert.Equal(t, int64(2), mustEval(t, env, "(c2)").Int())
}

func TestEvalIfShortCircuit(t *testing.T) {
	env := StandardEnvironment(nil)

	assert.Equal(t, int64(1), mustEval(t, env, "(if (> 3 2) 1 (undefined-fn))").Int())
	assert.Equal(t, int64(2), mustEval(t, env, "(if (> 2 3) (car 5) 2)").Int())

	mustEval(t, env, "(if 1 (define taken 1) (define untaken 1))")
	_, err := env.Lookup("untaken")
	assert.Error(t, err)
	_, err = env.Lookup("taken")
	assert.NoError(t, err)
}

func TestEvalUsesDefiningEnvironment(t *testing.T) {
	env := StandardEnvironment(nil)

	mustEval(t, env, "(define g (lambda () y))")
	_, err := EvalString("((lambda (y) (g)) 1)", env)

	var unbound *UnboundSymbolError
	require.True(t, errors.As(err, &unbound))
	assert.Equal(t, "y", unbound.Symbol)
}

func TestEvalErrors(t *testing.T) {
	var (
		unbound *UnboundSymbolError
		arity   *ArityError
		typeErr *TypeError
		syntax  *SyntaxError
	)

	testCases := []struct {
		In     string
		Target interface{}
	}{
		{"(foo 1 2)", &unbound},
		{"undefined", &unbound},
		{"(+ 1 undefined)", &unbound},
		{"((lambda (x) x))", &arity},
		{"((lambda (x) x) 1 2)", &arity},
		{"(if 1 2)", &arity},
		{"(if 1 2 3 4)", &arity},
		{"(define x)", &arity},
		{"(lambda (x))", &arity},
		{"(car)", &arity},
		{"(< 1 2 3)", &arity},
		{"(+ 1 (list))", &typeErr},
		{"(1 2)", &typeErr},
		{"((list) 2)", &typeErr},
		{"(define 1 2)", &typeErr},
		{"(define (f x) x)", &typeErr},
		{"(lambda x x)", &typeErr},
		{"(lambda (1) x)", &typeErr},
		{"(+ 1 2", &syntax},
		{")", &syntax},
	}

	for i := range testCases {
		env := StandardEnvironment(nil)
		v, err := EvalString(testCases[i].In, env)
		assert.Nil(t, v, "input: %q", testCases[i].In)
		require.Error(t, err, "input: %q", testCases[i].In)
		assert.True(t, errors.As(err, testCases[i].Target), "input: %q, got: %v", testCases[i].In, err)
	}
}

func TestEvalUnboundCall(t *testing.T) {
	_, err := EvalString("(foo 1 2)", StandardEnvironment(nil))
	assert.EqualError(t, err, "unbound symbol: foo")
}

func TestEvalSyntaxErrorKinds(t *testing.T) {
	env := StandardEnvironment(nil)

	_, err := EvalString("(+ 1 2", env)
	assert.True(t, errors.Is(err, parser.ErrUnexpectedEOF))

	_, err = EvalString(")", env)
	assert.True(t, errors.Is(err, parser.ErrUnexpectedCloseParen))
}

func TestEvalKeepsEarlierDefinitions(t *testing.T) {
	env := StandardEnvironment(nil)

	_, err := EvalString("(begin (define a 1) (undefined-fn))", env)
	require.Error(t, err)

	assert.Equal(t, int64(1), mustEval(t, env, "a").Int())
}

func TestEvalArgumentOrder(t *testing.T) {
	env := StandardEnvironment(nil)

	// The first failing argument, from left to right, is reported.
	_, err := EvalString("(+ first-missing second-missing)", env)

	var unbound *UnboundSymbolError
	require.True(t, errors.As(err, &unbound))
	assert.Equal(t, "first-missing", unbound.Symbol)

	seen := []int64{}
	env.DefinePrimitive("note", 1, 1, func(args []*Value) (*Value, error) {
		seen = append(seen, args[0].Int())
		return args[0], nil
	})

	v := mustEval(t, env, "(list (note 1) (note 2) (note (+ 1 2)))")
	assert.Equal(t, "(1 2 3)", v.String())
	assert.Equal(t, []int64{1, 2, 3}, seen)
}

func TestEvalHostPrimitive(t *testing.T) {
	env := StandardEnvironment(nil)
	env.DefinePrimitive("double", 1, 1, func(args []*Value) (*Value, error) {
		if args[0].Type != ValueTypeInt {
			return nil, &TypeError{Operation: "double", Operand: args[0], Expected: "int"}
		}
		return NewInt(args[0].Int() * 2), nil
	})

	assert.Equal(t, int64(42), mustEval(t, env, "(double 21)").Int())
	assert.Equal(t, "(2 4)", mustEval(t, env, "(map double (list 1 2))").String())

	_, err := EvalString("(double)", env)
	var arity *ArityError
	require.True(t, errors.As(err, &arity))
	assert.Equal(t, "double", arity.Name)

	_, err = EvalString("(double 1.5)", env)
	assert.EqualError(t, err, "double: expected int, got 1.5 (float)")
}

func TestEvalMaxDepth(t *testing.T) {
	env := StandardEnvironment(&Config{MaxDepth: 64})

	mustEval(t, env, "(define loop (lambda (n) (loop n)))")

	_, err := EvalString("(loop 1)", env)
	assert.True(t, errors.Is(err, ErrMaxDepth))
	assert.Equal(t, 0, env.stack.Depth())

	_, err = EvalString("(map loop (list 1))", env)
	assert.True(t, errors.Is(err, ErrMaxDepth))
	assert.Equal(t, 0, env.stack.Depth())

	mustEval(t, env, "(define fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1))))))")
	assert.Equal(t, int64(120), mustEval(t, env, "(fact 5)").Int())
}

func TestEvalTrace(t *testing.T) {
	var buf bytes.Buffer
	env := StandardEnvironment(&Config{Logger: log.New(&buf, "", 0)})

	mustEval(t, env, "(define r (+ 1 2))")

	assert.Contains(t, buf.String(), "eval [1]")
	assert.Contains(t, buf.String(), "(define r (+ 1 2))")
	assert.Contains(t, buf.String(), "eval [2]")
	assert.Contains(t, buf.String(), "define r = 3")
}

func TestParse(t *testing.T) {
	node, err := Parse("(+ 1 2)")
	require.NoError(t, err)

	v, err := Eval(node, StandardEnvironment(nil))
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int())

	// The same expression can be evaluated again.
	v, err = Eval(node, StandardEnvironment(nil))
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Int())
}
