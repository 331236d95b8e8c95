package lispster

import (
	"fmt"
	"math"
)

const variadic = -1

type primitiveDef struct {
	name    string
	minArgs int
	maxArgs int
	fn      PrimitiveFunc
}

var primitiveTable = []primitiveDef{
	{"+", 0, variadic, primAdd},
	{"-", 1, variadic, primSub},
	{"*", 0, variadic, primMul},
	{"/", 1, variadic, primDiv},

	{"=", 2, 2, compare("=", func(c int) bool { return c == 0 })},
	{"<", 2, 2, compare("<", func(c int) bool { return c < 0 })},
	{">", 2, 2, compare(">", func(c int) bool { return c > 0 })},
	{"<=", 2, 2, compare("<=", func(c int) bool { return c <= 0 })},
	{">=", 2, 2, compare(">=", func(c int) bool { return c >= 0 })},

	{"abs", 1, 1, primAbs},
	{"max", 1, variadic, extremum("max", func(a, b float64) bool { return a > b })},
	{"min", 1, variadic, extremum("min", func(a, b float64) bool { return a < b })},
	{"round", 1, 2, primRound},
	{"expt", 2, 2, primExpt},
	{"not", 1, 1, primNot},

	{"begin", 1, variadic, primBegin},

	{"list", 0, variadic, primList},
	{"car", 1, 1, primCar},
	{"cdr", 1, 1, primCdr},
	{"cons", 2, 2, primCons},
	{"append", 0, variadic, primAppend},
	{"length", 1, 1, primLength},

	{"null?", 1, 1, primIsNull},
	{"number?", 1, 1, isType(ValueTypeInt, ValueTypeFloat)},
	{"symbol?", 1, 1, isType(ValueTypeSymbol)},
	{"list?", 1, 1, isType(ValueTypeList)},
	{"procedure?", 1, 1, isType(ValueTypeProcedure, ValueTypePrimitive)},
	{"equal?", 2, 2, primEqual},

	{"apply", 2, 2, primApply},
	{"map", 2, 2, primMap},
}

func installPrimitives(env *Environment) {
	env.Define("pi", NewFloat(math.Pi))
	for _, def := range primitiveTable {
		env.DefinePrimitive(def.name, def.minArgs, def.maxArgs, def.fn)
	}
}

func expectNumbers(op string, args []*Value) (allInts bool, err error) {
	allInts = true
	for _, arg := range args {
		if !arg.IsNumber() {
			return false, &TypeError{Operation: op, Operand: arg, Expected: "number"}
		}
		if arg.Type != ValueTypeInt {
			allInts = false
		}
	}
	return allInts, nil
}

func expectList(op string, arg *Value) ([]*Value, error) {
	if arg.Type != ValueTypeList {
		return nil, &TypeError{Operation: op, Operand: arg, Expected: "list"}
	}
	return arg.List(), nil
}

func expectCallable(op string, arg *Value) (Callable, error) {
	fn, ok := arg.Callable()
	if !ok {
		return nil, &TypeError{Operation: op, Operand: arg, Expected: "procedure"}
	}
	return fn, nil
}

func primAdd(args []*Value) (*Value, error) {
	allInts, err := expectNumbers("+", args)
	if err != nil {
		return nil, err
	}
	if allInts {
		var sum int64
		for _, arg := range args {
			sum += arg.Int()
		}
		return NewInt(sum), nil
	}
	var sum float64
	for _, arg := range args {
		sum += arg.Number()
	}
	return NewFloat(sum), nil
}

func primSub(args []*Value) (*Value, error) {
	allInts, err := expectNumbers("-", args)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		if allInts {
			return negateInt("-", args[0])
		}
		return NewFloat(-args[0].Number()), nil
	}
	if allInts {
		diff := args[0].Int()
		for _, arg := range args[1:] {
			diff -= arg.Int()
		}
		return NewInt(diff), nil
	}
	diff := args[0].Number()
	for _, arg := range args[1:] {
		diff -= arg.Number()
	}
	return NewFloat(diff), nil
}

func primMul(args []*Value) (*Value, error) {
	allInts, err := expectNumbers("*", args)
	if err != nil {
		return nil, err
	}
	if allInts {
		product := int64(1)
		for _, arg := range args {
			product *= arg.Int()
		}
		return NewInt(product), nil
	}
	product := 1.0
	for _, arg := range args {
		product *= arg.Number()
	}
	return NewFloat(product), nil
}

// primDiv is true division: the result is always a float.
func primDiv(args []*Value) (*Value, error) {
	if _, err := expectNumbers("/", args); err != nil {
		return nil, err
	}
	quotient := args[0].Number()
	divisors := args[1:]
	if len(args) == 1 {
		quotient, divisors = 1, args
	}
	for _, arg := range divisors {
		if arg.Number() == 0 {
			return nil, fmt.Errorf("/: %w", ErrDivisionByZero)
		}
		quotient /= arg.Number()
	}
	return NewFloat(quotient), nil
}

// compare builds a numeric comparison from a predicate over the sign of
// a - b. Comparisons involving NaN are always false.
func compare(op string, holds func(c int) bool) PrimitiveFunc {
	return func(args []*Value) (*Value, error) {
		allInts, err := expectNumbers(op, args)
		if err != nil {
			return nil, err
		}
		if allInts {
			a, b := args[0].Int(), args[1].Int()
			return fromBool(holds(sign(a < b, a > b))), nil
		}
		a, b := args[0].Number(), args[1].Number()
		if math.IsNaN(a) || math.IsNaN(b) {
			return fromBool(false), nil
		}
		return fromBool(holds(sign(a < b, a > b))), nil
	}
}

func sign(less bool, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}
	return 0
}

func extremum(op string, better func(a, b float64) bool) PrimitiveFunc {
	return func(args []*Value) (*Value, error) {
		if _, err := expectNumbers(op, args); err != nil {
			return nil, err
		}
		best := args[0]
		for _, arg := range args[1:] {
			if better(arg.Number(), best.Number()) {
				best = arg
			}
		}
		return best, nil
	}
}

func primAbs(args []*Value) (*Value, error) {
	allInts, err := expectNumbers("abs", args)
	if err != nil {
		return nil, err
	}
	if allInts {
		if args[0].Int() < 0 {
			return negateInt("abs", args[0])
		}
		return args[0], nil
	}
	return NewFloat(math.Abs(args[0].Number())), nil
}

// negateInt fails for math.MinInt64, whose negation does not fit in an int.
func negateInt(op string, v *Value) (*Value, error) {
	if v.Int() == math.MinInt64 {
		return nil, &TypeError{Operation: op, Operand: v, Expected: "negatable int"}
	}
	return NewInt(-v.Int()), nil
}

// primRound rounds half to even. With one argument the result is an int,
// with a number of digits it is a float.
func primRound(args []*Value) (*Value, error) {
	if _, err := expectNumbers("round", args); err != nil {
		return nil, err
	}
	x := args[0].Number()
	if len(args) == 1 {
		if args[0].Type == ValueTypeInt {
			return args[0], nil
		}
		r := math.RoundToEven(x)
		// 2^63 is exact as a float64, math.MaxInt64 is not.
		if math.IsNaN(r) || r < math.MinInt64 || r >= -math.MinInt64 {
			return nil, &TypeError{Operation: "round", Operand: args[0], Expected: "finite number in int range"}
		}
		return NewInt(int64(r)), nil
	}
	if args[1].Type != ValueTypeInt {
		return nil, &TypeError{Operation: "round", Operand: args[1], Expected: "int"}
	}
	scale := math.Pow(10, float64(args[1].Int()))
	if scale == 0 || math.IsInf(scale, 0) {
		return nil, &TypeError{Operation: "round", Operand: args[1], Expected: "digit count in float range"}
	}
	scaled := x * scale
	if math.IsInf(scaled, 0) && !math.IsInf(x, 0) {
		// More digits than a float64 holds: nothing to round.
		return NewFloat(x), nil
	}
	return NewFloat(math.RoundToEven(scaled) / scale), nil
}

func primExpt(args []*Value) (*Value, error) {
	allInts, err := expectNumbers("expt", args)
	if err != nil {
		return nil, err
	}
	if allInts && args[1].Int() >= 0 {
		base, exp := args[0].Int(), args[1].Int()
		result := int64(1)
		for ; exp > 0; exp >>= 1 {
			if exp&1 == 1 {
				result *= base
			}
			base *= base
		}
		return NewInt(result), nil
	}
	return NewFloat(math.Pow(args[0].Number(), args[1].Number())), nil
}

func primNot(args []*Value) (*Value, error) {
	return fromBool(!args[0].Truthy()), nil
}

func primBegin(args []*Value) (*Value, error) {
	return args[len(args)-1], nil
}

func primList(args []*Value) (*Value, error) {
	items := make([]*Value, len(args))
	copy(items, args)
	return NewList(items...), nil
}

func primCar(args []*Value) (*Value, error) {
	list, err := expectList("car", args[0])
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, &TypeError{Operation: "car", Operand: args[0], Expected: "non-empty list"}
	}
	return list[0], nil
}

func primCdr(args []*Value) (*Value, error) {
	list, err := expectList("cdr", args[0])
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return NewList(), nil
	}
	rest := make([]*Value, len(list)-1)
	copy(rest, list[1:])
	return NewList(rest...), nil
}

func primCons(args []*Value) (*Value, error) {
	list, err := expectList("cons", args[1])
	if err != nil {
		return nil, err
	}
	items := make([]*Value, 0, len(list)+1)
	items = append(items, args[0])
	items = append(items, list...)
	return NewList(items...), nil
}

func primAppend(args []*Value) (*Value, error) {
	items := []*Value{}
	for _, arg := range args {
		list, err := expectList("append", arg)
		if err != nil {
			return nil, err
		}
		items = append(items, list...)
	}
	return NewList(items...), nil
}

func primLength(args []*Value) (*Value, error) {
	list, err := expectList("length", args[0])
	if err != nil {
		return nil, err
	}
	return NewInt(int64(len(list))), nil
}

func primIsNull(args []*Value) (*Value, error) {
	return fromBool(args[0].Type == ValueTypeList && len(args[0].List()) == 0), nil
}

func isType(types ...ValueType) PrimitiveFunc {
	return func(args []*Value) (*Value, error) {
		for _, vt := range types {
			if args[0].Type == vt {
				return fromBool(true), nil
			}
		}
		return fromBool(false), nil
	}
}

func primEqual(args []*Value) (*Value, error) {
	return fromBool(args[0].Equal(args[1])), nil
}

func primApply(args []*Value) (*Value, error) {
	fn, err := expectCallable("apply", args[0])
	if err != nil {
		return nil, err
	}
	list, err := expectList("apply", args[1])
	if err != nil {
		return nil, err
	}
	return fn.Apply(list)
}

func primMap(args []*Value) (*Value, error) {
	fn, err := expectCallable("map", args[0])
	if err != nil {
		return nil, err
	}
	list, err := expectList("map", args[1])
	if err != nil {
		return nil, err
	}
	out := make([]*Value, 0, len(list))
	for _, item := range list {
		v, err := fn.Apply([]*Value{item})
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return NewList(out...), nil
}
