package lispster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xiam/lispster/ast"
)

// ValueType identifies the kind of payload a Value carries.
type ValueType uint8

const (
	ValueTypeInt ValueType = iota + 1
	ValueTypeFloat
	ValueTypeSymbol
	ValueTypeList
	ValueTypeProcedure
	ValueTypePrimitive
)

var valueTypes = map[ValueType]string{
	ValueTypeInt:       "int",
	ValueTypeFloat:     "float",
	ValueTypeSymbol:    "symbol",
	ValueTypeList:      "list",
	ValueTypeProcedure: "procedure",
	ValueTypePrimitive: "primitive",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is the result of evaluating an expression. The payload is private and
// always matches Type; accessors panic when called on the wrong type.
type Value struct {
	v interface{}

	Type ValueType
}

// Callable is anything that can be applied to a list of arguments.
type Callable interface {
	Apply(args []*Value) (*Value, error)
}

// NewInt creates an integer value.
func NewInt(v int64) *Value {
	return &Value{v: v, Type: ValueTypeInt}
}

// NewFloat creates a floating point value.
func NewFloat(v float64) *Value {
	return &Value{v: v, Type: ValueTypeFloat}
}

// NewSymbol creates a symbol value.
func NewSymbol(name string) *Value {
	return &Value{v: name, Type: ValueTypeSymbol}
}

// NewList creates a list value. A nil slice is the empty list.
func NewList(values ...*Value) *Value {
	if values == nil {
		values = []*Value{}
	}
	return &Value{v: values, Type: ValueTypeList}
}

func newProcedureValue(p *Procedure) *Value {
	return &Value{v: p, Type: ValueTypeProcedure}
}

func newPrimitiveValue(p *Primitive) *Value {
	return &Value{v: p, Type: ValueTypePrimitive}
}

// fromBool maps host booleans to the language's 1 and 0.
func fromBool(b bool) *Value {
	if b {
		return NewInt(1)
	}
	return NewInt(0)
}

func (v *Value) Int() int64 {
	return v.v.(int64)
}

func (v *Value) Float64() float64 {
	return v.v.(float64)
}

func (v *Value) Symbol() string {
	return v.v.(string)
}

func (v *Value) List() []*Value {
	return v.v.([]*Value)
}

func (v *Value) Procedure() *Procedure {
	return v.v.(*Procedure)
}

func (v *Value) Primitive() *Primitive {
	return v.v.(*Primitive)
}

// IsNumber reports whether the value is an int or a float.
func (v *Value) IsNumber() bool {
	return v.Type == ValueTypeInt || v.Type == ValueTypeFloat
}

// Number returns the value as a float64, for numeric values only.
func (v *Value) Number() float64 {
	if v.Type == ValueTypeInt {
		return float64(v.Int())
	}
	return v.Float64()
}

// Callable returns the value as something that can be applied, if it is one.
func (v *Value) Callable() (Callable, bool) {
	switch v.Type {
	case ValueTypeProcedure:
		return v.Procedure(), true
	case ValueTypePrimitive:
		return v.Primitive(), true
	}
	return nil, false
}

// Truthy reports whether the value counts as true in a condition. Zero and
// the empty list are false, everything else is true.
func (v *Value) Truthy() bool {
	switch v.Type {
	case ValueTypeInt:
		return v.Int() != 0
	case ValueTypeFloat:
		return v.Float64() != 0
	case ValueTypeList:
		return len(v.List()) > 0
	}
	return true
}

// Equal reports structural equality. Numbers compare by value regardless of
// int/float representation, callables by identity.
func (v *Value) Equal(w *Value) bool {
	if v.IsNumber() && w.IsNumber() {
		if v.Type == ValueTypeInt && w.Type == ValueTypeInt {
			return v.Int() == w.Int()
		}
		return v.Number() == w.Number()
	}
	if v.Type != w.Type {
		return false
	}
	switch v.Type {
	case ValueTypeSymbol:
		return v.Symbol() == w.Symbol()
	case ValueTypeList:
		a, b := v.List(), w.List()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case ValueTypeProcedure:
		return v.Procedure() == w.Procedure()
	case ValueTypePrimitive:
		return v.Primitive() == w.Primitive()
	}
	return false
}

func (v *Value) String() string {
	switch v.Type {
	case ValueTypeInt:
		return strconv.FormatInt(v.Int(), 10)
	case ValueTypeFloat:
		return ast.FormatFloat(v.Float64())
	case ValueTypeSymbol:
		return v.Symbol()
	case ValueTypeList:
		values := make([]string, 0, len(v.List()))
		for _, item := range v.List() {
			values = append(values, item.String())
		}
		return "(" + strings.Join(values, " ") + ")"
	case ValueTypeProcedure:
		return v.Procedure().String()
	case ValueTypePrimitive:
		return v.Primitive().String()
	}
	return fmt.Sprintf("%v", v.v)
}

// Interface returns the payload as a plain Go value: int64, float64, string,
// []interface{} for lists, or the *Procedure / *Primitive itself.
func (v *Value) Interface() interface{} {
	if v.Type == ValueTypeList {
		out := make([]interface{}, 0, len(v.List()))
		for _, item := range v.List() {
			out = append(out, item.Interface())
		}
		return out
	}
	return v.v
}
