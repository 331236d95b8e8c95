package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/lispster"
	"github.com/xiam/lispster/ast"
)

func printValue(v *lispster.Value, level int) {
	indent := strings.Repeat("  ", level)
	switch v.Type {
	case lispster.ValueTypeList:
		fmt.Printf("%s<list>\n", indent)
		for _, item := range v.List() {
			printValue(item, level+1)
		}
		fmt.Printf("%s</list>\n", indent)
	case lispster.ValueTypeProcedure:
		proc := v.Procedure()
		fmt.Printf("%s<procedure params=%q>\n", indent, strings.Join(proc.Params(), " "))
		fmt.Printf("%s  <body>%s</body>\n", indent, ast.Encode(proc.Body()))
		fmt.Printf("%s</procedure>\n", indent)
	default:
		fmt.Printf("%s<%s>%v</%s>\n", indent, v.Type, v, v.Type)
	}
}

func main() {
	env := lispster.StandardEnvironment(nil)

	program := []string{
		`(define make-scaler (lambda (k) (lambda (x) (* k x))))`,
		`(list (make-scaler 3) ((make-scaler 3) 2.5) car (list 1 (list 2)))`,
	}

	for _, expr := range program {
		v, err := lispster.EvalString(expr, env)
		if err != nil {
			log.Fatal("lispster.EvalString:", err)
		}
		printValue(v, 0)
	}
}
