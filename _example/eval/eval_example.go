package main

import (
	"fmt"
	"log"

	"github.com/xiam/lispster"
)

func main() {
	env := lispster.StandardEnvironment(nil)

	// Hosts expose their own data as primitives.
	env.DefinePrimitive("order-total", 0, 0, func(args []*lispster.Value) (*lispster.Value, error) {
		return lispster.NewFloat(149.90), nil
	})

	rules := []string{
		`(define free-shipping? (lambda (total) (>= total 100)))`,
		`(free-shipping? (order-total))`,
	}

	for _, rule := range rules {
		v, err := lispster.EvalString(rule, env)
		if err != nil {
			log.Fatal("lispster.EvalString:", err)
		}
		fmt.Printf("%s\n\t-> %v\n", rule, v)
	}
}
