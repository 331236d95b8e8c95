package main

import (
	"log"
	"os"

	"github.com/xiam/lispster/ast"
	"github.com/xiam/lispster/parser"
)

func main() {
	input := `(begin (define r 10) (* pi (* r r)))`

	root, err := parser.Parse(input)
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	if err := ast.Fprint(os.Stdout, root); err != nil {
		log.Fatal("ast.Fprint:", err)
	}
}
