package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/xiam/lispster"
	"github.com/xiam/lispster/ast"
)

type evalOptions struct {
	print    bool
	dumpAST  bool
	trace    bool
	maxDepth int
}

func newEvalCmd() *cobra.Command {
	opts := &evalOptions{}

	evalCmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate lisp expressions",
		Long: `Evaluate each argument as a lisp expression. All the expressions share
one environment, so definitions made by an argument are visible to the
following ones.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args)
		},
	}

	evalCmd.Flags().BoolVarP(&opts.print, "print", "p", false,
		"Print expression values to stdout")
	evalCmd.Flags().BoolVar(&opts.dumpAST, "ast", false,
		"Print the parsed expression tree instead of evaluating")
	evalCmd.Flags().BoolVar(&opts.trace, "trace", false,
		"Log every evaluation step to stderr")
	evalCmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0,
		"Maximum evaluation depth, 0 means unlimited")

	return evalCmd
}

func runEval(stdout io.Writer, stderr io.Writer, opts *evalOptions, exprs []string) error {
	cfg := lispster.DefaultConfig()
	cfg.MaxDepth = opts.maxDepth
	if opts.trace {
		cfg.Logger = log.New(stderr, "lispster: ", 0)
	}

	env := lispster.StandardEnvironment(cfg)
	for _, expr := range exprs {
		node, err := lispster.Parse(expr)
		if err != nil {
			return fmt.Errorf("%q: %w", expr, err)
		}
		if opts.dumpAST {
			if err := ast.Fprint(stdout, node); err != nil {
				return err
			}
			continue
		}
		v, err := lispster.Eval(node, env)
		if err != nil {
			return fmt.Errorf("%q: %w", expr, err)
		}
		if opts.print {
			fmt.Fprintln(stdout, v)
		}
	}
	return nil
}
