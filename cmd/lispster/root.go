package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lispster",
		Short: "A small embeddable lisp interpreter",
		Long: `lispster evaluates lisp expressions. It is a demonstration host for the
lispster package; programs embedding the interpreter call it directly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newEvalCmd())
	return rootCmd
}
