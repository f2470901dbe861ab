package main

import (
	"fmt"

	"github.com/dhamidi/combo/grammar"
	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"
)

func newEbnfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ebnf",
		Short:         "EBNF grammar tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newEbnfCheckCmd())

	return cmd
}

func newEbnfCheckCmd() *cobra.Command {
	var startProduction string
	var compile bool

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Parse and verify an EBNF grammar file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load(args[0])
			if err != nil {
				printErrors(err)
				return err
			}

			if startProduction == "" {
				return nil
			}

			if compile {
				_, err = grammar.Compile(g, startProduction)
			} else {
				err = ebnf.Verify(g, startProduction)
			}
			if err != nil {
				printErrors(err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start production for verification (if empty, only checks syntax)")
	cmd.Flags().BoolVar(&compile, "compile", false, "also build a parser from the grammar")

	return cmd
}

func printErrors(err error) {
	for _, e := range grammar.Errors(err) {
		fmt.Println(e)
	}
}
