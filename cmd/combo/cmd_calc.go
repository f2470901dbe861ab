package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/combo/calc"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	var showTree bool

	cmd := &cobra.Command{
		Use:   "calc <expression>...",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := calc.Parse(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("parse expression: %w", err)
			}
			if showTree {
				fmt.Println(node)
			}
			value, err := node.Eval()
			if err != nil {
				return err
			}
			fmt.Println(strconv.FormatFloat(value, 'g', -1, 64))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTree, "tree", false, "print the parenthesised expression before its value")

	return cmd
}
