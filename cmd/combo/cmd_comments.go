package main

import (
	"fmt"

	"github.com/dhamidi/combo/comment"
	"github.com/spf13/cobra"
)

func newCommentsCmd() *cobra.Command {
	var single, openMarker, closeMarker string

	cmd := &cobra.Command{
		Use:   "comments <file>",
		Short: "List the comments in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			text, err := readInput(filename)
			if err != nil {
				return err
			}

			var opts []comment.Option
			if single != "" {
				opts = append(opts, comment.WithSingleLine(single))
			}
			if openMarker != "" || closeMarker != "" {
				opts = append(opts, comment.WithMultiLine(openMarker, closeMarker))
			}

			comments, err := comment.New(opts...).Extract(filename, text)
			if err != nil {
				return err
			}
			for _, c := range comments {
				fmt.Printf("%s: %q\n", c.Start, c.Value)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&single, "single", "//", "single-line comment marker")
	cmd.Flags().StringVar(&openMarker, "open", "/*", "block comment opening marker")
	cmd.Flags().StringVar(&closeMarker, "close", "*/", "block comment closing marker")

	return cmd
}
