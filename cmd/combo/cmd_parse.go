package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/combo/comment"
	"github.com/dhamidi/combo/grammar"
	"github.com/dhamidi/combo/parse"
	"github.com/spf13/cobra"
)

type grammarFlags struct {
	path      string
	start     string
	exclusive bool
	comments  bool
}

func (f *grammarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.path, "grammar", "g", "", "EBNF grammar file")
	cmd.Flags().StringVarP(&f.start, "start", "s", "", "start production")
	cmd.Flags().BoolVar(&f.exclusive, "exclusive", false, "commit to a branch once it has matched a token")
	cmd.Flags().BoolVar(&f.comments, "comments", false, "skip // and /* */ comments between tokens")
	cmd.MarkFlagRequired("grammar")
	cmd.MarkFlagRequired("start")
}

func (f *grammarFlags) compile() (parse.Parser[*grammar.Node], error) {
	g, err := grammar.Load(f.path)
	if err != nil {
		return nil, err
	}
	var opts []grammar.Option
	if f.exclusive {
		opts = append(opts, grammar.WithExclusive())
	}
	if f.comments {
		opts = append(opts, grammar.WithComments(comment.Default()))
	}
	return grammar.Compile(g, f.start, opts...)
}

func newParseCmd() *cobra.Command {
	var flags grammarFlags
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file with an EBNF grammar and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			p, err := flags.compile()
			if err != nil {
				return err
			}

			text, err := readInput(filename)
			if err != nil {
				return err
			}

			node, err := parse.Run(parse.End(p), parse.NewFileCursor(filename, text))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			switch outputFormat {
			case "json":
				if err := grammar.NewJSONEncoder(os.Stdout).Encode(node); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			case "tree":
				fmt.Print(node.String())
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")

	return cmd
}

// readInput reads filename, or standard input when it is "-".
func readInput(filename string) (string, error) {
	if filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
