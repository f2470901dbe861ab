package main

import (
	"github.com/dhamidi/combo/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var flags grammarFlags

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start a language server that reports parse errors against a grammar",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.compile()
			if err != nil {
				return err
			}
			server := lsp.NewServer(p, version)
			return server.RunStdio()
		},
	}

	flags.register(cmd)

	return cmd
}
