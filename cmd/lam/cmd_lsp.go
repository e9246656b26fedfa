package main

import (
	"github.com/dhamidi/lam/lambda/parser"
	"github.com/dhamidi/lam/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	var assoc string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Run the language server on stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return lsp.NewServer(version, parser.ModeFromString(assoc)).RunStdio()
		},
	}

	cmd.Flags().StringVarP(&assoc, "assoc", "a", "none", "associativity disambiguation (none, left, right)")

	return cmd
}
