package main

import (
	"fmt"

	"github.com/dhamidi/lam/lambda/parser"
	"github.com/spf13/cobra"
)

func newAssocCmd() *cobra.Command {
	var assocType string

	cmd := &cobra.Command{
		Use:   "assoc <ident>...",
		Short: "Group a flat application chain with explicit parentheses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := make([]parser.Token, len(args))
			for i, arg := range args {
				tokens[i] = parser.Ident(arg)
			}
			grouped := parser.Associate(tokens, parser.AssocMode(assocType))
			fmt.Println(parser.Join(grouped, " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&assocType, "type", "t", "left", "association direction (left, right)")

	return cmd
}
