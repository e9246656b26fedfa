package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/lam/format"
	"github.com/dhamidi/lam/lambda"
	"github.com/dhamidi/lam/lambda/parser"
	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	var assoc string

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the parse tree for each line of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := lambda.CheckFile(args[0], parser.ModeFromString(assoc))
			if err != nil {
				return fmt.Errorf("read lines: %w", err)
			}

			encoder := format.NewTreeEncoder(os.Stdout)
			for i := range results {
				res := &results[i]
				if res.Empty() {
					continue
				}
				fmt.Println()
				if err := encoder.Encode(res); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&assoc, "assoc", "a", "none", "associativity disambiguation (none, left, right)")

	return cmd
}
