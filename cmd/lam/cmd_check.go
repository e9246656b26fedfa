package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/lam/format"
	"github.com/dhamidi/lam/lambda"
	"github.com/dhamidi/lam/lambda/parser"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var assoc string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Validate and tokenize each line of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := lambda.CheckFile(args[0], parser.ModeFromString(assoc))
			if err != nil {
				return fmt.Errorf("read lines: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			valid := 0
			for i := range results {
				res := &results[i]
				if res.Valid() {
					valid++
				}
				if res.Empty() {
					continue
				}
				if err := encoder.Encode(res); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			}
			if outputFormat == "text" && valid == len(results) {
				fmt.Println("All lines are valid")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&assoc, "assoc", "a", "none", "associativity disambiguation (none, left, right)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
