package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"textkit/internal/batch"
)

func newNumbersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "numbers [text]",
		Short: "Extract numbers, including negatives and decimals, in order of appearance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := ctx.processor(cmd)
			if err != nil {
				return err
			}
			text, err := ctx.inputText(cmd, args)
			if err != nil {
				return err
			}

			numbers := proc.ExtractNumbers(text)
			if ctx.jsonOutput() {
				return writeJSON(cmd, batch.JSONNumbers(numbers))
			}
			out := cmd.OutOrStdout()
			for _, n := range numbers {
				fmt.Fprintln(out, strconv.FormatFloat(n, 'f', -1, 64))
			}
			return nil
		},
	}
}
