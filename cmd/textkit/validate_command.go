package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"textkit/internal/textutil"
)

type validateOutput struct {
	Valid  bool `json:"valid"`
	Length int  `json:"length"`
	Min    int  `json:"min"`
	Max    int  `json:"max"`
}

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var minLength, maxLength int

	cmd := &cobra.Command{
		Use:   "validate [text]",
		Short: "Check that text length (in characters) is within bounds",
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

			cfg := ctx.configValue()
			if !cmd.Flags().Changed("min") {
				minLength = cfg.Length.Min
			}
			if !cmd.Flags().Changed("max") {
				maxLength = cfg.Length.Max
			}

			out := validateOutput{
				Valid:  proc.ValidateLength(text, minLength, maxLength),
				Length: utf8.RuneCountInString(text),
				Min:    minLength,
				Max:    maxLength,
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), textutil.Ternary(out.Valid, "valid", "invalid"))
			return nil
		},
	}

	cmd.Flags().IntVar(&minLength, "min", 0, "Minimum length, inclusive (default from config)")
	cmd.Flags().IntVar(&maxLength, "max", 0, "Maximum length, inclusive (default from config)")
	return cmd
}
