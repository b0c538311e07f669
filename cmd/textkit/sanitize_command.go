package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"textkit/internal/textproc"
)

func newSanitizeCommand(ctx *commandContext) *cobra.Command {
	var noNumbers, noSpaces bool
	var allow string

	cmd := &cobra.Command{
		Use:   "sanitize [text]",
		Short: "Keep letters, and optionally digits, whitespace, and listed special characters",
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
			opts := textproc.SanitizeOptions{
				AllowNumbers:   cfg.Sanitize.AllowNumbers,
				AllowSpaces:    cfg.Sanitize.AllowSpaces,
				AllowedSpecial: cfg.Sanitize.AllowedSpecialChars,
			}
			if noNumbers {
				opts.AllowNumbers = false
			}
			if noSpaces {
				opts.AllowSpaces = false
			}
			if cmd.Flags().Changed("allow") {
				opts.AllowedSpecial = allow
			}

			result := proc.Sanitize(text, opts)
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]string{"result": result})
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noNumbers, "no-numbers", false, "Drop decimal digits")
	cmd.Flags().BoolVar(&noSpaces, "no-spaces", false, "Drop whitespace")
	cmd.Flags().StringVar(&allow, "allow", "", "Special characters to keep, e.g. \"@#$\" (default from config)")
	return cmd
}
