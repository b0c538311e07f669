package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"textkit/internal/batch"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var failOnError bool

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Process JSON-lines requests from a file or stdin",
		Long: `Process JSON-lines requests and write one JSON result per line.

Each request looks like:
  {"id":"1","op":"sanitize","text":"Hello@#$!","allowed_special_chars":"@#$"}

Supported ops: validate, count, numbers, sanitize (or their long names
validate_string_length, count_unique_characters, extract_numbers,
sanitize_text). Omitted options use configured defaults.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc, err := ctx.processor(cmd)
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) > 0 && strings.TrimSpace(args[0]) != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open batch input: %w", err)
				}
				defer file.Close()
				in = file
			}

			driver := batch.NewDriver(proc, batch.DefaultsFromConfig(ctx.configValue()), logger)
			summary, err := driver.Run(cmd.Context(), in, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if failOnError && summary.Failed > 0 {
				return fmt.Errorf("batch: %d of %d requests failed", summary.Failed, summary.Lines)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "Exit non-zero when any request fails")
	return cmd
}
