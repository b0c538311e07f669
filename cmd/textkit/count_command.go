package main

import (
	"fmt"
	"sort"
	"strconv"
	"unicode"

	"github.com/spf13/cobra"

	"textkit/internal/textproc"
)

type charCount struct {
	r     rune
	count int
}

func newCountCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "count [text]",
		Short: "Count occurrences of each distinct character",
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

			counts := proc.CountUnique(text)
			if ctx.jsonOutput() {
				return writeJSON(cmd, textproc.StringKeys(counts))
			}

			sorted := sortCounts(counts)
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				for _, c := range sorted {
					fmt.Fprintf(out, "%s\t%d\n", displayRune(c.r), c.count)
				}
				return nil
			}

			rows := make([][]string, 0, len(sorted))
			for _, c := range sorted {
				rows = append(rows, []string{
					displayRune(c.r),
					fmt.Sprintf("U+%04X", c.r),
					strconv.Itoa(c.count),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"character", "codepoint", "count"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
}

// sortCounts orders by descending count, then ascending codepoint.
func sortCounts(counts map[rune]int) []charCount {
	sorted := make([]charCount, 0, len(counts))
	for r, n := range counts {
		sorted = append(sorted, charCount{r: r, count: n})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].r < sorted[j].r
	})
	return sorted
}

// displayRune quotes characters that would be invisible in a terminal.
func displayRune(r rune) string {
	if unicode.IsGraphic(r) && !unicode.IsSpace(r) {
		return string(r)
	}
	return strconv.QuoteRune(r)
}
