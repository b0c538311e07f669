package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"textkit/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the textkit.toml settings file",
	}
	configCmd.AddCommand(newConfigInitCommand(), newConfigValidateCommand(ctx))
	return configCmd
}

// initTarget resolves where config init writes. An empty path means the
// per-user default location.
func initTarget(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		target, err := config.DefaultConfigPath()
		if err != nil {
			return "", fmt.Errorf("locate default config: %w", err)
		}
		return target, nil
	}
	target, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return target, nil
}

func newConfigInitCommand() *cobra.Command {
	var path string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter textkit.toml with every setting at its default",
		Long: `Write a commented textkit.toml holding the built-in length bounds,
sanitize policy, input normalization and logging settings. Without --path the
file goes to ~/.config/textkit/config.toml. An existing file is left alone
unless --overwrite is given.`,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := initTarget(path)
			if err != nil {
				return err
			}

			if !overwrite {
				_, statErr := os.Stat(target)
				switch {
				case statErr == nil:
					return fmt.Errorf("%s already exists; pass --overwrite to replace it", target)
				case !errors.Is(statErr, fs.ErrNotExist):
					return fmt.Errorf("inspect %s: %w", target, statErr)
				}
			}

			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create %s: %w", filepath.Dir(target), err)
			}
			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("write starter config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created textkit configuration at %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Write the file here instead of the per-user default")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace a file that already exists")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Check textkit.toml and print the settings it resolves to",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(strings.TrimSpace(ctx.flags.configPath))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out := cmd.OutOrStdout()
			if exists {
				fmt.Fprintf(out, "Checked %s\n", path)
			} else {
				fmt.Fprintf(out, "No file at %s; using built-in defaults\n", path)
			}
			fmt.Fprintf(out, "  length:        %d..%d characters\n", cfg.Length.Min, cfg.Length.Max)
			fmt.Fprintf(out, "  sanitize:      numbers=%t spaces=%t special=%q\n",
				cfg.Sanitize.AllowNumbers, cfg.Sanitize.AllowSpaces, cfg.Sanitize.AllowedSpecialChars)
			fmt.Fprintf(out, "  normalization: %s\n", cfg.Input.Normalization)
			fmt.Fprintf(out, "  logging:       %s at %s\n", cfg.Logging.Format, cfg.Logging.Level)
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
