package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"textkit/internal/config"
	"textkit/internal/logging"
	"textkit/internal/textproc"
	"textkit/internal/textutil"
)

type globalFlags struct {
	configPath string
	jsonOutput bool
	logLevel   string
	normalize  string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error

	procOnce sync.Once
	proc     *textproc.Processor
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = err
			return
		}
		if level := strings.TrimSpace(c.flags.logLevel); level != "" {
			cfg.Logging.Level = strings.ToLower(level)
			if err := cfg.Validate(); err != nil {
				c.configErr = fmt.Errorf("--log-level: %w", err)
				return
			}
		}
		if form := strings.TrimSpace(c.flags.normalize); form != "" {
			if _, err := textutil.ParseNormalization(form); err != nil {
				c.configErr = fmt.Errorf("--normalize: %w", err)
				return
			}
			cfg.Input.Normalization = strings.ToLower(form)
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	if cfg == nil {
		def := config.Default()
		return &def
	}
	return cfg
}

func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return logger, nil
}

// processor returns the processor shared by every command in this invocation.
func (c *commandContext) processor(cmd *cobra.Command) (*textproc.Processor, error) {
	logger, err := c.logger(cmd)
	if err != nil {
		return nil, err
	}
	c.procOnce.Do(func() {
		c.proc = textproc.New(textproc.WithLogger(logger))
	})
	return c.proc, nil
}

// inputText resolves the text for a single-operation command: the first
// positional argument, or stdin when no argument or "-" is given. One
// trailing newline from stdin is dropped. The configured normalization is
// applied in both cases.
func (c *commandContext) inputText(cmd *cobra.Command, args []string) (string, error) {
	var text string
	if len(args) > 0 && args[0] != "-" {
		text = args[0]
	} else {
		in := cmd.InOrStdin()
		if isTerminal(in) {
			return "", errors.New("no text provided: pass it as an argument or pipe it on stdin")
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimSuffix(string(data), "\n")
		text = strings.TrimSuffix(text, "\r")
	}
	return c.configValue().Normalization().Apply(text), nil
}

func (c *commandContext) jsonOutput() bool {
	return c.flags.jsonOutput
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
