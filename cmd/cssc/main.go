// cmd/cssc/main.go
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/benbjohnson/cssengine/internal/config"
)

// errFailed is returned when a command has already reported its errors.
var errFailed = errors.New("failed")

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// app holds the state shared by every command.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:           "cssc",
		Short:         "cssc checks, formats and applies stylesheets",
		Long:          `cssc is a CLI tool for tokenizing, checking, formatting and matching stylesheets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			switch cfg.Log.Color {
			case "always":
				color.NoColor = false
			case "never":
				color.NoColor = true
			}
			a.logger = newLogger(cfg, cmd.ErrOrStderr())
			slog.SetDefault(a.logger)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfg.Mode, "mode", "m", cfg.Mode, "Selector list mode (strict, forgiving)")
	flags.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "Log format (json, text)")
	flags.StringVar(&cfg.Log.Color, "color", cfg.Log.Color, "Colorize diagnostics (auto, always, never)")

	rootCmd.AddCommand(a.newCheckCmd())
	rootCmd.AddCommand(a.newTokensCmd())
	rootCmd.AddCommand(a.newFmtCmd())
	rootCmd.AddCommand(a.newSelectCmd())
	rootCmd.AddCommand(a.newApplyCmd())
	rootCmd.AddCommand(a.newServeCmd())
	return rootCmd
}

// newLogger returns a structured logger writing to w in the configured
// format and level.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel(),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
