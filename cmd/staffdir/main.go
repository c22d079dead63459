// Package main provides the staffdir command, which renders staff rosters
// into document trees, markdown, HTML and terminal previews.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"staffdir/internal/config"
	"staffdir/internal/logger"
)

type rootOptions struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "staffdir",
		Short:         "Render staff rosters",
		Long:          "staffdir turns a YAML list of course staff into role-grouped person cards as a document tree, markdown, HTML or a terminal preview.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", envOr(config.EnvLogLevel, "info"), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", envOr(config.EnvLogFormat, "text"), "Log format (text, json)")

	cmd.AddCommand(
		newRenderCmd(opts),
		newBuildCmd(opts),
		newPreviewCmd(),
		newVerifyCmd(),
		newDescribeCmd(),
		newInitCmd(),
	)

	return cmd
}

// logger builds the command logger on the command's stderr.
func (o *rootOptions) logger(cmd *cobra.Command) *logger.Logger {
	return logger.New(o.logLevel, o.logFormat, cmd.ErrOrStderr())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
