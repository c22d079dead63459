package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"staffdir/internal/build"
	"staffdir/internal/config"
	"staffdir/internal/logger"
)

func newBuildCmd(root *rootOptions) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every page in a config file",
		Long:  "Loads a staffdir config and renders each page to its output file, rewriting only files whose content changed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			level, format := cfg.Logging.Level, cfg.Logging.Format
			if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
				level = root.logLevel
			}

			if f := cmd.Flags().Lookup("log-format"); f != nil && f.Changed {
				format = root.logFormat
			}

			log := logger.New(level, format, cmd.ErrOrStderr())

			res, err := build.New(cfg, log).Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range res.Pages {
				state := "unchanged"
				if p.Changed {
					state = "written"
				}

				fmt.Fprintf(out, "%-9s %s (%s, %d nodes)\n", state, p.Output, p.Format, p.Nodes)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")

	return cmd
}
