package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"staffdir/internal/config"
	"staffdir/internal/formatter"
	"staffdir/internal/roster"
	"staffdir/internal/staff"
)

func newPreviewCmd() *cobra.Command {
	var (
		width      int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "preview <data-file>",
		Short: "Show a roster in the terminal",
		Long:  "Shows a roster as terminal cards. Without --width the width comes from preview.width in the config file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("width") {
				cfg, err := config.LoadConfig(configPath)

				switch {
				case err == nil:
					width = cfg.Preview.Width
				case cmd.Flags().Changed("config") || !errors.Is(err, os.ErrNotExist):
					return err
				}
			}

			if width < formatter.MinPreviewWidth {
				return fmt.Errorf("width must be at least %d", formatter.MinPreviewWidth)
			}

			people, err := roster.Load(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.Preview(staff.Build(people), width))

			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "Preview width in columns; overrides preview.width")
	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")

	return cmd
}
