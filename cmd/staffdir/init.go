package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"staffdir/internal/config"
)

var errConfigExists = errors.New("config file already exists (use --force to overwrite)")

func newInitCmd() *cobra.Command {
	var (
		out   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(out); err == nil && !force {
				return fmt.Errorf("%w: %s", errConfigExists, out)
			}

			if err := config.DefaultConfig().SaveConfig(out); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)

			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", config.DefaultPath, "Path of the config file to write")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}
