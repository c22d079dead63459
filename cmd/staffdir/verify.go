package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"staffdir/pkg/metadata"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>...",
		Short: "Check that rendered files were not edited after signing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0

			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}

				if _, err := metadata.Verify(string(content)); err != nil {
					fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
					failed++

					continue
				}

				fmt.Fprintf(out, "OK   %s\n", path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed verification", failed, len(args))
			}

			return nil
		},
	}
}
