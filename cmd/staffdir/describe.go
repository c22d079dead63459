package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"staffdir/internal/schema"
	"staffdir/internal/staff"
)

func newDescribeCmd() *cobra.Command {
	var showSchema bool

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the directive registration",
		Long:  "Prints the plugin and directive metadata a documentation host registers, or the node output schema with --schema.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showSchema {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), schema.Source())

				return err
			}

			data, err := json.MarshalIndent(staff.NewPlugin(nil), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal plugin: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return err
		},
	}

	cmd.Flags().BoolVar(&showSchema, "schema", false, "Print the node output JSON schema instead")

	return cmd
}
