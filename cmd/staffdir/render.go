package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"staffdir/internal/build"
	"staffdir/internal/config"
	"staffdir/internal/formatter"
	"staffdir/internal/staff"
)

type renderOptions struct {
	format      string
	out         string
	checkSchema bool
	sign        bool
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <data-file>",
		Short: "Render a roster file",
		Long:  "Renders a YAML roster as json (the node tree), markdown or html, to stdout or a file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format (json, markdown, html)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&opts.checkSchema, "check-schema", false, "Validate the node tree against the output schema")
	cmd.Flags().BoolVar(&opts.sign, "sign", false, "Append a metadata block to markdown and html output")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions, dataFile string) error {
	format, err := formatter.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	log := root.logger(cmd)

	nodes, err := staff.NewDirective(log).Run(dataFile)
	if err != nil {
		return err
	}

	cfg := &config.Config{Output: config.OutputConfig{Sign: opts.sign, ValidateSchema: opts.checkSchema}}

	data, err := build.New(cfg, log).Render(format, nodes, uuid.NewString())
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = cmd.OutOrStdout().Write(data)

		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.out), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(opts.out, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Info("Rendered roster", "input", dataFile, "output", opts.out, "format", format, "nodes", len(nodes))

	return nil
}
