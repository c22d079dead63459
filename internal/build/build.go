// Package build renders every page of a staffdir configuration to disk.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"staffdir/internal/config"
	"staffdir/internal/formatter"
	"staffdir/internal/logger"
	"staffdir/internal/mdast"
	"staffdir/internal/schema"
	"staffdir/internal/staff"
	"staffdir/pkg/metadata"
)

// Generator is recorded in the metadata block of signed pages.
const Generator = "staffdir"

// Builder renders configured pages.
type Builder struct {
	cfg       *config.Config
	log       *logger.Logger
	directive *staff.Directive
	now       func() time.Time
}

// PageResult describes one rendered page.
type PageResult struct {
	Name    string
	Output  string
	Format  formatter.Format
	Nodes   int
	Changed bool
}

// Result is the outcome of a build run.
type Result struct {
	RunID string
	Pages []PageResult
}

// Changed returns the number of pages whose output file was rewritten.
func (r *Result) Changed() int {
	n := 0

	for _, p := range r.Pages {
		if p.Changed {
			n++
		}
	}

	return n
}

// New creates a builder. A nil logger discards output.
func New(cfg *config.Config, log *logger.Logger) *Builder {
	if log == nil {
		log = logger.Discard()
	}

	return &Builder{
		cfg:       cfg,
		log:       log,
		directive: staff.NewDirective(log),
		now:       time.Now,
	}
}

// Run renders all pages concurrently. Pages are reported in configuration order.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	if len(b.cfg.Pages) == 0 {
		return nil, config.ErrNoPages
	}

	runID := uuid.NewString()
	log := b.log.With("run_id", runID)
	start := b.now()

	log.Info("Starting build", "pages", len(b.cfg.Pages))

	pages := make([]PageResult, len(b.cfg.Pages))

	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)

	for i, page := range b.cfg.Pages {
		g.Go(func() error {
			res, err := b.renderPage(gCtx, page, runID)
			if err != nil {
				return fmt.Errorf("page %q: %w", page.Name, err)
			}

			mu.Lock()
			pages[i] = res
			mu.Unlock()

			log.Debug("Rendered page", "page", res.Name, "output", res.Output, "nodes", res.Nodes, "changed", res.Changed)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("Build failed", "error", err)

		return nil, err
	}

	result := &Result{RunID: runID, Pages: pages}
	log.Info("Build complete", "pages", len(pages), "changed", result.Changed(), "duration", time.Since(start))

	return result, nil
}

func (b *Builder) renderPage(ctx context.Context, page config.PageConfig, runID string) (PageResult, error) {
	if err := ctx.Err(); err != nil {
		return PageResult{}, err
	}

	format, err := formatter.ParseFormat(page.Format)
	if err != nil {
		return PageResult{}, err
	}

	nodes, err := b.directive.Run(page.Data)
	if err != nil {
		return PageResult{}, err
	}

	content, err := b.Render(format, nodes, runID)
	if err != nil {
		return PageResult{}, err
	}

	changed, err := writeIfChanged(page.Output, content)
	if err != nil {
		return PageResult{}, err
	}

	return PageResult{
		Name:    page.Name,
		Output:  page.Output,
		Format:  format,
		Nodes:   len(nodes),
		Changed: changed,
	}, nil
}

// Render serializes nodes, validating and signing them as configured.
func (b *Builder) Render(format formatter.Format, nodes []mdast.Node, runID string) ([]byte, error) {
	if b.cfg.Output.ValidateSchema {
		if err := schema.ValidateNodes(nodes); err != nil {
			return nil, err
		}
	}

	data, err := formatter.Render(format, nodes)
	if err != nil {
		return nil, err
	}

	if !b.cfg.Output.Sign || !format.Signable() {
		return data, nil
	}

	signed := metadata.Sign(string(data), metadata.Stamp{
		Generator: Generator,
		RunID:     runID,
		Time:      b.now(),
	})

	return []byte(signed), nil
}

// writeIfChanged writes content unless the existing file differs only in its metadata block.
func writeIfChanged(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)

	switch {
	case err == nil:
		if sameOutput(string(existing), string(content)) {
			return false, nil
		}
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return true, nil
}

// sameOutput compares documents ignoring metadata only when both carry a
// block, so adding or removing a signature always rewrites the file.
func sameOutput(existing, content string) bool {
	oldMeta, _ := metadata.Extract(existing)
	newMeta, _ := metadata.Extract(content)

	if (oldMeta == nil) != (newMeta == nil) {
		return existing == content
	}

	return metadata.SameContent(existing, content)
}
