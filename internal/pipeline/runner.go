package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/lrlab/lrextract/internal/zone"
)

// Runner processes a collection of article PDFs. Documents are independent
// units; the pool bounds concurrency and nothing mutable is shared between
// units beyond the log sink.
type Runner struct {
	cfg Config
	// open yields the per-document text surface. Production uses
	// zone.OpenPDF; tests substitute in-memory sources.
	open func(path string) (pageSource, error)
}

// New validates the configuration and returns a Runner.
func New(cfg Config) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	open := func(path string) (pageSource, error) {
		return zone.OpenPDF(path)
	}
	return &Runner{cfg: cfg, open: open}, nil
}

// Run processes every PDF in the input directory and returns one Result per
// document. Per-document failures never abort the batch; the returned error
// covers only batch-level problems such as an unreadable input directory.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	pdfs, err := listPDFs(r.cfg.InputDir)
	if err != nil {
		return nil, err
	}
	if len(pdfs) == 0 {
		log.Warn().Str("dir", r.cfg.InputDir).Msg("no PDFs found")
		return nil, nil
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir output: %w", err)
	}

	results := make([]Result, len(pdfs))
	var g errgroup.Group
	g.SetLimit(r.cfg.Workers)
	for i, path := range pdfs {
		i, path := i, path
		g.Go(func() error {
			results[i] = r.processDocument(ctx, path)
			return nil
		})
	}
	// Workers only record per-document outcomes; Wait cannot fail.
	_ = g.Wait()

	ok := 0
	for _, res := range results {
		if res.OK {
			ok++
		}
	}
	log.Info().Int("documents", len(results)).Int("ok", ok).Int("failed", len(results)-ok).Msg("batch complete")
	return results, nil
}

// listPDFs returns the batch's source files in stable name order.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}
