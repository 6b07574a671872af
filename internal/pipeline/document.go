package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lrlab/lrextract/internal/article"
	"github.com/lrlab/lrextract/internal/assemble"
	"github.com/lrlab/lrextract/internal/pageimage"
	"github.com/lrlab/lrextract/internal/reflow"
	"github.com/lrlab/lrextract/internal/textutil"
	"github.com/lrlab/lrextract/internal/zone"
)

// Result is the per-document outcome surfaced to the caller. No per-document
// condition is fatal to the batch; callers decide whether to retry, skip or
// flag for manual review.
type Result struct {
	Stem   string
	OK     bool
	Reason string
}

// pageSource is the closable per-document text surface the zone splitter
// runs against. The production implementation is zone.PDFSource.
type pageSource interface {
	zone.PageSource
	Close() error
}

// processDocument runs the full structural-recovery pipeline for one PDF.
func (r *Runner) processDocument(ctx context.Context, pdfPath string) Result {
	stem := article.ParseStem(pdfPath)
	logger := log.With().Str("doc", stem).Logger()

	art := article.Article{Stem: stem, PDFPath: pdfPath}
	if name, ok := article.Journals[r.cfg.Journal]; ok {
		art.Journal = name
		art.JournalID = article.JournalIDs[r.cfg.Journal]
	}

	// Zone extraction is the only stage that can hang on a malformed PDF;
	// it runs under the per-document deadline.
	splits, pages, err := r.extractZones(ctx, pdfPath, stem)
	if err != nil {
		logger.Error().Err(err).Msg("zone extraction failed; outputs unset")
		return Result{Stem: stem, Reason: fmt.Sprintf("zone extraction: %v", err)}
	}
	art.NumPages = pages

	streams := assemble.Concat(splits)
	art.FnsText = streams.Fns
	art.FnsTextLength = article.IntPtr(textutil.WordCount(streams.Fns))

	mainText := assemble.StripJournalName(streams.Main, art.Journal)
	art.SetMainText(mainText, textutil.WordCount(mainText))

	if err := writeText(r.cfg.fnsPath(stem), art.FnsText); err != nil {
		logger.Error().Err(err).Msg("persisting footnote stream failed")
		return Result{Stem: stem, Reason: err.Error()}
	}

	reflowed := reflow.Run(art.MainText, reflow.DefaultOptions())
	art.SetMainText(reflowed, textutil.WordCount(reflowed))
	if err := writeText(r.cfg.mainPath(stem), art.MainText); err != nil {
		logger.Error().Err(err).Msg("persisting main stream failed")
		return Result{Stem: stem, Reason: err.Error()}
	}

	r.reconcileFootnotes(&art, logger)
	art.Ratios()

	if err := r.excerptDocument(&art, logger); err != nil {
		logger.Error().Err(err).Msg("persisting excerpts failed")
		return Result{Stem: stem, Reason: err.Error()}
	}

	if err := writeJSON(r.cfg.recordPath(stem), &art); err != nil {
		logger.Error().Err(err).Msg("persisting record failed")
		return Result{Stem: stem, Reason: err.Error()}
	}

	logger.Info().Int("pages", pages).Msg("document processed")
	return Result{Stem: stem, OK: true}
}

// extractZones renders each non-title page's candidates and splits its text,
// under the configured hard deadline. The work runs in its own goroutine so
// a pathological PDF cannot stall the worker past the deadline; a timed-out
// unit's partial output is discarded.
func (r *Runner) extractZones(ctx context.Context, pdfPath, stem string) ([]zone.Split, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.DocTimeout)
	defer cancel()

	type outcome struct {
		splits []zone.Split
		pages  int
		err    error
	}
	ch := make(chan outcome, 1)
	go func() {
		splits, pages, err := r.splitAllPages(ctx, pdfPath, stem)
		ch <- outcome{splits, pages, err}
	}()

	select {
	case <-ctx.Done():
		return nil, 0, fmt.Errorf("extraction deadline exceeded: %w", ctx.Err())
	case o := <-ch:
		return o.splits, o.pages, o.err
	}
}

func (r *Runner) splitAllPages(ctx context.Context, pdfPath, stem string) ([]zone.Split, int, error) {
	src, err := r.open(pdfPath)
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	if err := r.cfg.checkRasters(stem); err != nil {
		return nil, 0, err
	}

	n := src.PageCount()
	splits := make([]zone.Split, 0, n)
	rasters := 0
	// Page 0 is the title page and never contributes to the streams.
	for page := 1; page < n; page++ {
		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		default:
		}

		cands, found := r.detectPage(src, stem, page)
		if found {
			rasters++
		}
		sp, err := zone.SplitPage(src, page, cands, r.cfg.Zoom)
		if err != nil {
			return nil, 0, err
		}
		if !sp.SeparatorFound {
			log.Warn().Str("doc", stem).Int("page", page).Msg("no separator rule on page; whole page kept as main text")
		}
		splits = append(splits, sp)
	}
	// A single missing raster downgrades its page; a document with none at
	// all means the render step never ran and the split is meaningless.
	if n > 1 && rasters == 0 {
		return nil, 0, fmt.Errorf("no page rasters for %s under %s", stem, r.cfg.RasterDir)
	}
	return splits, n, nil
}

// detectPage loads the page raster and runs line detection. An undecodable
// raster yields no candidates, which downgrades the page to whole-page-main
// handling; found reports whether a raster file existed at all.
func (r *Runner) detectPage(src pageSource, stem string, page int) ([]pageimage.Candidate, bool) {
	path, ok := r.cfg.findRaster(stem, page)
	if !ok {
		log.Warn().Str("doc", stem).Int("page", page).Msg("no raster for page; skipping line detection")
		return nil, false
	}
	img, err := pageimage.DecodeFile(path)
	if err != nil {
		log.Warn().Str("doc", stem).Int("page", page).Err(err).Msg("raster undecodable; skipping line detection")
		return nil, true
	}
	if w, _, err := src.PageSize(page); err == nil {
		img = pageimage.NormalizeWidth(img, int(w*r.cfg.Zoom+0.5))
	}
	params := pageimage.Params{
		GrayThreshold: uint8(r.cfg.GrayThreshold),
		MaxThickness:  r.cfg.MaxThickness,
		MinLength:     r.cfg.MinLineLength,
		BlindSpot:     r.cfg.BlindSpot,
	}
	// The blind spot applies only to the first processed page, which is
	// page 1 given the title-page skip.
	return pageimage.Detect(img, page == 1, params), true
}
