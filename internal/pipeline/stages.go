package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/lrlab/lrextract/internal/article"
	"github.com/lrlab/lrextract/internal/excerpt"
	"github.com/lrlab/lrextract/internal/footnote"
	"github.com/lrlab/lrextract/internal/textutil"
)

// reconcileFootnotes fills the footnote range and acknowledgment fields.
// Indeterminate results leave the fields unset and log the reason.
func (r *Runner) reconcileFootnotes(art *article.Article, logger zerolog.Logger) {
	res := footnote.Reconcile(art.FnsText)
	if res.FirstNum == nil {
		logger.Warn().Str("reason", res.Reason).Msg("footnote range indeterminate")
		return
	}
	art.FirstFnNum = res.FirstNum
	art.LastFnNum = res.LastNum
	art.TotalFns = res.TotalFns
	art.FirstFnText = res.FirstText
	art.LastFnText = res.LastText

	if res.FirstText == nil {
		return
	}
	ack, ok := footnote.Acknowledgment(art.FnsText, *res.FirstText)
	if !ok {
		logger.Warn().Msg("first footnote text not locatable; acknowledgment indeterminate")
		return
	}
	art.Acknowledgment = article.StringPtr(ack)

	if ack == article.NoAcknowledgment {
		// The sentinel is bookkeeping, not acknowledgment text; both
		// length fields record zero.
		art.AcknowledgmentLength = article.IntPtr(0)
		art.ReorgAcknowledgment = article.StringPtr(article.NoAcknowledgment)
		art.ReorgAcknowledgmentLength = article.IntPtr(0)
		return
	}
	art.AcknowledgmentLength = article.IntPtr(textutil.WordCount(ack))
	reorg := footnote.ReorganizeAcknowledgment(ack)
	art.ReorgAcknowledgment = article.StringPtr(reorg)
	art.ReorgAcknowledgmentLength = article.IntPtr(textutil.WordCount(reorg))
}

// excerptDocument cuts and merges the excerpt windows and persists their
// artifacts. Documents under the excerpting floor produce no artifacts.
func (r *Runner) excerptDocument(art *article.Article, logger zerolog.Logger) error {
	opt := excerpt.Options{
		Window:             r.cfg.ExcerptWindow,
		MinWords:           100,
		OverlapTrimWords:   r.cfg.OverlapTrimWords,
		OverlapTrimFrac:    r.cfg.OverlapTrimFrac,
		OverlapCombinedMin: 2000,
	}
	seg, ok := excerpt.Segment(art.MainText, opt)
	if !ok {
		logger.Warn().Msg("main text too short to excerpt; skipping")
		return nil
	}
	art.Start, art.Mid, art.End = seg.Start, seg.Mid, seg.End
	art.ShortExcerptFlag = seg.Short
	if seg.Short {
		logger.Warn().Msg("short document; excerpt thirds will adjoin")
	}
	art.Excerpt = excerpt.Merge(art.Stem, seg, opt)

	stem := art.Stem
	for path, content := range map[string]string{
		r.cfg.startPath(stem):   art.Start,
		r.cfg.midPath(stem):     art.Mid,
		r.cfg.endPath(stem):     art.End,
		r.cfg.excerptPath(stem): art.Excerpt,
	} {
		if err := writeText(path, content); err != nil {
			return err
		}
	}
	return nil
}
