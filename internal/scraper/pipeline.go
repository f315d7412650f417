package scraper

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobscout/internal/browser"
	"jobscout/internal/config"
	"jobscout/internal/domain/job"
	"jobscout/internal/logger"
	"jobscout/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PageLoader yields a results page's cards; see Navigator.
type PageLoader interface {
	LoadPage(ctx context.Context, q Query) ([]browser.Card, error)
}

// CardExtractor turns one card into one record; see Extractor.
type CardExtractor interface {
	Extract(ctx context.Context, card browser.Card) (job.Posting, error)
}

// PostingStore is the deduplicating insert surface of the store.
type PostingStore interface {
	UpsertIfNew(ctx context.Context, p job.Posting) (repository.UpsertOutcome, int64, error)
}

// RunRecorder persists scrape-run bookkeeping. Optional: nil disables.
type RunRecorder interface {
	Create(ctx context.Context, profile string) (uuid.UUID, error)
	Finish(ctx context.Context, id uuid.UUID, status string, attempted, inserted, skipped int) error
}

// Summary is the terminal output of one pipeline run.
type Summary struct {
	Attempted int
	Inserted  int
	Skipped   int
	Elapsed   time.Duration
}

// Pipeline sequences queries to pages to cards to records to the
// store, one card at a time. A browser session serializes interactions
// with its page, so there is no concurrent fan-out; overlap safety
// between independent runs lives entirely in the store's dedup
// guarantee.
type Pipeline struct {
	profile   Profile
	navigator PageLoader
	extractor CardExtractor
	store     PostingStore
	runs      RunRecorder
	cfg       *config.CrawlConfig
	log       *zap.Logger
}

func NewPipeline(
	profile Profile,
	navigator PageLoader,
	extractor CardExtractor,
	store PostingStore,
	runs RunRecorder,
	cfg *config.CrawlConfig,
	log *zap.Logger,
) (*Pipeline, error) {
	if navigator == nil || extractor == nil || store == nil {
		return nil, fmt.Errorf("nil pipeline dependency")
	}
	if cfg == nil {
		cfg = config.DefaultCrawlConfig()
	}
	return &Pipeline{
		profile:   profile,
		navigator: navigator,
		extractor: extractor,
		store:     store,
		runs:      runs,
		cfg:       cfg,
		log:       logger.OrNop(log),
	}, nil
}

// Run executes the crawl to completion. Per-field and per-card failures
// degrade the record; per-page and per-query failures degrade the
// query; only store and session failures abort the run. The summary is
// valid even on an aborted run and carries the partial counts.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	var sum Summary

	var runID uuid.UUID
	if p.runs != nil {
		id, err := p.runs.Create(ctx, p.profile.Name)
		if err != nil {
			p.log.Warn("scrape run not recorded", zap.Error(err))
		} else {
			runID = id
		}
	}

	gen := NewQueryGenerator(p.cfg.Searches, p.cfg.MaxPages)
	err := p.crawl(ctx, gen, &sum)

	sum.Elapsed = time.Since(start)

	status := job.RunStatusFinished
	if err != nil {
		status = job.RunStatusAborted
	}
	if p.runs != nil && runID != uuid.Nil {
		// Use a fresh context so an aborted run still records.
		finishCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if ferr := p.runs.Finish(finishCtx, runID, status, sum.Attempted, sum.Inserted, sum.Skipped); ferr != nil {
			p.log.Warn("scrape run not finalized", zap.Error(ferr))
		}
	}

	p.log.Info("run complete",
		zap.String("profile", p.profile.Name),
		zap.String("status", status),
		zap.Int("attempted", sum.Attempted),
		zap.Int("inserted", sum.Inserted),
		zap.Int("skipped", sum.Skipped),
		zap.Duration("elapsed", sum.Elapsed),
	)
	return sum, err
}

func (p *Pipeline) crawl(ctx context.Context, gen *QueryGenerator, sum *Summary) error {
	for {
		// Stop signal is honored at query/page transitions only, so
		// the card in flight always finishes and no half-extracted
		// record reaches the store.
		if err := ctx.Err(); err != nil {
			return err
		}

		q, ok := gen.Next()
		if !ok {
			return nil
		}

		cards, err := p.loadPageWithRetry(ctx, q)
		switch {
		case errors.Is(err, ErrEmptyPage):
			// Normal end of this query's results.
			p.log.Info("no more results",
				zap.String("keywords", q.Keywords),
				zap.String("location", q.Location),
				zap.Int("page", q.Page))
			gen.SkipPair()
			continue
		case errors.Is(err, ErrSessionInvalid):
			return err
		case err != nil:
			p.log.Warn("query abandoned",
				zap.String("keywords", q.Keywords),
				zap.String("location", q.Location),
				zap.Int("page", q.Page),
				zap.Error(err))
			gen.SkipPair()
			continue
		}

		if err := p.processCards(ctx, cards, sum); err != nil {
			return err
		}
	}
}

func (p *Pipeline) loadPageWithRetry(ctx context.Context, q Query) ([]browser.Card, error) {
	var lastErr error
	for attempt := 0; attempt <= p.cfg.NavigationRetries; attempt++ {
		cards, err := p.navigator.LoadPage(ctx, q)
		if err == nil {
			return cards, nil
		}
		if !errors.Is(err, ErrNavigationFailed) {
			return nil, err
		}
		lastErr = err
		p.log.Warn("navigation failed",
			zap.Int("attempt", attempt+1),
			zap.String("keywords", q.Keywords),
			zap.Int("page", q.Page),
			zap.Error(err))
	}
	return nil, lastErr
}

func (p *Pipeline) processCards(ctx context.Context, cards []browser.Card, sum *Summary) error {
	limit := p.cfg.PerPageCap
	if limit > 0 && len(cards) > limit {
		cards = cards[:limit]
	}

	for i, card := range cards {
		if i > 0 {
			p.pause(ctx)
		}

		rec, err := p.extractor.Extract(ctx, card)
		if err != nil {
			p.log.Warn("card extraction failed", zap.Int("card", card.Index), zap.Error(err))
			continue
		}

		sum.Attempted++
		outcome, seqID, err := p.store.UpsertIfNew(ctx, rec)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		switch outcome {
		case OutcomeInserted:
			sum.Inserted++
			p.log.Debug("posting stored",
				zap.Int64("sequence_id", seqID),
				zap.String("identifier", rec.Identifier),
				zap.String("title", rec.Title))
		case OutcomeSkippedDuplicate:
			sum.Skipped++
		}
	}
	return nil
}

// pause rate-limits between card activations without outliving a
// cancelled run.
func (p *Pipeline) pause(ctx context.Context) {
	d := p.cfg.InterActionDelay.Std()
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Re-exported so pipeline callers don't need the repository package for
// outcome comparisons.
const (
	OutcomeInserted         = repository.OutcomeInserted
	OutcomeSkippedDuplicate = repository.OutcomeSkippedDuplicate
)
