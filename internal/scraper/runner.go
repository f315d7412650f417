package scraper

import (
	"context"
	"fmt"

	"jobscout/internal/browser"
	"jobscout/internal/config"
	"jobscout/internal/logger"

	"go.uber.org/zap"
)

// SessionFactory opens a fresh browser session. Each run acquires its
// session here and releases it on every exit path.
type SessionFactory func(ctx context.Context) (browser.Session, error)

// NewSessionFactory builds the factory for the configured engine,
// loading session cookies once up front. A missing cookie file is not
// an error: the crawl proceeds unauthenticated.
func NewSessionFactory(crawl *config.CrawlConfig, cookiesFile string, log *zap.Logger) (SessionFactory, error) {
	cookies, err := browser.LoadCookieFile(cookiesFile)
	if err != nil {
		return nil, err
	}
	log = logger.OrNop(log)
	if len(cookies) == 0 {
		log.Warn("no session cookies loaded, crawling unauthenticated")
	}

	switch crawl.Session {
	case "", "chrome":
		return func(ctx context.Context) (browser.Session, error) {
			return browser.NewChromeSession(ctx, browser.ChromeOptions{
				Headless:   crawl.Headless,
				RenderWait: crawl.RenderWait.Std(),
				Cookies:    cookies,
			})
		}, nil
	case "static":
		return func(ctx context.Context) (browser.Session, error) {
			return browser.NewStaticSession(browser.StaticOptions{Cookies: cookies}), nil
		}, nil
	}
	return nil, fmt.Errorf("unknown session engine %q", crawl.Session)
}

// Runner binds a profile, a session factory and the store into a
// repeatable crawl. Each RunOnce opens its own session so scheduled
// re-runs never share browser state.
type Runner struct {
	profile  Profile
	sessions SessionFactory
	store    PostingStore
	runs     RunRecorder
	cfg      *config.CrawlConfig
	log      *zap.Logger
}

func NewRunner(sessions SessionFactory, store PostingStore, runs RunRecorder, cfg *config.CrawlConfig, log *zap.Logger) (*Runner, error) {
	if sessions == nil || store == nil {
		return nil, fmt.Errorf("nil runner dependency")
	}
	if cfg == nil {
		cfg = config.DefaultCrawlConfig()
	}
	profile, err := ProfileByName(cfg.Profile)
	if err != nil {
		return nil, err
	}
	return &Runner{
		profile:  profile,
		sessions: sessions,
		store:    store,
		runs:     runs,
		cfg:      cfg,
		log:      logger.OrNop(log),
	}, nil
}

func (r *Runner) RunOnce(ctx context.Context) (Summary, error) {
	session, err := r.sessions(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			r.log.Warn("session close failed", zap.Error(cerr))
		}
	}()

	navigator := NewNavigator(r.profile, session, r.cfg.NavigationTimeout.Std(), r.log)
	extractor := NewExtractor(r.profile, session, r.log)

	pipeline, err := NewPipeline(r.profile, navigator, extractor, r.store, r.runs, r.cfg, r.log)
	if err != nil {
		return Summary{}, err
	}
	return pipeline.Run(ctx)
}
