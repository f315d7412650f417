package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

type ChromeOptions struct {
	Headless   bool
	UserAgent  string
	RenderWait time.Duration
	Cookies    []Cookie
}

// ChromeSession drives one headless Chrome tab for the lifetime of a
// pipeline run. A browsing session serializes interactions with its
// page, so the session is not safe for concurrent use.
type ChromeSession struct {
	browserCtx    context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
	renderWait    time.Duration
}

func NewChromeSession(ctx context.Context, opts ChromeOptions) (*ChromeSession, error) {
	ua := strings.TrimSpace(opts.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	renderWait := opts.RenderWait
	if renderWait <= 0 {
		renderWait = 1500 * time.Millisecond
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", opts.Headless),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(ua),
		)...,
	)

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	s := &ChromeSession{
		browserCtx:    browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
		renderWait:    renderWait,
	}

	if len(opts.Cookies) > 0 {
		if err := s.setCookies(ctx, opts.Cookies); err != nil {
			s.Close()
			return nil, fmt.Errorf("inject session cookies: %w", err)
		}
	}

	return s, nil
}

func (s *ChromeSession) setCookies(ctx context.Context, cookies []Cookie) error {
	return s.run(ctx,
		network.Enable(),
		chromedp.ActionFunc(func(ctx context.Context) error {
			for _, c := range cookies {
				p := network.SetCookie(c.Name, c.Value).
					WithDomain(c.Domain).
					WithPath(c.Path).
					WithSecure(c.Secure).
					WithHTTPOnly(c.HTTPOnly)
				if c.Expires > 0 {
					expires := cdp.TimeSinceEpoch(time.Unix(int64(c.Expires), 0))
					p = p.WithExpires(&expires)
				}
				switch strings.ToLower(c.SameSite) {
				case "strict":
					p = p.WithSameSite(network.CookieSameSiteStrict)
				case "lax":
					p = p.WithSameSite(network.CookieSameSiteLax)
				case "none":
					p = p.WithSameSite(network.CookieSameSiteNone)
				}
				if err := p.Do(ctx); err != nil {
					return fmt.Errorf("set cookie %s: %w", c.Name, err)
				}
			}
			return nil
		}),
	)
}

func (s *ChromeSession) Navigate(ctx context.Context, url string) error {
	if s == nil {
		return fmt.Errorf("nil session")
	}
	return s.run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(s.renderWait),
	)
}

func (s *ChromeSession) CurrentURL(ctx context.Context) (string, error) {
	if s == nil {
		return "", fmt.Errorf("nil session")
	}
	var loc string
	if err := s.run(ctx, chromedp.Location(&loc)); err != nil {
		return "", err
	}
	return loc, nil
}

func (s *ChromeSession) ListCards(ctx context.Context, selector string) ([]Card, error) {
	if s == nil {
		return nil, fmt.Errorf("nil session")
	}
	js := fmt.Sprintf(
		`Array.from(document.querySelectorAll(%q)).map(el => el.outerHTML)`,
		selector,
	)
	var htmls []string
	if err := s.run(ctx, chromedp.EvaluateAsDevTools(js, &htmls)); err != nil {
		return nil, err
	}
	cards := make([]Card, 0, len(htmls))
	for i, h := range htmls {
		cards = append(cards, Card{Index: i, HTML: h})
	}
	return cards, nil
}

func (s *ChromeSession) ActivateCard(ctx context.Context, selector string, index int) error {
	if s == nil {
		return fmt.Errorf("nil session")
	}
	js := fmt.Sprintf(
		`(() => { const el = document.querySelectorAll(%q)[%d]; if (!el) return false; el.scrollIntoView(); el.click(); return true; })()`,
		selector, index,
	)
	var clicked bool
	if err := s.run(ctx, chromedp.EvaluateAsDevTools(js, &clicked)); err != nil {
		return err
	}
	if !clicked {
		return fmt.Errorf("card %d not present for selector %q", index, selector)
	}
	// Give the detail pane time to render before anyone reads it.
	return s.run(ctx, chromedp.Sleep(s.renderWait))
}

func (s *ChromeSession) ReadText(ctx context.Context, selector string) (string, error) {
	if s == nil {
		return "", fmt.Errorf("nil session")
	}
	js := fmt.Sprintf(
		`(() => { const el = document.querySelector(%q); return el ? el.innerText : ''; })()`,
		selector,
	)
	var text string
	if err := s.run(ctx, chromedp.EvaluateAsDevTools(js, &text)); err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *ChromeSession) Close() error {
	if s == nil {
		return nil
	}
	if s.cancelBrowser != nil {
		s.cancelBrowser()
	}
	if s.cancelAlloc != nil {
		s.cancelAlloc()
	}
	return nil
}

// run executes actions on the session's browser context while honoring
// the caller's deadline and cancellation.
func (s *ChromeSession) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runCtx := s.browserCtx
	var cancel context.CancelFunc
	if deadline, ok := ctx.Deadline(); ok {
		runCtx, cancel = context.WithDeadline(runCtx, deadline)
	} else {
		runCtx, cancel = context.WithCancel(runCtx)
	}
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}
