package browser

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

type StaticOptions struct {
	UserAgent string
	Cookies   []Cookie
}

// StaticSession is the degraded session variant: plain HTTP fetches with
// no script execution. Card activation is a no-op, so extraction only
// sees what the server rendered. Useful for guest pages and as the
// fallback when no Chrome binary is available.
type StaticSession struct {
	userAgent  string
	cookies    []Cookie
	doc        *goquery.Document
	currentURL string
}

func NewStaticSession(opts StaticOptions) *StaticSession {
	ua := strings.TrimSpace(opts.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	return &StaticSession{userAgent: ua, cookies: opts.Cookies}
}

func (s *StaticSession) Navigate(ctx context.Context, url string) error {
	if s == nil {
		return fmt.Errorf("nil session")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c := colly.NewCollector(colly.UserAgent(s.userAgent))
	if len(s.cookies) > 0 {
		_ = c.SetCookies(url, HTTPCookies(s.cookies))
	}

	var doc *goquery.Document
	var finalURL string
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
	})
	c.OnResponse(func(r *colly.Response) {
		d, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if err != nil {
			reqErr = err
			return
		}
		doc = d
		finalURL = r.Request.URL.String()
	})
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if err := c.Visit(url); err != nil {
		return err
	}
	c.Wait()

	if reqErr != nil {
		return reqErr
	}
	if doc == nil {
		return fmt.Errorf("no document for %s", url)
	}
	s.doc = doc
	s.currentURL = finalURL
	return nil
}

func (s *StaticSession) CurrentURL(ctx context.Context) (string, error) {
	if s == nil || s.doc == nil {
		return "", fmt.Errorf("no page loaded")
	}
	return s.currentURL, nil
}

func (s *StaticSession) ListCards(ctx context.Context, selector string) ([]Card, error) {
	if s == nil || s.doc == nil {
		return nil, fmt.Errorf("no page loaded")
	}
	var cards []Card
	s.doc.Find(selector).Each(func(i int, sel *goquery.Selection) {
		html, err := goquery.OuterHtml(sel)
		if err != nil {
			return
		}
		cards = append(cards, Card{Index: i, HTML: html})
	})
	return cards, nil
}

// ActivateCard has nothing to click without script execution.
func (s *StaticSession) ActivateCard(ctx context.Context, selector string, index int) error {
	if s == nil || s.doc == nil {
		return fmt.Errorf("no page loaded")
	}
	return nil
}

func (s *StaticSession) ReadText(ctx context.Context, selector string) (string, error) {
	if s == nil || s.doc == nil {
		return "", fmt.Errorf("no page loaded")
	}
	return strings.TrimSpace(s.doc.Find(selector).First().Text()), nil
}

func (s *StaticSession) Close() error { return nil }
