package scraper

import (
	"context"
	"strings"

	"jobscout/internal/browser"
	"jobscout/internal/domain/job"
	"jobscout/internal/logger"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Extractor turns one card into one Posting. Every activated card
// yields exactly one record: a field whose strategies all miss is
// stored as "", and only the record's emptiness carries that
// information upward.
type Extractor struct {
	profile Profile
	session browser.Session
	log     *zap.Logger
}

func NewExtractor(profile Profile, session browser.Session, log *zap.Logger) *Extractor {
	return &Extractor{profile: profile, session: session, log: logger.OrNop(log)}
}

func (e *Extractor) Extract(ctx context.Context, card browser.Card) (job.Posting, error) {
	var p job.Posting

	if e.profile.RequiresActivation {
		if err := e.session.ActivateCard(ctx, e.profile.CardSelector, card.Index); err != nil {
			// Without activation the detail pane and canonical URL
			// stay stale; the card-level fields still extract.
			e.log.Warn("card activation failed",
				zap.Int("card", card.Index), zap.Error(err))
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(card.HTML))
	if err != nil {
		e.log.Warn("card html unparsable", zap.Int("card", card.Index), zap.Error(err))
		return p, nil
	}
	root := doc.Selection

	p.Title = firstMatch(root, e.profile.Fields.Title)
	p.Company = firstMatch(root, e.profile.Fields.Company)
	p.Location = firstMatch(root, e.profile.Fields.Location)
	p.DatePostedRaw = firstMatch(root, e.profile.Fields.DatePosted)
	p.Description = e.readDetail(ctx)
	p.URL = e.canonicalURL(ctx, root)
	p.Identifier = ParseIdentifier(p.URL)

	return p, nil
}

// readDetail walks the detail-pane strategy chain against the live
// page. Read failures are per-field failures: absorbed, field empty.
func (e *Extractor) readDetail(ctx context.Context) string {
	for _, s := range e.profile.DetailSelectors {
		text, err := e.session.ReadText(ctx, s.Selector)
		if err != nil {
			e.log.Debug("detail strategy errored",
				zap.String("strategy", s.Name), zap.Error(err))
			continue
		}
		if text != "" {
			return text
		}
	}
	return ""
}

// canonicalURL prefers a link found on the card, absolutized against
// the profile's base; failing that, the page URL after activation
// (which on click-to-expand sites carries the canonical posting path).
func (e *Extractor) canonicalURL(ctx context.Context, root *goquery.Selection) string {
	if u := firstMatch(root, e.profile.Fields.URL); u != "" {
		return absolutize(e.profile.BaseURL, u)
	}
	u, err := e.session.CurrentURL(ctx)
	if err != nil {
		e.log.Debug("current url unavailable", zap.Error(err))
		return ""
	}
	return u
}

// firstMatch applies a strategy chain to the card fragment, first
// non-empty result wins.
func firstMatch(root *goquery.Selection, strategies []FieldStrategy) string {
	for _, s := range strategies {
		sel := root.Find(s.Selector).First()
		if sel.Length() == 0 {
			continue
		}
		var text string
		if s.Attr != "" {
			text, _ = sel.Attr(s.Attr)
		} else {
			text = sel.Text()
		}
		text = strings.TrimSpace(text)
		if text != "" {
			return text
		}
	}
	return ""
}

func absolutize(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base = strings.TrimRight(base, "/")
	if strings.HasPrefix(href, "/") {
		return base + href
	}
	return base + "/" + href
}
