package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobscout/internal/browser"
	"jobscout/internal/logger"

	"go.uber.org/zap"
)

// Navigator drives the session to a query's results page and hands the
// cards back. All readiness waiting is delegated to the session so one
// policy applies uniformly across pages.
type Navigator struct {
	profile Profile
	session browser.Session
	timeout time.Duration
	log     *zap.Logger
}

func NewNavigator(profile Profile, session browser.Session, timeout time.Duration, log *zap.Logger) *Navigator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Navigator{profile: profile, session: session, timeout: timeout, log: logger.OrNop(log)}
}

// LoadPage navigates to the query's page and lists its cards.
// Returns ErrEmptyPage when the page has no cards (normal end of
// results), ErrSessionInvalid when the site bounced to an auth wall,
// ErrNavigationFailed on timeout or transport failure.
func (n *Navigator) LoadPage(ctx context.Context, q Query) ([]browser.Card, error) {
	target := n.profile.SearchURL(q)

	navCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.session.Navigate(navCtx, target); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNavigationFailed, target, err)
	}

	current, err := n.session.CurrentURL(navCtx)
	if err == nil {
		for _, marker := range n.profile.AuthWallMarkers {
			if strings.Contains(current, marker) {
				return nil, fmt.Errorf("%w: redirected to %s", ErrSessionInvalid, current)
			}
		}
	}

	cards, err := n.session.ListCards(navCtx, n.profile.CardSelector)
	if err != nil {
		return nil, fmt.Errorf("%w: list cards: %v", ErrNavigationFailed, err)
	}
	if len(cards) == 0 {
		return nil, ErrEmptyPage
	}

	n.log.Debug("page loaded",
		zap.String("keywords", q.Keywords),
		zap.String("location", q.Location),
		zap.Int("page", q.Page),
		zap.Int("cards", len(cards)),
	)
	return cards, nil
}
