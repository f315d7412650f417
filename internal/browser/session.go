// Package browser abstracts the page-rendering engine behind a small
// session capability so the crawl pipeline never touches a rendering
// engine directly. Two implementations exist: a headless Chrome session
// (chromedp) for script-rendered sites, and a static HTTP session
// (colly) for server-rendered pages or guest access.
package browser

import "context"

// Card is one posting card captured from the current page. HTML is the
// card's outerHTML at capture time; field extraction parses it offline
// so a session round trip is not needed per field.
type Card struct {
	Index int
	HTML  string
}

type Session interface {
	// Navigate loads the URL and blocks until the page is judged
	// ready. Readiness is implementation-defined but uniform per
	// session: the Chrome session waits for the body plus a fixed
	// render wait, the static session is ready once parsed.
	Navigate(ctx context.Context, url string) error

	// CurrentURL reports the page URL after navigation and any
	// redirects or in-page activation.
	CurrentURL(ctx context.Context) (string, error)

	// ListCards captures every element matching selector, in document
	// order.
	ListCards(ctx context.Context, selector string) ([]Card, error)

	// ActivateCard simulates selecting the index-th card so detail
	// content renders. Sessions without script support treat this as
	// a no-op.
	ActivateCard(ctx context.Context, selector string, index int) error

	// ReadText returns the first matching element's visible text, ""
	// when nothing matches.
	ReadText(ctx context.Context, selector string) (string, error)

	Close() error
}
