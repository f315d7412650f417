package scraper

import "errors"

var (
	// ErrNavigationFailed wraps a timeout or transport failure while
	// loading a results page. Retried with a small budget, then the
	// query is abandoned and the run continues.
	ErrNavigationFailed = errors.New("navigation failed")

	// ErrEmptyPage means a results page held zero cards. Not a
	// failure: it terminates pagination for the current query.
	ErrEmptyPage = errors.New("empty page")

	// ErrSessionInvalid means the remote site rejected the session
	// (auth wall, login redirect). Fatal: continuing would crawl
	// empty unauthenticated pages indefinitely.
	ErrSessionInvalid = errors.New("session invalid")

	// ErrStoreUnavailable wraps a store write failure. Fatal: the run
	// aborts and reports partial counts.
	ErrStoreUnavailable = errors.New("store unavailable")
)
