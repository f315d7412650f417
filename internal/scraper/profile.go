package scraper

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldStrategy is one named way to pull a field out of a card. When
// Attr is set the attribute value is read instead of the element text.
// Strategies for a field are tried in order; the first non-empty result
// wins, and a field whose whole chain misses is recorded as "". A
// selector broken by a site redesign therefore costs one field, never
// the record.
type FieldStrategy struct {
	Name     string
	Selector string
	Attr     string
}

// FieldStrategies groups the per-field fallback chains for a card.
type FieldStrategies struct {
	Title      []FieldStrategy
	Company    []FieldStrategy
	Location   []FieldStrategy
	DatePosted []FieldStrategy
	URL        []FieldStrategy
}

// Profile describes how one source site is crawled: how search URLs are
// built, what a card looks like, and where each field lives.
type Profile struct {
	Name    string
	BaseURL string

	// SearchURL builds the results-page request target for a query.
	SearchURL func(q Query) string

	// CardSelector matches posting cards on a results page.
	CardSelector string

	// RequiresActivation marks sites where detail content only
	// renders after the card is clicked.
	RequiresActivation bool

	Fields FieldStrategies

	// DetailSelectors locate the description in the detail pane after
	// activation, tried in order against the full page.
	DetailSelectors []FieldStrategy

	// AuthWallMarkers are URL fragments that mean the site bounced
	// the session to a login or challenge page.
	AuthWallMarkers []string
}

var identifierPattern = regexp.MustCompile(`/jobs/view/(\d+)`)

// ParseIdentifier extracts the numeric posting id from a canonical URL.
// Absence of a match is legal and yields "".
func ParseIdentifier(url string) string {
	m := identifierPattern.FindStringSubmatch(url)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// ProfileByName resolves a configured profile name.
func ProfileByName(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linkedin":
		return LinkedInProfile(), nil
	case "googlejobs", "google-jobs", "google":
		return GoogleJobsProfile(), nil
	}
	return Profile{}, fmt.Errorf("unknown site profile %q", name)
}
