package scraper

import "jobscout/internal/config"

// Query is one (keywords, location, page) tuple to visit. Page is
// zero-based.
type Query struct {
	Keywords string
	Location string
	Page     int
}

// QueryGenerator enumerates queries lazily in a fixed order: outer loop
// over the configured search pairs, inner loop over ascending page
// index. It has no side effects and can be restarted with Reset.
type QueryGenerator struct {
	pairs    []config.SearchPair
	maxPages int
	pairIdx  int
	page     int
}

func NewQueryGenerator(pairs []config.SearchPair, maxPages int) *QueryGenerator {
	if maxPages <= 0 {
		maxPages = 1
	}
	return &QueryGenerator{pairs: pairs, maxPages: maxPages}
}

// Next yields the next query, false when the sequence is exhausted.
func (g *QueryGenerator) Next() (Query, bool) {
	if g == nil {
		return Query{}, false
	}
	for g.pairIdx < len(g.pairs) {
		if g.page < g.maxPages {
			q := Query{
				Keywords: g.pairs[g.pairIdx].Keywords,
				Location: g.pairs[g.pairIdx].Location,
				Page:     g.page,
			}
			g.page++
			return q, true
		}
		g.pairIdx++
		g.page = 0
	}
	return Query{}, false
}

// SkipPair abandons the remaining pages of the current search pair.
// Called when a page comes back empty (end of that query's results) or
// the pair's navigation retry budget is spent.
func (g *QueryGenerator) SkipPair() {
	if g == nil {
		return
	}
	g.pairIdx++
	g.page = 0
}

func (g *QueryGenerator) Reset() {
	if g == nil {
		return
	}
	g.pairIdx = 0
	g.page = 0
}
