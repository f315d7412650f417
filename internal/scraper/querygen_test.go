package scraper

import (
	"testing"

	"jobscout/internal/config"
)

func pairs() []config.SearchPair {
	return []config.SearchPair{
		{Keywords: "Software Engineer", Location: "United States"},
		{Keywords: "Data Engineer", Location: "Remote"},
	}
}

func TestQueryGeneratorOrder(t *testing.T) {
	gen := NewQueryGenerator(pairs(), 2)

	want := []Query{
		{Keywords: "Software Engineer", Location: "United States", Page: 0},
		{Keywords: "Software Engineer", Location: "United States", Page: 1},
		{Keywords: "Data Engineer", Location: "Remote", Page: 0},
		{Keywords: "Data Engineer", Location: "Remote", Page: 1},
	}
	for i, w := range want {
		q, ok := gen.Next()
		if !ok {
			t.Fatalf("query %d: generator exhausted early", i)
		}
		if q != w {
			t.Fatalf("query %d: got %+v, want %+v", i, q, w)
		}
	}
	if _, ok := gen.Next(); ok {
		t.Fatal("generator not exhausted after all pairs and pages")
	}
}

func TestQueryGeneratorSkipPair(t *testing.T) {
	gen := NewQueryGenerator(pairs(), 3)

	if _, ok := gen.Next(); !ok {
		t.Fatal("first query missing")
	}
	gen.SkipPair()

	q, ok := gen.Next()
	if !ok {
		t.Fatal("second pair missing after skip")
	}
	if q.Keywords != "Data Engineer" || q.Page != 0 {
		t.Fatalf("after skip got %+v, want second pair page 0", q)
	}
}

func TestQueryGeneratorReset(t *testing.T) {
	gen := NewQueryGenerator(pairs(), 1)
	for {
		if _, ok := gen.Next(); !ok {
			break
		}
	}

	gen.Reset()
	q, ok := gen.Next()
	if !ok {
		t.Fatal("generator empty after reset")
	}
	if q.Keywords != "Software Engineer" || q.Page != 0 {
		t.Fatalf("after reset got %+v", q)
	}
}

func TestQueryGeneratorNoPairs(t *testing.T) {
	gen := NewQueryGenerator(nil, 5)
	if _, ok := gen.Next(); ok {
		t.Fatal("expected no queries for empty pair list")
	}
}
