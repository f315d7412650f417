package scraper

import (
	"context"
	"errors"
	"testing"

	"jobscout/internal/browser"
)

// fakeSession serves canned answers to the extractor and records
// activations.
type fakeSession struct {
	currentURL  string
	detailText  map[string]string
	activated   []int
	activateErr error
}

func (f *fakeSession) Navigate(ctx context.Context, url string) error { return nil }

func (f *fakeSession) CurrentURL(ctx context.Context) (string, error) {
	return f.currentURL, nil
}

func (f *fakeSession) ListCards(ctx context.Context, selector string) ([]browser.Card, error) {
	return nil, nil
}

func (f *fakeSession) ActivateCard(ctx context.Context, selector string, index int) error {
	f.activated = append(f.activated, index)
	return f.activateErr
}

func (f *fakeSession) ReadText(ctx context.Context, selector string) (string, error) {
	return f.detailText[selector], nil
}

func (f *fakeSession) Close() error { return nil }

const linkedInCardHTML = `
<div class="job-card-container">
  <a class="job-card-list__title" href="/jobs/view/4017282910/">Backend Engineer</a>
  <div class="job-card-container__company-name"> Acme Corp </div>
  <div class="job-card-container__metadata-item">Jakarta, Indonesia</div>
  <time>2 days ago</time>
</div>`

func TestExtractLinkedInCard(t *testing.T) {
	session := &fakeSession{
		currentURL: "https://www.linkedin.com/jobs/view/4017282910/",
		detailText: map[string]string{
			".jobs-description__content": "Build and operate Go services.",
		},
	}
	ex := NewExtractor(LinkedInProfile(), session, nil)

	p, err := ex.Extract(context.Background(), browser.Card{Index: 0, HTML: linkedInCardHTML})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if p.Title != "Backend Engineer" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Company != "Acme Corp" {
		t.Errorf("company = %q, want trimmed value", p.Company)
	}
	if p.Location != "Jakarta, Indonesia" {
		t.Errorf("location = %q", p.Location)
	}
	if p.DatePostedRaw != "2 days ago" {
		t.Errorf("date = %q", p.DatePostedRaw)
	}
	if p.Description != "Build and operate Go services." {
		t.Errorf("description = %q", p.Description)
	}
	if p.URL != "https://www.linkedin.com/jobs/view/4017282910/" {
		t.Errorf("url = %q, want absolutized card link", p.URL)
	}
	if p.Identifier != "4017282910" {
		t.Errorf("identifier = %q", p.Identifier)
	}
	if len(session.activated) != 1 || session.activated[0] != 0 {
		t.Errorf("activations = %v, want card 0 once", session.activated)
	}
}

func TestExtractFieldMissIsolated(t *testing.T) {
	// A card with no company markup at all: the company chain misses,
	// the other fields still extract.
	html := `
<div class="job-card-container">
  <a class="job-card-list__title" href="/jobs/view/99/">Platform Engineer</a>
</div>`
	session := &fakeSession{}
	ex := NewExtractor(LinkedInProfile(), session, nil)

	p, err := ex.Extract(context.Background(), browser.Card{Index: 3, HTML: html})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if p.Company != "" {
		t.Errorf("company = %q, want empty on total chain miss", p.Company)
	}
	if p.Title != "Platform Engineer" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Identifier != "99" {
		t.Errorf("identifier = %q", p.Identifier)
	}
}

func TestExtractActivationFailureStillExtracts(t *testing.T) {
	session := &fakeSession{activateErr: errors.New("click timeout")}
	ex := NewExtractor(LinkedInProfile(), session, nil)

	p, err := ex.Extract(context.Background(), browser.Card{Index: 0, HTML: linkedInCardHTML})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if p.Title != "Backend Engineer" {
		t.Errorf("title = %q, activation failure must not lose the record", p.Title)
	}
}

func TestExtractWithoutIdentifier(t *testing.T) {
	// Card link without a /jobs/view/ segment and a search-page URL:
	// the record stores with an empty identifier.
	html := `
<div class="job-card-container">
  <a class="job-card-list__title" href="/company/acme/openings/">Backend Engineer</a>
</div>`
	session := &fakeSession{currentURL: "https://www.linkedin.com/jobs/search/?keywords=go"}
	ex := NewExtractor(LinkedInProfile(), session, nil)

	p, err := ex.Extract(context.Background(), browser.Card{HTML: html})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if p.Identifier != "" {
		t.Errorf("identifier = %q, want empty", p.Identifier)
	}
	if p.URL == "" {
		t.Error("url should fall back to a non-empty value")
	}
}

func TestExtractFallbackSelectorChain(t *testing.T) {
	// Old-variant markup: primary selectors miss, fallbacks hit.
	html := `
<li class="jobs-search-results__list-item">
  <h3 class="base-search-card__title">Site Reliability Engineer</h3>
  <h4 class="base-search-card__subtitle">Globex</h4>
  <span class="job-search-card__location">Remote</span>
</li>`
	ex := NewExtractor(LinkedInProfile(), &fakeSession{}, nil)

	p, err := ex.Extract(context.Background(), browser.Card{HTML: html})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if p.Title != "Site Reliability Engineer" {
		t.Errorf("title = %q", p.Title)
	}
	if p.Company != "Globex" {
		t.Errorf("company = %q", p.Company)
	}
	if p.Location != "Remote" {
		t.Errorf("location = %q", p.Location)
	}
}

func TestAbsolutize(t *testing.T) {
	cases := []struct {
		base, href, want string
	}{
		{"https://www.linkedin.com", "/jobs/view/1/", "https://www.linkedin.com/jobs/view/1/"},
		{"https://www.linkedin.com/", "/jobs/view/1/", "https://www.linkedin.com/jobs/view/1/"},
		{"https://www.linkedin.com", "https://other.example/x", "https://other.example/x"},
		{"https://www.linkedin.com", "jobs/view/2", "https://www.linkedin.com/jobs/view/2"},
		{"https://www.linkedin.com", "", ""},
	}
	for _, c := range cases {
		if got := absolutize(c.base, c.href); got != c.want {
			t.Errorf("absolutize(%q, %q) = %q, want %q", c.base, c.href, got, c.want)
		}
	}
}
