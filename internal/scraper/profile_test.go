package scraper

import (
	"strings"
	"testing"
)

func TestParseIdentifier(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.linkedin.com/jobs/view/4017282910/", "4017282910"},
		{"https://www.linkedin.com/jobs/view/4017282910/?refId=abc", "4017282910"},
		{"/jobs/view/123", "123"},
		{"https://www.linkedin.com/jobs/search/?keywords=go", ""},
		{"https://www.linkedin.com/jobs/view/abc/", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := ParseIdentifier(c.url); got != c.want {
			t.Errorf("ParseIdentifier(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}

func TestLinkedInSearchURL(t *testing.T) {
	p := LinkedInProfile()

	u := p.SearchURL(Query{Keywords: "Software Engineer", Location: "United States", Page: 0})
	if !strings.Contains(u, "keywords=Software+Engineer") {
		t.Errorf("missing keywords param: %s", u)
	}
	if strings.Contains(u, "start=") {
		t.Errorf("page 0 must not paginate: %s", u)
	}

	u = p.SearchURL(Query{Keywords: "Go", Location: "Remote", Page: 2})
	if !strings.Contains(u, "start=50") {
		t.Errorf("page 2 should offset by 50: %s", u)
	}
}

func TestGoogleJobsSearchURL(t *testing.T) {
	p := GoogleJobsProfile()
	u := p.SearchURL(Query{Keywords: "Data Engineer", Location: "Jakarta", Page: 0})
	if !strings.Contains(u, "ibp=htl;jobs") {
		t.Errorf("missing jobs panel marker: %s", u)
	}
	if !strings.Contains(u, "Data+Engineer+jobs+in+Jakarta") {
		t.Errorf("unexpected query terms: %s", u)
	}
}

func TestProfileByName(t *testing.T) {
	for _, name := range []string{"", "linkedin", "LinkedIn"} {
		p, err := ProfileByName(name)
		if err != nil {
			t.Fatalf("ProfileByName(%q): %v", name, err)
		}
		if p.Name != "linkedin" {
			t.Fatalf("ProfileByName(%q) = %s", name, p.Name)
		}
	}

	p, err := ProfileByName("googlejobs")
	if err != nil || p.Name != "googlejobs" {
		t.Fatalf("googlejobs profile: %v, %s", err, p.Name)
	}

	if _, err := ProfileByName("monster"); err == nil {
		t.Fatal("expected error for unknown profile")
	}
}
