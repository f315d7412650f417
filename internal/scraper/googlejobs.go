package scraper

import (
	"fmt"
	"net/url"
	"strings"
)

// GoogleJobsProfile crawls the Google jobs panel. It needs no session:
// postings aggregate from many boards, so card URLs rarely carry a
// /jobs/view/ segment and most records store without an identifier.
// The jsname hooks are the only stable anchors in this markup.
func GoogleJobsProfile() Profile {
	return Profile{
		Name:    "googlejobs",
		BaseURL: "https://www.google.com",
		SearchURL: func(q Query) string {
			terms := strings.TrimSpace(q.Keywords + " jobs in " + q.Location)
			params := url.Values{}
			params.Set("q", terms)
			u := "https://www.google.com/search?" + params.Encode() + "&ibp=htl;jobs"
			if q.Page > 0 {
				u += fmt.Sprintf("&start=%d", q.Page*10)
			}
			return u
		},
		CardSelector:       `div[jsname="cKdk8"]`,
		RequiresActivation: true,
		Fields: FieldStrategies{
			Title: []FieldStrategy{
				{Name: "heading", Selector: `div[role="heading"]`},
			},
			Company: []FieldStrategy{
				{Name: "company-span", Selector: ".vNEEBe"},
				{Name: "first-span", Selector: "span"},
			},
			Location: []FieldStrategy{
				{Name: "location-jsname", Selector: `span[jsname="vWLAgc"]`},
				{Name: "location-class", Selector: ".Qk80Jf"},
			},
			DatePosted: []FieldStrategy{
				{Name: "posted-chip", Selector: ".LL4CDc"},
			},
			URL: []FieldStrategy{
				{Name: "apply-link", Selector: "a[href]", Attr: "href"},
			},
		},
		DetailSelectors: []FieldStrategy{
			{Name: "description-pane", Selector: `div[jsname="Wct42"]`},
			{Name: "description-span", Selector: ".HBvzbc"},
		},
	}
}
