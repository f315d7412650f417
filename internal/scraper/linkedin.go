package scraper

import (
	"fmt"
	"net/url"
)

const linkedInPageSize = 25

// LinkedInProfile crawls the authenticated LinkedIn jobs search. Detail
// content renders in a side pane after the card is clicked, and the
// canonical /jobs/view/<id>/ URL appears in the address bar on
// activation. Selector chains carry both the current markup and older
// variants the site still serves to some cohorts.
func LinkedInProfile() Profile {
	return Profile{
		Name:    "linkedin",
		BaseURL: "https://www.linkedin.com",
		SearchURL: func(q Query) string {
			params := url.Values{}
			params.Set("keywords", q.Keywords)
			params.Set("location", q.Location)
			if q.Page > 0 {
				params.Set("start", fmt.Sprintf("%d", q.Page*linkedInPageSize))
			}
			return "https://www.linkedin.com/jobs/search/?" + params.Encode()
		},
		CardSelector:       "div.job-card-container, li.jobs-search-results__list-item",
		RequiresActivation: true,
		Fields: FieldStrategies{
			Title: []FieldStrategy{
				{Name: "card-title-link", Selector: "a.job-card-list__title"},
				{Name: "card-title-strong", Selector: "a.job-card-container__link strong"},
				{Name: "base-card-title", Selector: "h3.base-search-card__title"},
			},
			Company: []FieldStrategy{
				{Name: "company-name", Selector: ".job-card-container__company-name"},
				{Name: "primary-description", Selector: ".job-card-container__primary-description"},
				{Name: "lockup-subtitle", Selector: ".artdeco-entity-lockup__subtitle"},
				{Name: "base-card-subtitle", Selector: "h4.base-search-card__subtitle"},
			},
			Location: []FieldStrategy{
				{Name: "metadata-item", Selector: ".job-card-container__metadata-item"},
				{Name: "item-location", Selector: ".job-search-card__location"},
			},
			DatePosted: []FieldStrategy{
				{Name: "time-text", Selector: "time"},
				{Name: "listdate", Selector: ".job-search-card__listdate"},
			},
			URL: []FieldStrategy{
				{Name: "view-link", Selector: "a[href*='/jobs/view/']", Attr: "href"},
				{Name: "card-link", Selector: "a.job-card-container__link", Attr: "href"},
			},
		},
		DetailSelectors: []FieldStrategy{
			{Name: "description-content", Selector: ".jobs-description__content"},
			{Name: "job-details", Selector: "#job-details"},
			{Name: "box-html-content", Selector: ".jobs-box__html-content"},
		},
		AuthWallMarkers: []string{"/authwall", "/login", "/checkpoint", "/uas/"},
	}
}
