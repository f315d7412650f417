package dto

import (
	"time"

	"jobscout/internal/domain/job"
)

type PostingResponse struct {
	ID          int64  `json:"id"`
	JobID       string `json:"job_id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	DatePosted  string `json:"date_posted"`
	URL         string `json:"url"`
	ScrapedAt   string `json:"scraped_at"`
}

type SearchResponse struct {
	Query    string            `json:"query"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
	Count    int               `json:"count"`
	Postings []PostingResponse `json:"postings"`
}

func FromPosting(p job.Posting) PostingResponse {
	return PostingResponse{
		ID:          p.SequenceID,
		JobID:       p.Identifier,
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Description: p.Description,
		DatePosted:  p.DatePostedRaw,
		URL:         p.URL,
		ScrapedAt:   p.ScrapedAt.UTC().Format(time.RFC3339),
	}
}

func FromPostings(items []job.Posting) []PostingResponse {
	out := make([]PostingResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPosting(p))
	}
	return out
}
