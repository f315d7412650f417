package job

import (
	"time"

	"github.com/google/uuid"
)

// Posting is the canonical scraped entity. Text fields use "" as the
// not-found sentinel; Identifier is "" when the posting URL carried no
// recognizable job id, in which case the store cannot deduplicate it.
type Posting struct {
	SequenceID    int64
	Identifier    string
	Title         string
	Company       string
	Location      string
	Description   string
	DatePostedRaw string
	URL           string
	ScrapedAt     time.Time
}

type ScrapeRun struct {
	ID         uuid.UUID
	Profile    string
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     string
	Attempted  int
	Inserted   int
	Skipped    int
}

const (
	RunStatusRunning  = "running"
	RunStatusFinished = "finished"
	RunStatusAborted  = "aborted"
)
