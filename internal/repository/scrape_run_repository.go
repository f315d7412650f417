package repository

import (
	"context"
	"fmt"
	"time"

	"jobscout/internal/database"
	"jobscout/internal/domain/job"

	"github.com/google/uuid"
)

type ScrapeRunRepository struct {
	db database.DB
}

func NewScrapeRunRepository(db database.DB) *ScrapeRunRepository {
	return &ScrapeRunRepository{db: db}
}

func (r *ScrapeRunRepository) Create(ctx context.Context, profile string) (uuid.UUID, error) {
	if r == nil || r.db == nil {
		return uuid.Nil, fmt.Errorf("nil repository/db")
	}
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO scrape_runs (id, profile, started_at, status) VALUES (?, ?, ?, ?)`,
		id.String(), profile, time.Now().UTC().Format(time.RFC3339), job.RunStatusRunning,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create scrape run: %w", err)
	}
	return id, nil
}

func (r *ScrapeRunRepository) Finish(ctx context.Context, id uuid.UUID, status string, attempted, inserted, skipped int) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("nil repository/db")
	}
	if id == uuid.Nil {
		return nil
	}
	_, err := r.db.Exec(ctx,
		`UPDATE scrape_runs
		 SET finished_at = ?, status = ?, attempted = ?, inserted = ?, skipped = ?
		 WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), status, attempted, inserted, skipped, id.String(),
	)
	if err != nil {
		return fmt.Errorf("finish scrape run: %w", err)
	}
	return nil
}
