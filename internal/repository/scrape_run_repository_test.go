package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"jobscout/internal/domain/job"
)

func TestScrapeRunLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrapeRunRepository(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, "linkedin")
	require.NoError(t, err)

	require.NoError(t, repo.Finish(ctx, id, job.RunStatusFinished, 50, 30, 20))

	var status string
	var attempted, inserted, skipped int
	row := db.QueryRow(ctx,
		`SELECT status, attempted, inserted, skipped FROM scrape_runs WHERE id = ?`, id.String())
	require.NoError(t, row.Scan(&status, &attempted, &inserted, &skipped))
	require.Equal(t, job.RunStatusFinished, status)
	require.Equal(t, 50, attempted)
	require.Equal(t, 30, inserted)
	require.Equal(t, 20, skipped)
}
