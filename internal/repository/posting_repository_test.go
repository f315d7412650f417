package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"jobscout/internal/config"
	"jobscout/internal/database"
	"jobscout/internal/database/sqlite"
	"jobscout/internal/domain/job"
)

func openTestDB(t *testing.T) database.DB {
	t.Helper()
	db, err := sqlite.Connect(context.Background(), config.StoreConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func samplePosting(identifier string) job.Posting {
	return job.Posting{
		Identifier:    identifier,
		Title:         "Backend Engineer",
		Company:       "Acme Corp",
		Location:      "Jakarta, Indonesia",
		Description:   "Build and operate Go services.",
		DatePostedRaw: "2 days ago",
		URL:           "https://www.linkedin.com/jobs/view/" + identifier,
	}
}

func TestUpsertIfNewInsertsThenSkips(t *testing.T) {
	repo := NewPostingRepository(openTestDB(t))
	ctx := context.Background()

	outcome, seqID, err := repo.UpsertIfNew(ctx, samplePosting("4017282910"))
	require.NoError(t, err)
	require.Equal(t, OutcomeInserted, outcome)
	require.Greater(t, seqID, int64(0))

	// Same identifier with different field values is still a repeat.
	dup := samplePosting("4017282910")
	dup.Title = "Senior Backend Engineer"
	outcome, _, err = repo.UpsertIfNew(ctx, dup)
	require.NoError(t, err)
	require.Equal(t, OutcomeSkippedDuplicate, outcome)

	got, err := repo.GetBySequenceID(ctx, seqID)
	require.NoError(t, err)
	require.Equal(t, "Backend Engineer", got.Title)
	require.Equal(t, "4017282910", got.Identifier)
	require.False(t, got.ScrapedAt.IsZero())
}

func TestUpsertIfNewWithoutIdentifierAlwaysInserts(t *testing.T) {
	repo := NewPostingRepository(openTestDB(t))
	ctx := context.Background()

	p := samplePosting("")
	p.URL = "https://www.linkedin.com/jobs/search/"

	outcome, first, err := repo.UpsertIfNew(ctx, p)
	require.NoError(t, err)
	require.Equal(t, OutcomeInserted, outcome)

	outcome, second, err := repo.UpsertIfNew(ctx, p)
	require.NoError(t, err)
	require.Equal(t, OutcomeInserted, outcome)
	require.NotEqual(t, first, second)
}

func TestSearchFindsInsertedPosting(t *testing.T) {
	repo := NewPostingRepository(openTestDB(t))
	ctx := context.Background()

	_, seqID, err := repo.UpsertIfNew(ctx, samplePosting("4017282910"))
	require.NoError(t, err)

	other := samplePosting("4017282911")
	other.Title = "Data Analyst"
	other.Description = "Dashboards and reporting."
	_, _, err = repo.UpsertIfNew(ctx, other)
	require.NoError(t, err)

	results, err := repo.Search(ctx, "backend services", 10, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, seqID, results[0].SequenceID)
	require.Equal(t, "Backend Engineer", results[0].Title)
}

func TestSearchReflectsUpdate(t *testing.T) {
	repo := NewPostingRepository(openTestDB(t))
	ctx := context.Background()

	_, seqID, err := repo.UpsertIfNew(ctx, samplePosting("4017282910"))
	require.NoError(t, err)

	updated := samplePosting("4017282910")
	updated.Title = "Platform Engineer"
	updated.Description = "Kubernetes and release tooling."
	require.NoError(t, repo.Update(ctx, seqID, updated))

	// The old document is gone from the index.
	results, err := repo.Search(ctx, "backend", 10, 0)
	require.NoError(t, err)
	require.Empty(t, results)

	results, err = repo.Search(ctx, "kubernetes", 10, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Platform Engineer", results[0].Title)
}

func TestDeleteRemovesSearchDocument(t *testing.T) {
	repo := NewPostingRepository(openTestDB(t))
	ctx := context.Background()

	_, seqID, err := repo.UpsertIfNew(ctx, samplePosting("4017282910"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, seqID))

	_, err = repo.GetBySequenceID(ctx, seqID)
	require.ErrorIs(t, err, ErrNotFound)

	results, err := repo.Search(ctx, "backend", 10, 0)
	require.NoError(t, err)
	require.Empty(t, results)

	require.ErrorIs(t, repo.Delete(ctx, seqID), ErrNotFound)
}

func TestSearchQuotesOperatorSyntax(t *testing.T) {
	repo := NewPostingRepository(openTestDB(t))
	ctx := context.Background()

	_, _, err := repo.UpsertIfNew(ctx, samplePosting("4017282910"))
	require.NoError(t, err)

	// Raw FTS5 operators in user input must not break the statement.
	_, err = repo.Search(ctx, `engineer AND NOT "unbalanced`, 10, 0)
	require.NoError(t, err)

	results, err := repo.Search(ctx, "   ", 10, 0)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestFTSMatchQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"backend", `"backend"`},
		{"backend engineer", `"backend" "engineer"`},
		{`say "hi"`, `"say" """hi"""`},
		{"  ", ""},
	}
	for _, c := range cases {
		if got := ftsMatchQuery(c.in); got != c.want {
			t.Errorf("ftsMatchQuery(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
