package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobscout/internal/database"
	"jobscout/internal/domain/job"
)

var ErrNotFound = errors.New("posting not found")

// UpsertOutcome reports what a deduplicating insert did.
type UpsertOutcome int

const (
	OutcomeInserted UpsertOutcome = iota
	OutcomeSkippedDuplicate
)

func (o UpsertOutcome) String() string {
	if o == OutcomeSkippedDuplicate {
		return "skipped_duplicate"
	}
	return "inserted"
}

// PostingRepository is the store's mutation and query surface. Every
// mutation maintains the postings_fts index inside the same transaction
// as the row change, so the index is never observably out of step with
// the primary table.
type PostingRepository struct {
	db database.DB
}

func NewPostingRepository(db database.DB) *PostingRepository {
	return &PostingRepository{db: db}
}

const postingColumns = `id, COALESCE(job_id, ''), title, company, location, description, date_posted, url, scraped_at`

// UpsertIfNew inserts the posting unless a row with the same non-empty
// identifier already exists. The UNIQUE index on job_id is what enforces
// the invariant; INSERT OR IGNORE turns a repeat into a no-op rather
// than an error. Identifier-less postings always insert: NULL job_id
// rows never collide. The assigned sequence id is returned on insert.
func (r *PostingRepository) UpsertIfNew(ctx context.Context, p job.Posting) (UpsertOutcome, int64, error) {
	if r == nil || r.db == nil {
		return 0, 0, fmt.Errorf("nil repository/db")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("begin insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(ctx,
		`INSERT OR IGNORE INTO postings (job_id, title, company, location, description, date_posted, url)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		nullableText(p.Identifier),
		p.Title, p.Company, p.Location, p.Description, p.DatePostedRaw, p.URL,
	)
	if err != nil {
		return 0, 0, fmt.Errorf("insert posting: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, 0, err
	}
	if n == 0 {
		return OutcomeSkippedDuplicate, 0, nil
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, 0, err
	}
	if err := insertDocument(ctx, tx, id, p); err != nil {
		return 0, 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit insert: %w", err)
	}
	return OutcomeInserted, id, nil
}

// Update rewrites all text fields of an existing posting and replaces
// its search document in the same transaction. The crawl path never
// calls this; it serves the administrative surface.
func (r *PostingRepository) Update(ctx context.Context, sequenceID int64, p job.Posting) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("nil repository/db")
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	old, err := documentFields(ctx, tx, sequenceID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE postings
		 SET job_id = ?, title = ?, company = ?, location = ?, description = ?, date_posted = ?, url = ?
		 WHERE id = ?`,
		nullableText(p.Identifier),
		p.Title, p.Company, p.Location, p.Description, p.DatePostedRaw, p.URL,
		sequenceID,
	)
	if err != nil {
		return fmt.Errorf("update posting: %w", err)
	}

	if err := deleteDocument(ctx, tx, sequenceID, old); err != nil {
		return err
	}
	if err := insertDocument(ctx, tx, sequenceID, p); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update: %w", err)
	}
	return nil
}

// Delete removes a posting and its search document together.
func (r *PostingRepository) Delete(ctx context.Context, sequenceID int64) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("nil repository/db")
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	old, err := documentFields(ctx, tx, sequenceID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM postings WHERE id = ?`, sequenceID); err != nil {
		return fmt.Errorf("delete posting: %w", err)
	}
	if err := deleteDocument(ctx, tx, sequenceID, old); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

func (r *PostingRepository) GetBySequenceID(ctx context.Context, sequenceID int64) (job.Posting, error) {
	if r == nil || r.db == nil {
		return job.Posting{}, fmt.Errorf("nil repository/db")
	}
	row := r.db.QueryRow(ctx,
		`SELECT `+postingColumns+` FROM postings WHERE id = ?`, sequenceID)
	p, err := scanPosting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return job.Posting{}, ErrNotFound
	}
	return p, err
}

// Search runs a full-text match over the derived index, best rank first.
// The raw query is rewritten into quoted terms so FTS5 operator syntax
// in user input cannot break the statement.
func (r *PostingRepository) Search(ctx context.Context, query string, limit, offset int) ([]job.Posting, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("nil repository/db")
	}
	match := ftsMatchQuery(query)
	if match == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT p.id, COALESCE(p.job_id, ''), p.title, p.company, p.location, p.description, p.date_posted, p.url, p.scraped_at
		 FROM postings_fts f
		 JOIN postings p ON p.id = f.rowid
		 WHERE postings_fts MATCH ?
		 ORDER BY f.rank
		 LIMIT ? OFFSET ?`,
		match, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("search postings: %w", err)
	}
	defer rows.Close()

	var out []job.Posting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// insertDocument adds the posting's search document to the index.
func insertDocument(ctx context.Context, tx database.Tx, sequenceID int64, p job.Posting) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO postings_fts (rowid, title, company, location, description, url)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sequenceID, p.Title, p.Company, p.Location, p.Description, p.URL,
	)
	if err != nil {
		return fmt.Errorf("index document %d: %w", sequenceID, err)
	}
	return nil
}

// deleteDocument removes a document from the external-content index,
// which requires replaying the old column values.
func deleteDocument(ctx context.Context, tx database.Tx, sequenceID int64, old job.Posting) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO postings_fts (postings_fts, rowid, title, company, location, description, url)
		 VALUES ('delete', ?, ?, ?, ?, ?, ?)`,
		sequenceID, old.Title, old.Company, old.Location, old.Description, old.URL,
	)
	if err != nil {
		return fmt.Errorf("unindex document %d: %w", sequenceID, err)
	}
	return nil
}

// documentFields reads the indexed columns of a row inside tx, for
// building the index delete command.
func documentFields(ctx context.Context, tx database.Tx, sequenceID int64) (job.Posting, error) {
	var p job.Posting
	err := tx.QueryRow(ctx,
		`SELECT title, company, location, description, url FROM postings WHERE id = ?`, sequenceID,
	).Scan(&p.Title, &p.Company, &p.Location, &p.Description, &p.URL)
	return p, err
}

type scannable interface {
	Scan(dest ...any) error
}

func scanPosting(row scannable) (job.Posting, error) {
	var p job.Posting
	var scrapedAt string
	err := row.Scan(
		&p.SequenceID, &p.Identifier,
		&p.Title, &p.Company, &p.Location, &p.Description, &p.DatePostedRaw, &p.URL,
		&scrapedAt,
	)
	if err != nil {
		return job.Posting{}, err
	}
	if t, perr := time.Parse("2006-01-02 15:04:05", scrapedAt); perr == nil {
		p.ScrapedAt = t.UTC()
	}
	return p, nil
}

// ftsMatchQuery quotes each whitespace-separated term, producing an
// implicit-AND phrase-free match expression.
func ftsMatchQuery(q string) string {
	terms := strings.Fields(strings.TrimSpace(q))
	if len(terms) == 0 {
		return ""
	}
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ReplaceAll(t, `"`, `""`)
		quoted = append(quoted, `"`+t+`"`)
	}
	return strings.Join(quoted, " ")
}

func nullableText(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
