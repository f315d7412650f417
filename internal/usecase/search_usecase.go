package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobscout/internal/domain/job"
	"jobscout/internal/logger"

	"go.uber.org/zap"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// PostingReader is the store surface the search API needs.
type PostingReader interface {
	Search(ctx context.Context, query string, limit, offset int) ([]job.Posting, error)
	GetBySequenceID(ctx context.Context, sequenceID int64) (job.Posting, error)
	Delete(ctx context.Context, sequenceID int64) error
}

// SearchCache is an optional response cache; nil disables caching and
// an unavailable backend degrades to no-cache, never to an error.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type SearchParams struct {
	Query  string
	Limit  int
	Offset int
}

type SearchUsecase struct {
	repo     PostingReader
	notFound error
	cache    SearchCache
	cacheTTL time.Duration
	log      *zap.Logger
}

// NewSearchUsecase wires the usecase. notFound is the repository's
// not-found sentinel, mapped to ErrNotFound at this boundary.
func NewSearchUsecase(repo PostingReader, notFound error, cache SearchCache, log *zap.Logger) *SearchUsecase {
	return &SearchUsecase{
		repo:     repo,
		notFound: notFound,
		cache:    cache,
		cacheTTL: time.Minute,
		log:      logger.OrNop(log),
	}
}

func (u *SearchUsecase) Search(ctx context.Context, params SearchParams) ([]job.Posting, error) {
	if u == nil || u.repo == nil {
		return nil, fmt.Errorf("nil usecase/repo")
	}
	params.Query = strings.TrimSpace(params.Query)
	if params.Query == "" {
		return nil, fmt.Errorf("%w: empty query", ErrInvalidInput)
	}
	if params.Limit < 0 || params.Offset < 0 {
		return nil, fmt.Errorf("%w: negative limit/offset", ErrInvalidInput)
	}
	if params.Limit == 0 {
		params.Limit = 20
	}

	key := cacheKey(params)
	if u.cache != nil {
		var cached []job.Posting
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	items, err := u.repo.Search(ctx, params.Query, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, items, u.cacheTTL); err != nil {
			u.log.Debug("search cache write skipped", zap.Error(err))
		}
	}
	return items, nil
}

func (u *SearchUsecase) Get(ctx context.Context, sequenceID int64) (job.Posting, error) {
	if u == nil || u.repo == nil {
		return job.Posting{}, fmt.Errorf("nil usecase/repo")
	}
	if sequenceID <= 0 {
		return job.Posting{}, fmt.Errorf("%w: non-positive id", ErrInvalidInput)
	}
	p, err := u.repo.GetBySequenceID(ctx, sequenceID)
	if err != nil {
		if u.notFound != nil && errors.Is(err, u.notFound) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

// Delete removes a posting administratively. The store takes the
// search document with it.
func (u *SearchUsecase) Delete(ctx context.Context, sequenceID int64) error {
	if u == nil || u.repo == nil {
		return fmt.Errorf("nil usecase/repo")
	}
	if sequenceID <= 0 {
		return fmt.Errorf("%w: non-positive id", ErrInvalidInput)
	}
	err := u.repo.Delete(ctx, sequenceID)
	if err != nil {
		if u.notFound != nil && errors.Is(err, u.notFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func cacheKey(params SearchParams) string {
	raw := fmt.Sprintf("%s|%d|%d", params.Query, params.Limit, params.Offset)
	sum := sha256.Sum256([]byte(raw))
	return "search:" + hex.EncodeToString(sum[:16])
}
