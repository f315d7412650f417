package app

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jobscout/internal/config"
	"jobscout/internal/database"
	"jobscout/internal/database/sqlite"
	"jobscout/internal/infrastructure/cache"
	"jobscout/internal/logger"
	"jobscout/internal/repository"
	"jobscout/internal/usecase"
)

// Container owns the shared process dependencies. Both binaries build
// one and pick the pieces they need from it.
type Container struct {
	Config config.Config
	Log    *zap.Logger

	DB    database.DB
	Cache *cache.Redis

	Postings *repository.PostingRepository
	Runs     *repository.ScrapeRunRepository
	Search   *usecase.SearchUsecase

	logCloser io.Closer
}

func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	log, logCloser, err := logger.New(level, cfg.Log.FilePath)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := sqlite.Connect(ctx, cfg.Store)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	redisCache := cache.NewRedis(cfg.Redis, log)

	postings := repository.NewPostingRepository(db)
	runs := repository.NewScrapeRunRepository(db)
	search := usecase.NewSearchUsecase(postings, repository.ErrNotFound, redisCache, log)

	return &Container{
		Config:    cfg,
		Log:       log,
		DB:        db,
		Cache:     redisCache,
		Postings:  postings,
		Runs:      runs,
		Search:    search,
		logCloser: logCloser,
	}, nil
}

// Close releases everything the container opened, in reverse order.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		_ = c.DB.Close()
	}
	if c.Log != nil {
		_ = c.Log.Sync()
	}
	if c.logCloser != nil {
		_ = c.logCloser.Close()
	}
}
