package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"jobscout/internal/app"
	"jobscout/internal/config"
	"jobscout/internal/scheduler"
	"jobscout/internal/scraper"
)

func main() {
	configPath := flag.String("config", "crawl.yaml", "path of the crawl config file")
	schedule := flag.Bool("schedule", false, "keep running and re-crawl on the configured interval")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	container, err := app.NewContainer(ctx)
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}
	defer container.Close()

	crawl, err := config.LoadCrawl(*configPath)
	if err != nil {
		container.Log.Fatal("load crawl config", zap.Error(err))
	}

	sessions, err := scraper.NewSessionFactory(crawl, container.Config.Session.CookiesFile, container.Log)
	if err != nil {
		container.Log.Fatal("build session factory", zap.Error(err))
	}

	runner, err := scraper.NewRunner(sessions, container.Postings, container.Runs, crawl, container.Log)
	if err != nil {
		container.Log.Fatal("build runner", zap.Error(err))
	}

	if *schedule {
		sched, err := scheduler.New(runner, crawl.ScheduleHours, container.Log)
		if err != nil {
			container.Log.Fatal("build scheduler", zap.Error(err))
		}
		if err := sched.Start(ctx); err != nil {
			container.Log.Fatal("start scheduler", zap.Error(err))
		}
		<-ctx.Done()
		sched.Stop()
		return
	}

	summary, err := runner.RunOnce(ctx)
	if err != nil {
		container.Log.Fatal("crawl failed", zap.Error(err))
	}
	container.Log.Info("crawl finished",
		zap.Int("attempted", summary.Attempted),
		zap.Int("inserted", summary.Inserted),
		zap.Int("skipped", summary.Skipped),
		zap.Duration("elapsed", summary.Elapsed),
	)
}
