package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"jobscout/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	container, err := app.NewContainer(ctx)
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}
	defer container.Close()

	httpApp := app.NewHTTPApp(container)
	addr := container.ListenAddr()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpApp.Listen(addr)
	}()
	container.Log.Info("http server listening", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		container.Log.Info("shutdown signal received")
		if err := httpApp.Shutdown(); err != nil {
			container.Log.Error("shutdown failed", zap.Error(err))
		}
	case err := <-errCh:
		if err != nil {
			container.Log.Fatal("server stopped", zap.Error(err))
		}
	}
}
