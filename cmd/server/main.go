// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"notion-relay/internal/common/config"
	"notion-relay/internal/common/database"
	"notion-relay/internal/common/logger"
	"notion-relay/internal/common/observability"
	"notion-relay/internal/discord"
	"notion-relay/internal/notion"
	"notion-relay/internal/relay"
	"notion-relay/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting notion-relay...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Rebuild the logger with the configured level/format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis (dedup store) with retry ---
	redisClient, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Fatal("redis client init failed", zap.Error(err))
	}
	defer redisClient.Close()

	err = retryWithBackoff(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return redisClient.Ping(pingCtx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis unreachable", zap.Error(err))
	}

	notionClient := notion.NewClient(cfg.Notion)
	notifier := discord.NewWebhook(cfg.Discord, log)
	dedupStore := relay.NewRedisDedupStore(redisClient)

	pipeline := relay.NewPipeline(cfg, notionClient, notifier, dedupStore, log, obs)
	srv := server.New(cfg, pipeline, log)

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		zapLog.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zapLog.Error("server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Start(); err != nil {
		zapLog.Fatal("server failed", zap.Error(err))
	}

	zapLog.Info("notion-relay stopped")
}
