// Command ybloader seeds directory entries and backfills embeddings.
//
// Usage:
//
//	ybloader -seed           # load the sample directory
//	ybloader -embed          # embed entries that lack a vector
//	ybloader -seed -embed    # both, in that order
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Baterdene23/yellbook/internal/config"
	dbRedis "github.com/Baterdene23/yellbook/internal/db/redis"
	logpkg "github.com/Baterdene23/yellbook/internal/logger"
	"github.com/Baterdene23/yellbook/internal/metrics"
	entryrepo "github.com/Baterdene23/yellbook/internal/repository/entry"
	openaiEmb "github.com/Baterdene23/yellbook/internal/transport/openai"
	"github.com/Baterdene23/yellbook/internal/usecase/indexer"
	"github.com/Baterdene23/yellbook/internal/version"
)

func main() {
	seed := flag.Bool("seed", false, "load the sample directory entries")
	embed := flag.Bool("embed", false, "backfill embeddings for pending entries")
	flag.Parse()

	if !*seed && !*embed {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting yellbook loader",
		zap.String("build", version.String()),
		zap.String("env", env),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	entries := entryrepo.New(store)

	if *seed {
		if err := seedEntries(ctx, entries, logger); err != nil {
			logger.Fatal("Seeding failed", zap.Error(err))
		}
	}

	if *embed {
		metrics.RegisterSearchMetrics()

		embedder := openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.Embedding.APIKey,
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
			Logger:     logger,
		})

		svc := indexer.New(entries, embedder, cfg.Embedding.RatePerMin, cfg.Embedding.RateBurst, logger)
		report, err := svc.Run(ctx)
		if err != nil {
			logger.Fatal("Backfill failed", zap.Error(err),
				zap.Int("embedded", report.Embedded), zap.Int("failed", report.Failed))
		}
	}
}
