// Command seed populates the database with demo storefront content. Safe to
// run repeatedly: collections that already contain documents are skipped.
package main

import (
	"context"
	"time"

	"github.com/zrg-scripts/storefront-api/internal/infrastructure/config"
	mongodb "github.com/zrg-scripts/storefront-api/internal/infrastructure/db/mongo"
	"github.com/zrg-scripts/storefront-api/internal/infrastructure/seed"
	"github.com/zrg-scripts/storefront-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.NewScriptRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	if err := mongodb.NewBlogRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	if err := seed.New(db, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Msg("demo data seeded")
}
