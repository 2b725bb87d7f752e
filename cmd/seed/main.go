package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/oksasatya/feedback-platform/config"
	pginfra "github.com/oksasatya/feedback-platform/internal/infrastructure/postgres"
	"github.com/oksasatya/feedback-platform/internal/infrastructure/seed"
	"github.com/oksasatya/feedback-platform/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2, MinConns: 1, MaxConnLife: cfg.DBMaxConnLife})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	res, err := seed.Run(ctx, pginfra.NewStore(pool), logger)
	if err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	fmt.Printf("seeded %d users and %d feedback entries (password=%s)\n", res.UsersCreated, res.FeedbackCreated, seed.DemoPassword)
}
