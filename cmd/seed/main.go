package main

import (
	"context"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"hmate/config"
	"hmate/internal/logger"
	"hmate/internal/pool"
	"hmate/internal/repository"
)

// Writes the built-in question catalogue to MongoDB so the server can run
// with POOL_SOURCE=mongo.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	repo := repository.NewQuestionRepo(client.Database(cfg.MongoDB), log)

	n, err := repo.ReplaceCatalogue(ctx, pool.Default())
	if err != nil {
		log.Fatal("failed to seed question templates", zap.Error(err))
	}
	log.Info("seeded question templates", zap.Int("inserted", n), zap.String("database", cfg.MongoDB))

	counts, err := repo.CountByTier(ctx)
	if err != nil {
		log.Fatal("failed to count templates", zap.Error(err))
	}
	for _, c := range counts {
		log.Info("templates per tier", zap.String("tier", string(c.Tier)), zap.Int("count", c.Count))
	}
}
