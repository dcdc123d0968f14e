// golca serves the LCA prediction API. Trained artifacts are loaded once at
// startup; without them the engine still answers every request through the
// rule-based fallback scorer.
package main

import (
	"context"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"golca/adapters/artifacts"
	"golca/adapters/postgres"
	"golca/api"
	"golca/internal"
	"golca/internal/config"
	"golca/internal/engine"
	"golca/ports"
)

func main() {
	_ = godotenv.Load()
	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	store := artifacts.NewStore(cfg.Paths.ModelDir, logger)
	bundle, err := store.Load()
	if err != nil {
		logger.Warn("artifact bundle incomplete, degrading where needed: %v", err)
	}
	eng := engine.New(bundle, logger)

	history := setupHistory(cfg, logger)

	server := api.NewServer(eng, history, logger)
	if err := server.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// setupHistory connects the optional prediction-history store. Any failure
// here disables history rather than stopping the service.
func setupHistory(cfg *config.Config, logger *internal.Logger) ports.PredictionRepository {
	if cfg.Database.URL == "" {
		logger.Info("DATABASE_URL not set, prediction history disabled")
		return nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		logger.Error("database connection failed, prediction history disabled: %v", err)
		return nil
	}
	db.SetMaxOpenConns(cfg.Database.MaxConn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Error("schema setup failed, prediction history disabled: %v", err)
		return nil
	}

	return postgres.NewPredictionRepository(db)
}
