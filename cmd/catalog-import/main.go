package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/thraizz/tableau-server-go/internal/config"
	"github.com/thraizz/tableau-server-go/internal/game/catalog"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	truncate   = flag.Bool("truncate", false, "clear the cards table before importing")
)

const createTable = `
CREATE TABLE IF NOT EXISTS cards (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	card_type   TEXT NOT NULL,
	cost_kind   TEXT NOT NULL,
	cost_value  INTEGER NOT NULL,
	copies      INTEGER NOT NULL,
	description TEXT NOT NULL
)`

const upsertCard = `
INSERT INTO cards (id, name, card_type, cost_kind, cost_value, copies, description)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
	card_type = EXCLUDED.card_type,
	cost_kind = EXCLUDED.cost_kind,
	cost_value = EXCLUDED.cost_value,
	copies = EXCLUDED.copies,
	description = EXCLUDED.description`

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Catalog.DatabaseURL == "" {
		logger.Fatal("catalog.database_url is not set (TABLEAU_CATALOG_DATABASE_URL)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Catalog.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}
	logger.Info("database connection established")

	if _, err := pool.Exec(ctx, createTable); err != nil {
		logger.Fatal("failed to create cards table", zap.Error(err))
	}
	if *truncate {
		if _, err := pool.Exec(ctx, "TRUNCATE cards"); err != nil {
			logger.Fatal("failed to clear cards", zap.Error(err))
		}
		logger.Info("existing cards cleared")
	}

	entries := catalog.Default().Entries()
	imported, failed := importEntries(ctx, pool, entries, cfg.Catalog.BatchSize, logger)

	var total int64
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM cards").Scan(&total); err != nil {
		logger.Warn("failed to count cards", zap.Error(err))
	}
	logger.Info("import complete",
		zap.Int("imported", imported),
		zap.Int("failed", failed),
		zap.Int64("total", total),
	)
	if failed > 0 {
		os.Exit(1)
	}
}

// importEntries writes entries in batches, one transaction per batch. A
// failed batch is rolled back and counted as failed in full.
func importEntries(ctx context.Context, pool *pgxpool.Pool, entries []catalog.Entry, batchSize int, logger *zap.Logger) (imported, failed int) {
	start := time.Now()
	for i := 0; i < len(entries); i += batchSize {
		end := min(i+batchSize, len(entries))
		batch := entries[i:end]

		if err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			for _, e := range batch {
				c := e.Card
				if _, err := tx.Exec(ctx, upsertCard,
					catalog.CardID(c),
					c.Name(),
					c.Type().String(),
					c.Cost().Kind().String(),
					c.Cost().Value(),
					e.Copies,
					c.String(),
				); err != nil {
					return fmt.Errorf("insert %s: %w", c.Name(), err)
				}
			}
			return nil
		}); err != nil {
			logger.Error("batch failed", zap.Int("offset", i), zap.Error(err))
			failed += len(batch)
			continue
		}
		imported += len(batch)
		logger.Debug("batch imported", zap.Int("progress", imported), zap.Int("of", len(entries)))
	}
	logger.Info("imported catalog", zap.Duration("took", time.Since(start)))
	return imported, failed
}
