// cmd/seeder/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"
)

// catalogEntry describes one sku to seed along with its starting stock.
type catalogEntry struct {
	SkuID       uuid.UUID
	BasePrice   decimal.Decimal
	ValidCount  int
	DefectCount int
	IsHidden    bool
}

// CatalogLoader reads seed catalogs from Excel files.
type CatalogLoader struct {
	logger *slog.Logger
}

func NewCatalogLoader(logger *slog.Logger) *CatalogLoader {
	return &CatalogLoader{logger: logger}
}

// LoadCatalog reads sku rows from an Excel file. Expected columns:
// sku_id (optional, generated when blank), base_price, valid_count,
// defect_count, is_hidden.
func (l *CatalogLoader) LoadCatalog(path string) ([]catalogEntry, error) {
	file, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in catalog file")
	}
	sheet := file.Sheets[0]

	var entries []catalogEntry
	rowIdx := 0
	err = sheet.ForEachRow(func(r *xlsx.Row) error {
		// Skip header
		if rowIdx == 0 {
			rowIdx++
			return nil
		}
		rowIdx++

		get := func(i int) string {
			c := r.GetCell(i)
			if c == nil {
				return ""
			}
			if s, err := c.FormattedValue(); err == nil {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(c.String())
		}

		priceStr := get(1)
		if priceStr == "" {
			return nil
		}

		entry := catalogEntry{SkuID: uuid.New()}
		if idStr := get(0); idStr != "" {
			id, err := uuid.Parse(idStr)
			if err != nil {
				l.logger.Warn("skipping row with invalid sku id",
					slog.Int("row", rowIdx-1),
					slog.String("sku_id", idStr))
				return nil
			}
			entry.SkuID = id
		}

		price, err := decimal.NewFromString(priceStr)
		if err != nil || price.IsNegative() {
			l.logger.Warn("skipping row with invalid base price",
				slog.Int("row", rowIdx-1),
				slog.String("base_price", priceStr))
			return nil
		}
		entry.BasePrice = price
		entry.ValidCount, _ = strconv.Atoi(get(2))
		entry.DefectCount, _ = strconv.Atoi(get(3))
		entry.IsHidden = strings.EqualFold(get(4), "yes") || strings.EqualFold(get(4), "true")

		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate catalog rows: %w", err)
	}

	l.logger.Info("loaded catalog", slog.Int("skus", len(entries)))
	return entries, nil
}

// generateCatalog produces a synthetic demo catalog when no file is given.
func generateCatalog(count int, rng *rand.Rand) []catalogEntry {
	entries := make([]catalogEntry, 0, count)
	for i := 0; i < count; i++ {
		price := decimal.NewFromInt(int64(rng.Intn(9900) + 100)).Div(decimal.NewFromInt(10))
		entries = append(entries, catalogEntry{
			SkuID:       uuid.New(),
			BasePrice:   price.Round(2),
			ValidCount:  rng.Intn(8) + 1,
			DefectCount: rng.Intn(3),
			IsHidden:    rng.Intn(10) == 0,
		})
	}
	return entries
}

// Seeder writes catalog entries into the database.
type Seeder struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewSeeder(db *pgxpool.Pool, logger *slog.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// SeedCatalog inserts skus with their items and stock records in one
// transaction. Existing skus are left untouched.
func (s *Seeder) SeedCatalog(ctx context.Context, entries []catalogEntry) (int, int, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	itemCount := 0

	for _, entry := range entries {
		totalItems := entry.ValidCount + entry.DefectCount
		batch.Queue(`
			INSERT INTO skus (id, base_price, actual_price, count, is_hidden)
			VALUES ($1, $2, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`,
			entry.SkuID, entry.BasePrice, totalItems, entry.IsHidden,
		)

		queueItem := func(status string) {
			itemID := uuid.New()
			batch.Queue(`INSERT INTO items (id, sku_id) VALUES ($1, $2)`,
				itemID, entry.SkuID)
			batch.Queue(`INSERT INTO stocks (item_id, status) VALUES ($1, $2)`,
				itemID, status)
			itemCount++
		}
		for i := 0; i < entry.ValidCount; i++ {
			queueItem("Valid")
		}
		for i := 0; i < entry.DefectCount; i++ {
			queueItem("Defect")
		}
	}

	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, 0, fmt.Errorf("failed to insert seed row: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, 0, fmt.Errorf("failed to close batch results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.logger.Info("seeded catalog",
		slog.Int("skus", len(entries)),
		slog.Int("items", itemCount))
	return len(entries), itemCount, nil
}

func main() {
	var (
		catalogFile = flag.String("catalog", "", "Excel file with sku catalog (generated when empty)")
		skuCount    = flag.Int("skus", 50, "Number of skus to generate when no catalog file is given")
		seed        = flag.Int64("seed", 1, "Random seed for generated catalogs")
		logLevel    = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		dryRun      = flag.Bool("dry-run", false, "Preview changes without modifying database")
	)
	flag.Parse()

	var slogLevel slog.Level
	switch *logLevel {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
	slog.SetDefault(logger)

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "marketplace"),
		getEnv("DB_PASSWORD", "marketplace_dev_2025"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "marketplace_backoffice"),
		getEnv("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()

	var entries []catalogEntry
	if *catalogFile != "" {
		loader := NewCatalogLoader(logger)
		var err error
		entries, err = loader.LoadCatalog(*catalogFile)
		if err != nil {
			logger.Error("failed to load catalog", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		entries = generateCatalog(*skuCount, rand.New(rand.NewSource(*seed)))
		logger.Info("generated demo catalog", slog.Int("skus", len(entries)))
	}

	if len(entries) == 0 {
		logger.Warn("nothing to seed")
		return
	}

	if *dryRun {
		totalItems := 0
		for _, e := range entries {
			totalItems += e.ValidCount + e.DefectCount
		}
		fmt.Printf("[DRY RUN] Would seed %d skus with %d items\n", len(entries), totalItems)
		return
	}

	db, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	seeder := NewSeeder(db, logger)
	skus, items, err := seeder.SeedCatalog(ctx, entries)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("SEEDING SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Skus Created:  %d\n", skus)
	fmt.Printf("Items Created: %d\n", items)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
