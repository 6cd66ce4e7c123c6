package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/abinsights/analytics-service/config"
	"github.com/abinsights/analytics-service/internal/db"
	"github.com/abinsights/analytics-service/pkg/database"
	"github.com/abinsights/analytics-service/pkg/logger"
)

// The loader appends CSV rows straight into the store, one transaction per
// file. Table name comes from the file name, column names from the header
// row. Ids travel in the CSV; the API's max+1 assignment continues from the
// highest loaded id afterwards.

var knownTables = map[string]bool{
	"customers":     true,
	"products":      true,
	"landing_pages": true,
	"ab_testing":    true,
	"results":       true,
}

var columnName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func main() {
	dataDir := flag.String("data", "data", "directory containing <table>.csv files")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.LoadEnv()

	appLogger := logger.New(&logger.Config{
		IsDevelopment: true,
		Encoding:      "console",
		Level:         "info",
	})
	defer appLogger.Sync()

	dbConn, err := database.New(&database.Config{URL: cfg.Database.URL})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer dbConn.Close()

	if err := db.CreateSchema(dbConn); err != nil {
		appLogger.Fatal("Could not create schema", zap.Error(err))
	}

	files, err := filepath.Glob(filepath.Join(*dataDir, "*.csv"))
	if err != nil {
		appLogger.Fatal("Could not list data directory", zap.Error(err))
	}

	ctx := context.Background()
	for _, path := range files {
		table := strings.TrimSuffix(filepath.Base(path), ".csv")
		if err := loadCSV(ctx, dbConn, table, path); err != nil {
			appLogger.Error("Failed to ingest table",
				zap.String("table", table), zap.Error(err))
			continue
		}
		appLogger.Info("Loaded data for table",
			zap.String("table", table), zap.String("file", path))
	}
	appLogger.Info("All tables have been populated.")
}

func loadCSV(ctx context.Context, dbConn *sqlx.DB, table, path string) error {
	if !knownTables[table] {
		return fmt.Errorf("unknown table %q", table)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return err
	}
	if len(records) < 2 {
		return nil // header only or empty, nothing to load
	}

	columns := records[0]
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		columns[i] = strings.ToLower(col)
		if !columnName.MatchString(columns[i]) {
			return fmt.Errorf("invalid column name %q", col)
		}
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	return database.WithTx(ctx, dbConn, func(tx *sqlx.Tx) error {
		for _, record := range records[1:] {
			if len(record) != len(columns) {
				return fmt.Errorf("row has %d fields, want %d", len(record), len(columns))
			}
			args := make([]interface{}, len(record))
			for i, v := range record {
				args[i] = v
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return err
			}
		}
		return nil
	})
}
