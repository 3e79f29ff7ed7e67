package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// SetupTestDB initializes a test database connection
func SetupTestDB(t *testing.T) *TestDB {
	// Priority:
	// 1. Environment variables
	// 2. Default values

	host := getEnv("TEST_DB_HOST", "localhost")
	port := getEnv("TEST_DB_PORT", "5433")
	user := getEnv("TEST_DB_USER", "postgres")
	password := getEnv("TEST_DB_PASSWORD", "postgres")
	dbname := getEnv("TEST_DB_NAME", "curation_test")
	sslmode := getEnv("TEST_DB_SSLMODE", "disable")

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	// Retry connection with exponential backoff to wait for DB recovery.
	// The driver must be pgx: the repositories classify unique-index
	// rejections through pgconn.PgError.
	var db *sqlx.DB
	var err error
	maxRetries := 10
	retryDelay := 500 * time.Millisecond

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("pgx", connStr)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			t.Logf("Database not ready (attempt %d/%d), waiting %v...", i+1, maxRetries, retryDelay)
			time.Sleep(retryDelay)
			retryDelay *= 2 // exponential backoff
		}
	}

	if err != nil {
		t.Skipf("Test database unavailable after %d attempts: %v", maxRetries, err)
	}

	logger, _ := zap.NewDevelopment()
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TestDB{
		DB:     db,
		Logger: logger,
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// Cleanup cleans up test data
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	// Truncate tables in correct order (respecting FK constraints)
	tables := []string{
		"route_stops",
		"likes",
		"follows",
		"routes",
		"places",
	}

	for _, table := range tables {
		_, err := tdb.DB.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			// Ignore errors if table doesn't exist
			continue
		}
	}

	return nil
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
