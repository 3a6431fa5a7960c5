// Package database opens the relational store and applies the schema for the
// configured driver.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	"hr-intake-backend/internal/logger"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Open connects with the given driver, verifies the connection and applies
// the embedded schema. The schema uses IF NOT EXISTS throughout so it is safe
// to apply on every start.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	driver = strings.ToLower(strings.TrimSpace(driver))
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("database dsn is required")
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if driver == DriverSQLite {
		// A single writer avoids SQLITE_BUSY under concurrent submits.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", driver, err)
	}

	if err := ApplySchema(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("Database ready", "driver", driver)
	return db, nil
}

// ApplySchema runs the schema file for driver against db.
func ApplySchema(ctx context.Context, db *sql.DB, driver string) error {
	content, err := schemaFS.ReadFile("schema/" + driver + ".sql")
	if err != nil {
		return fmt.Errorf("failed to read %s schema: %w", driver, err)
	}
	logger.DatabaseCall("apply_schema", driver+".sql")
	for _, stmt := range splitStatements(string(content)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.DatabaseResult("apply_schema", 0, err)
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	logger.DatabaseResult("apply_schema", 0, nil)
	return nil
}

func splitStatements(content string) []string {
	var out []string
	for _, part := range strings.Split(content, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// PostgresDSN builds a lib/pq connection string.
func PostgresDSN(host string, port int, user, password, name, sslMode string) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslMode)
}

// SQLiteDSN builds a modernc.org/sqlite connection string for path with WAL,
// foreign keys and a busy timeout enabled.
func SQLiteDSN(path string) string {
	return path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
}
