package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Open opens (and creates if absent) the SQLite database file at path.
// Foreign key enforcement is enabled per connection via the DSN so that
// ON DELETE CASCADE applies on every pooled connection.
func Open(path string) (*sql.DB, error) {
	dsn := "file:" + path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := database.Ping(); err != nil {
		database.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return database, nil
}

// Connect opens the database configured via DB_PATH (default
// portfolio-db.sqlite3) and applies the schema on startup unless
// APPLY_SCHEMA_ON_START is set to false. Fatal on any failure, mirroring
// process startup semantics.
func Connect() *sql.DB {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "portfolio-db.sqlite3"
	}

	database, err := Open(path)
	if err != nil {
		log.Fatal("Unable to open database: ", err)
	}

	log.Println("Connected to SQLite database at", path)

	if !strings.EqualFold(os.Getenv("APPLY_SCHEMA_ON_START"), "false") {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := ApplySchema(ctx, database); err != nil {
			log.Fatal("Failed to apply schema: ", err)
		}
	}

	return database
}

// ApplySchema executes the embedded schema. All statements are idempotent
// (CREATE ... IF NOT EXISTS), so this is safe to run on every startup.
func ApplySchema(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}
