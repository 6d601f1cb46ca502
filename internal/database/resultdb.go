package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/pdftoc/internal/model"
)

// ResultDB provides SQLite-based storage for extraction results.
// It manages connection pooling and provides methods for CRUD operations.
//
// Design decision: We use a single database file per output directory
// rather than separate files per document. This simplifies history
// queries and backup/restore operations.
type ResultDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures ResultDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a ResultDB at the specified path.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*ResultDB, error) {
	dbPath := filepath.Join(dbDir, "pdftoc.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Build connection string
	// We use modernc.org/sqlite which uses a different connection string format.
	// When CreateIfNotExists is false, we use mode=rw to prevent creating new files.
	// When CreateIfNotExists is true, we use mode=rwc to allow creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections for writes,
	// but concurrent batch goroutines may all insert at once.
	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &ResultDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Close closes the database connection.
func (rdb *ResultDB) Close() error {
	return rdb.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (rdb *ResultDB) createTables() error {
	schema := `
	-- Results store the latest extraction per document stem
	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		stem TEXT NOT NULL,
		title TEXT NOT NULL,
		outline_json TEXT NOT NULL,
		heading_count INTEGER NOT NULL DEFAULT 0,
		degraded INTEGER NOT NULL DEFAULT 0,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(stem)
	);

	CREATE INDEX IF NOT EXISTS idx_results_stem ON results(stem);
	CREATE INDEX IF NOT EXISTS idx_results_timestamp ON results(timestamp);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveResult inserts or updates the extraction record for a document.
// Uses UPSERT so re-running a batch replaces each document's record.
func (rdb *ResultDB) SaveResult(ctx context.Context, stem string, result *model.Result) error {
	outlineJSON, err := json.Marshal(result.Outline)
	if err != nil {
		return fmt.Errorf("failed to serialize outline: %w", err)
	}

	query := `
	INSERT INTO results (stem, title, outline_json, heading_count, degraded)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(stem) DO UPDATE SET
		title = excluded.title,
		outline_json = excluded.outline_json,
		heading_count = excluded.heading_count,
		degraded = excluded.degraded,
		timestamp = CURRENT_TIMESTAMP
	`

	_, err = rdb.db.ExecContext(ctx, query,
		stem,
		result.Title,
		string(outlineJSON),
		len(result.Outline),
		boolToInt(result.Degraded),
	)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// GetResult retrieves the stored extraction record for a document stem.
// Returns (nil, nil) when no record exists.
func (rdb *ResultDB) GetResult(ctx context.Context, stem string) (*model.Result, error) {
	query := `
	SELECT title, outline_json, degraded FROM results
	WHERE stem = ?
	`

	var title, outlineJSON string
	var degraded int

	err := rdb.db.QueryRowContext(ctx, query, stem).Scan(&title, &outlineJSON, &degraded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var outline []model.OutlineEntry
	if err := json.Unmarshal([]byte(outlineJSON), &outline); err != nil {
		return nil, fmt.Errorf("failed to parse outline: %w", err)
	}

	result := model.NewResult(title, outline)
	result.Degraded = degraded != 0
	return result, nil
}

// ListStems returns the stems of all stored documents, sorted.
func (rdb *ResultDB) ListStems(ctx context.Context) ([]string, error) {
	query := `
	SELECT stem FROM results
	ORDER BY stem
	`

	rows, err := rdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stems: %w", err)
	}
	defer rows.Close()

	var stems []string
	for rows.Next() {
		var stem string
		if err := rows.Scan(&stem); err != nil {
			return nil, fmt.Errorf("failed to scan stem: %w", err)
		}
		stems = append(stems, stem)
	}

	return stems, rows.Err()
}

// ResultMetadata contains summary information about a stored result.
// This is used for displaying history without loading the full outline.
type ResultMetadata struct {
	// ID is the unique identifier of the record in the database.
	ID int64

	// Stem is the document stem the record belongs to.
	Stem string

	// Title is the inferred title.
	Title string

	// HeadingCount is the number of outline entries.
	HeadingCount int

	// Degraded reports whether the document failed processing.
	Degraded bool

	// Timestamp is when the record was last written.
	Timestamp time.Time
}

// ListResults retrieves metadata for all stored results, newest first.
// This is more efficient than GetResult when only metadata is needed.
func (rdb *ResultDB) ListResults(ctx context.Context) ([]ResultMetadata, error) {
	query := `
	SELECT id, stem, title, heading_count, degraded, timestamp
	FROM results
	ORDER BY timestamp DESC, stem
	`

	rows, err := rdb.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []ResultMetadata
	for rows.Next() {
		var meta ResultMetadata
		var degraded int
		var timestamp string

		if err := rows.Scan(&meta.ID, &meta.Stem, &meta.Title, &meta.HeadingCount, &degraded, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}

		meta.Degraded = degraded != 0
		meta.Timestamp = parseTimestamp(timestamp)
		results = append(results, meta)
	}

	return results, rows.Err()
}

// boolToInt maps a bool to the 0/1 form SQLite stores.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
