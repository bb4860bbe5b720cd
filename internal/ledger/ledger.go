package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"phishscreen/internal/model"
)

// dbFileName is the ledger database file inside the data directory.
const dbFileName = "phishscreen.db"

// Ledger provides durable storage for reported URLs and scan history.
//
// Design decision: We use a single database file for both the report
// ledger and the history list. They share a lifecycle (local state for
// one user profile) and a single file keeps backup/restore trivial.
type Ledger struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string

	// now returns the current time. Injected for tests.
	now func() time.Time
}

// Options configures Ledger behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// performance. Recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default ledger options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Option customizes a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used for report timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// Open opens or creates a Ledger database under the specified directory.
// If CreateIfNotExists is true, the directory and database file are
// created. If false and the database doesn't exist, an error is returned.
func Open(dataDir string, opts Options, options ...Option) (*Ledger, error) {
	dbPath := filepath.Join(dataDir, dbFileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("ledger not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check ledger path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dataDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create ledger directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database: %w", err)
	}

	// SQLite only supports one writer. A single connection also
	// serializes concurrent Report calls so count increments are never
	// lost to a read-modify-write race.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	l := &Ledger{
		db:     db,
		dbPath: dbPath,
		now:    time.Now,
	}
	for _, opt := range options {
		opt(l)
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := l.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return l, nil
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (l *Ledger) createTables() error {
	schema := `
	-- Reported URLs keyed by the exact submitted string.
	-- Timestamps are integer milliseconds since the Unix epoch.
	CREATE TABLE IF NOT EXISTS reported_urls (
		url TEXT PRIMARY KEY,
		report_count INTEGER NOT NULL CHECK (report_count >= 1),
		timestamp_ms INTEGER NOT NULL
	);

	-- Scan history entries shown by the history command.
	CREATE TABLE IF NOT EXISTS scan_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scan_type TEXT NOT NULL,
		target TEXT NOT NULL,
		result TEXT NOT NULL,
		date_ms INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_date ON scan_history(date_ms);
	`

	_, err := l.db.ExecContext(context.Background(), schema)
	return err
}

// Report records a user report of the exact URL string.
// First report inserts a record with count 1; subsequent reports of the
// same string increment the count and refresh the timestamp.
func (l *Ledger) Report(ctx context.Context, url string) error {
	query := `
	INSERT INTO reported_urls (url, report_count, timestamp_ms)
	VALUES (?, 1, ?)
	ON CONFLICT(url) DO UPDATE SET
		report_count = report_count + 1,
		timestamp_ms = excluded.timestamp_ms
	`

	if _, err := l.db.ExecContext(ctx, query, url, l.now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to record report: %w", err)
	}
	return nil
}

// Lookup returns the report record for the exact URL string, or nil if
// the URL has never been reported. No normalization is applied.
func (l *Ledger) Lookup(ctx context.Context, url string) (*model.ReportRecord, error) {
	query := `SELECT url, report_count, timestamp_ms FROM reported_urls WHERE url = ?`

	var record model.ReportRecord
	var ms int64
	err := l.db.QueryRowContext(ctx, query, url).Scan(&record.URL, &record.ReportCount, &ms)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up report: %w", err)
	}

	record.Timestamp = time.UnixMilli(ms)
	return &record, nil
}

// List returns all report records ordered by URL.
// The ordering is unspecified by contract but stable within a session.
func (l *Ledger) List(ctx context.Context) ([]model.ReportRecord, error) {
	query := `SELECT url, report_count, timestamp_ms FROM reported_urls ORDER BY url`

	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var records []model.ReportRecord
	for rows.Next() {
		var record model.ReportRecord
		var ms int64
		if err := rows.Scan(&record.URL, &record.ReportCount, &ms); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		record.Timestamp = time.UnixMilli(ms)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}

	return records, nil
}

// AddHistory appends a scan history entry.
func (l *Ledger) AddHistory(ctx context.Context, entry model.ScanHistoryEntry) error {
	query := `INSERT INTO scan_history (scan_type, target, result, date_ms) VALUES (?, ?, ?, ?)`

	_, err := l.db.ExecContext(ctx, query, entry.Type, entry.Target, entry.Result, entry.Date.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record history entry: %w", err)
	}
	return nil
}

// ListHistory returns up to limit history entries, newest first.
// A non-positive limit returns all entries.
func (l *Ledger) ListHistory(ctx context.Context, limit int) ([]model.ScanHistoryEntry, error) {
	query := `SELECT scan_type, target, result, date_ms FROM scan_history ORDER BY date_ms DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := l.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []model.ScanHistoryEntry
	for rows.Next() {
		var entry model.ScanHistoryEntry
		var ms int64
		if err := rows.Scan(&entry.Type, &entry.Target, &entry.Result, &ms); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entry.Date = time.UnixMilli(ms)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return entries, nil
}
