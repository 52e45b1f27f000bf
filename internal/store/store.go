package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"conform/internal/config"
	"conform/internal/frames"
	"conform/internal/manifest"
)

// Store persists work-order manifests, merged frame records, and run
// bookkeeping in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the database and verifies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Paths.Database)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: cfg.Paths.Database}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// InsertManifest persists one parsed work order together with its
// ordered location pairs.
func (s *Store) InsertManifest(ctx context.Context, entry manifest.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin manifest tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO manifest_entries (producer, operator, job, notes, created_at)
         VALUES (?, ?, ?, ?, ?)`,
		entry.Producer, entry.Operator, entry.Job, entry.Notes, timestamp())
	if err != nil {
		return fmt.Errorf("insert manifest entry: %w", err)
	}
	manifestID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("manifest entry id: %w", err)
	}

	for position, location := range entry.Locations {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO manifest_locations (manifest_id, position, stripped_key, full_path)
             VALUES (?, ?, ?, ?)`,
			manifestID, position, location.Stripped, location.Full); err != nil {
			return fmt.Errorf("insert manifest location: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit manifest: %w", err)
	}
	return nil
}

// ManifestMetadata returns the first ingested work order with its
// locations, or nil when nothing has been ingested.
func (s *Store) ManifestMetadata(ctx context.Context) (*manifest.Entry, error) {
	var entry manifest.Entry
	var manifestID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id, producer, operator, job, notes
         FROM manifest_entries ORDER BY id LIMIT 1`,
	).Scan(&manifestID, &entry.Producer, &entry.Operator, &entry.Job, &entry.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query manifest metadata: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT stripped_key, full_path FROM manifest_locations
         WHERE manifest_id = ? ORDER BY position`, manifestID)
	if err != nil {
		return nil, fmt.Errorf("query manifest locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var location manifest.Location
		if err := rows.Scan(&location.Stripped, &location.Full); err != nil {
			return nil, fmt.Errorf("scan manifest location: %w", err)
		}
		entry.Locations = append(entry.Locations, location)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate manifest locations: %w", err)
	}
	return &entry, nil
}

// InsertFrameRecord appends one merged frame record.
func (s *Store) InsertFrameRecord(ctx context.Context, record frames.Record) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO frame_records (location, frame_spec, created_at) VALUES (?, ?, ?)`,
		record.Location, record.FrameSpec, timestamp()); err != nil {
		return fmt.Errorf("insert frame record: %w", err)
	}
	return nil
}

// AllFrameRecords returns every stored frame record in insertion order.
func (s *Store) AllFrameRecords(ctx context.Context) ([]frames.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, location, frame_spec FROM frame_records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query frame records: %w", err)
	}
	defer rows.Close()

	var records []frames.Record
	for rows.Next() {
		var record frames.Record
		if err := rows.Scan(&record.ID, &record.Location, &record.FrameSpec); err != nil {
			return nil, fmt.Errorf("scan frame record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate frame records: %w", err)
	}
	return records, nil
}

// ClearFrameRecords removes all stored frame records so an export can
// be re-ingested from scratch.
func (s *Store) ClearFrameRecords(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM frame_records`); err != nil {
		return fmt.Errorf("clear frame records: %w", err)
	}
	return nil
}

// RecordRun persists bookkeeping for one pipeline run.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	var finished any
	if !run.FinishedAt.IsZero() {
		finished = run.FinishedAt.UTC().Format(time.RFC3339Nano)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO pipeline_runs (run_id, stage, record_count, started_at, finished_at)
         VALUES (?, ?, ?, ?, ?)`,
		run.RunID, run.Stage, run.RecordCount,
		run.StartedAt.UTC().Format(time.RFC3339Nano), finished); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// LastRun returns the most recently recorded run, or nil when the
// database has never seen one.
func (s *Store) LastRun(ctx context.Context) (*Run, error) {
	var run Run
	var started string
	var finished sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT run_id, stage, record_count, started_at, finished_at
         FROM pipeline_runs ORDER BY id DESC LIMIT 1`,
	).Scan(&run.RunID, &run.Stage, &run.RecordCount, &started, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last run: %w", err)
	}

	if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, fmt.Errorf("parse run start time: %w", err)
	}
	if finished.Valid {
		if run.FinishedAt, err = time.Parse(time.RFC3339Nano, finished.String); err != nil {
			return nil, fmt.Errorf("parse run finish time: %w", err)
		}
	}
	return &run, nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
