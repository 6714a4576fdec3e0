package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Mark0025/Twilio-tools/internal/models"
)

const timeFormat = "2006-01-02 15:04:05"

// RecordOperation logs one executed command to the audit database.
func (db *DB) RecordOperation(op *models.Operation) error {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	timestamp := op.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
		op.Timestamp = timestamp
	}

	query := `
		INSERT INTO operations (id, timestamp, command, argument, rows, duration_ms, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(context.Background(), query,
		op.ID,
		timestamp.UTC().Format(timeFormat),
		op.Command,
		nullString(op.Argument),
		op.Rows,
		op.Duration.Milliseconds(),
		nullString(op.Error),
	)
	if err != nil {
		return fmt.Errorf("failed to record operation: %w", err)
	}
	return nil
}

// RecentOperations returns the most recent operations, newest first.
func (db *DB) RecentOperations(limit int) ([]models.Operation, error) {
	query := `
		SELECT id, timestamp, command, argument, rows, duration_ms, error
		FROM operations
		ORDER BY timestamp DESC
		LIMIT ?
	`

	rows, err := db.QueryContext(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent operations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ops []models.Operation
	for rows.Next() {
		var op models.Operation
		var ts string
		var argument, errStr sql.NullString
		var durationMs int64

		if err := rows.Scan(&op.ID, &ts, &op.Command, &argument, &op.Rows, &durationMs, &errStr); err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}

		op.Timestamp, _ = time.Parse(timeFormat, ts)
		op.Argument = argument.String
		op.Duration = time.Duration(durationMs) * time.Millisecond
		op.Error = errStr.String
		ops = append(ops, op)
	}

	return ops, rows.Err()
}

// RecordExport logs one file export to the audit database.
func (db *DB) RecordExport(rec *models.ExportRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	timestamp := rec.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
		rec.Timestamp = timestamp
	}

	query := `
		INSERT INTO exports (id, timestamp, path, kind, entries)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(context.Background(), query,
		rec.ID,
		timestamp.UTC().Format(timeFormat),
		rec.Path,
		rec.Kind,
		rec.Entries,
	)
	if err != nil {
		return fmt.Errorf("failed to record export: %w", err)
	}
	return nil
}

// RecentExports returns the most recent exports, newest first.
func (db *DB) RecentExports(limit int) ([]models.ExportRecord, error) {
	query := `
		SELECT id, timestamp, path, kind, entries
		FROM exports
		ORDER BY timestamp DESC
		LIMIT ?
	`

	rows, err := db.QueryContext(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent exports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var recs []models.ExportRecord
	for rows.Next() {
		var rec models.ExportRecord
		var ts string

		if err := rows.Scan(&rec.ID, &ts, &rec.Path, &rec.Kind, &rec.Entries); err != nil {
			return nil, fmt.Errorf("failed to scan export: %w", err)
		}

		rec.Timestamp, _ = time.Parse(timeFormat, ts)
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

// OperationCounts returns how many times each command was executed.
func (db *DB) OperationCounts() (map[string]int, error) {
	query := `SELECT command, COUNT(*) FROM operations GROUP BY command`

	rows, err := db.QueryContext(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("failed to query operation counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var command string
		var count int
		if err := rows.Scan(&command, &count); err != nil {
			return nil, fmt.Errorf("failed to scan operation count: %w", err)
		}
		counts[command] = count
	}

	return counts, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
