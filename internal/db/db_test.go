package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mark0025/Twilio-tools/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	return db
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	if db.Path() != dbPath {
		t.Errorf("Expected path %s, got %s", dbPath, db.Path())
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "nested", "test.db")

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create database with nested path: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("Nested directories were not created")
	}
}

func TestSchema_TablesExist(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	for _, table := range []string{"operations", "exports"} {
		var name string
		err := db.QueryRowContext(context.Background(),
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s does not exist: %v", table, err)
		}
	}
}

func TestRecordOperation(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	op := &models.Operation{
		Command:  "load",
		Argument: "calls.csv",
		Rows:     42,
		Duration: 150 * time.Millisecond,
	}
	if err := db.RecordOperation(op); err != nil {
		t.Fatalf("RecordOperation() failed: %v", err)
	}
	if op.ID == "" {
		t.Error("Expected generated operation ID")
	}
	if op.Timestamp.IsZero() {
		t.Error("Expected generated timestamp")
	}

	ops, err := db.RecentOperations(10)
	if err != nil {
		t.Fatalf("RecentOperations() failed: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("Expected 1 operation, got %d", len(ops))
	}
	if ops[0].Command != "load" || ops[0].Argument != "calls.csv" {
		t.Errorf("Unexpected operation: %+v", ops[0])
	}
	if ops[0].Rows != 42 {
		t.Errorf("Expected 42 rows, got %d", ops[0].Rows)
	}
	if ops[0].Duration != 150*time.Millisecond {
		t.Errorf("Expected 150ms duration, got %v", ops[0].Duration)
	}
}

func TestRecentOperations_Order(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, cmd := range []string{"load", "export", "summarize"} {
		op := &models.Operation{Command: cmd, Timestamp: base.Add(time.Duration(i) * time.Minute)}
		if err := db.RecordOperation(op); err != nil {
			t.Fatalf("RecordOperation() failed: %v", err)
		}
	}

	ops, err := db.RecentOperations(2)
	if err != nil {
		t.Fatalf("RecentOperations() failed: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("Expected 2 operations, got %d", len(ops))
	}
	if ops[0].Command != "summarize" || ops[1].Command != "export" {
		t.Errorf("Expected newest first, got %s then %s", ops[0].Command, ops[1].Command)
	}
}

func TestRecordOperation_Error(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	op := &models.Operation{Command: "load", Error: "file not found"}
	if err := db.RecordOperation(op); err != nil {
		t.Fatalf("RecordOperation() failed: %v", err)
	}

	ops, err := db.RecentOperations(1)
	if err != nil {
		t.Fatalf("RecentOperations() failed: %v", err)
	}
	if ops[0].Error != "file not found" {
		t.Errorf("Expected error string, got %q", ops[0].Error)
	}
}

func TestRecordExport(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	rec := &models.ExportRecord{Path: "/tmp/out.json", Kind: "call_log", Entries: 7}
	if err := db.RecordExport(rec); err != nil {
		t.Fatalf("RecordExport() failed: %v", err)
	}

	recs, err := db.RecentExports(5)
	if err != nil {
		t.Fatalf("RecentExports() failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("Expected 1 export, got %d", len(recs))
	}
	if recs[0].Kind != "call_log" || recs[0].Entries != 7 {
		t.Errorf("Unexpected export record: %+v", recs[0])
	}
}

func TestOperationCounts(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	for _, cmd := range []string{"load", "load", "export"} {
		if err := db.RecordOperation(&models.Operation{Command: cmd}); err != nil {
			t.Fatalf("RecordOperation() failed: %v", err)
		}
	}

	counts, err := db.OperationCounts()
	if err != nil {
		t.Fatalf("OperationCounts() failed: %v", err)
	}
	if counts["load"] != 2 || counts["export"] != 1 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}
