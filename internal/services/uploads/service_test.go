package uploads

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func writeCSV(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := "Call Sid,From,To,Status\nCA001,+15550001,+15550002,completed\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	svc, err := New(dir)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer svc.Close()

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Uploads directory was not created")
	}
	if svc.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", svc.Dir(), dir)
	}
}

func TestNew_ScansExistingFiles(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "calls.csv")
	writeCSV(t, dir, "more.CSV")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	svc, err := New(dir)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer svc.Close()

	if svc.Count() != 2 {
		t.Errorf("Count() = %d, want 2", svc.Count())
	}
}

func TestLatestCSV_Empty(t *testing.T) {
	svc := newTestService(t)

	if latest := svc.LatestCSV(); latest != nil {
		t.Errorf("Expected nil for empty directory, got %+v", latest)
	}
}

func TestLatestCSV_NewestByModTime(t *testing.T) {
	dir := t.TempDir()
	older := writeCSV(t, dir, "older.csv")
	newer := writeCSV(t, dir, "newer.csv")

	// Force distinct mod times so ordering does not depend on write speed.
	now := time.Now()
	if err := os.Chtimes(older, now.Add(-time.Hour), now.Add(-time.Hour)); err != nil {
		t.Fatalf("Chtimes() failed: %v", err)
	}
	if err := os.Chtimes(newer, now, now); err != nil {
		t.Fatalf("Chtimes() failed: %v", err)
	}

	svc, err := New(dir)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer svc.Close()

	latest := svc.LatestCSV()
	if latest == nil {
		t.Fatal("Expected a latest CSV")
	}
	if latest.Name != "newer.csv" {
		t.Errorf("LatestCSV() = %q, want newer.csv", latest.Name)
	}
}

func TestWatch_NewCSV(t *testing.T) {
	svc := newTestService(t)

	// Drain the initial scan event.
	<-svc.Events()

	writeCSV(t, svc.Dir(), "dropped.csv")

	timeout := time.After(2 * time.Second)
	for {
		select {
		case event := <-svc.Events():
			if event.Type == EventCSVAdded {
				if filepath.Base(event.Path) != "dropped.csv" {
					t.Errorf("Event path = %q, want dropped.csv", event.Path)
				}
				if svc.Count() != 1 {
					t.Errorf("Count() = %d, want 1", svc.Count())
				}
				return
			}
		case <-timeout:
			t.Fatal("timeout waiting for EventCSVAdded")
		}
	}
}

func TestWatch_IgnoresNonCSV(t *testing.T) {
	svc := newTestService(t)
	<-svc.Events()

	if err := os.WriteFile(filepath.Join(svc.Dir(), "notes.txt"), []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	select {
	case event := <-svc.Events():
		if event.Type == EventCSVAdded {
			t.Errorf("Unexpected EventCSVAdded for non-CSV file: %+v", event)
		}
	case <-time.After(300 * time.Millisecond):
	}
}

func TestSendEvent_Full(t *testing.T) {
	svc := newTestService(t)

	for i := 0; i < 110; i++ {
		svc.sendEvent(Event{Type: EventScanned})
	}

	if len(svc.Events()) != 100 {
		t.Errorf("expected 100 events, got %d", len(svc.Events()))
	}
}
