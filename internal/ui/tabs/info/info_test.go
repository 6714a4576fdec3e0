package info

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mark0025/Twilio-tools/internal/config"
	"github.com/Mark0025/Twilio-tools/internal/services"
)

const sampleCSV = `Call Sid,From,To,Status,Duration,Date Created
CA001,+15550001,+15550002,completed,45,2026-08-01 10:00:00
`

func newTestManager(t *testing.T) (*services.Manager, *config.Config) {
	t.Helper()
	tmpDir := t.TempDir()

	cfg := &config.Config{
		AccountSID:   "ACtest",
		AuthToken:    "token",
		UploadsDir:   filepath.Join(tmpDir, "uploads"),
		ExportsDir:   filepath.Join(tmpDir, "exports"),
		ErrorMapPath: filepath.Join(tmpDir, "error_map.json"),
		DatabasePath: filepath.Join(tmpDir, "audit.db"),
		HTTPTimeout:  5 * time.Second,
		PageLimit:    200,
	}

	m, err := services.NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager() failed: %v", err)
	}
	m.SetNotifications(false)
	t.Cleanup(func() { _ = m.Close() })
	return m, cfg
}

func TestNew(t *testing.T) {
	mgr, cfg := newTestManager(t)
	m := New(mgr, cfg)
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.Init() != nil {
		t.Error("Init should return nil")
	}
}

func TestModel_View(t *testing.T) {
	mgr, cfg := newTestManager(t)
	m := New(mgr, cfg)
	m.SetSize(100, 40)
	m.Init()

	view := m.View()
	if !strings.Contains(view, "Configuration") {
		t.Error("View should show the configuration card")
	}
	if !strings.Contains(view, "ACtest") {
		t.Error("View should show the account SID")
	}
	if !strings.Contains(view, "About") {
		t.Error("View should show the about card")
	}
}

func TestModel_AuditHistory(t *testing.T) {
	mgr, cfg := newTestManager(t)

	path := filepath.Join(t.TempDir(), "calls.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := mgr.LoadCallLog(path); err != nil {
		t.Fatalf("LoadCallLog() failed: %v", err)
	}

	m := New(mgr, cfg)
	m.SetSize(100, 40)
	m.Init()

	if len(m.operations) == 0 {
		t.Fatal("audit history should contain the load operation")
	}
	if m.operations[0].Command != "load" {
		t.Errorf("Command = %q, want load", m.operations[0].Command)
	}

	view := m.View()
	if !strings.Contains(view, "load") {
		t.Error("View should show the audited operation")
	}
}

func TestModel_RefreshKey(t *testing.T) {
	mgr, cfg := newTestManager(t)
	m := New(mgr, cfg)
	m.SetSize(100, 40)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if updated == nil {
		t.Error("Update returned nil model")
	}
}

func TestModel_ShortHelp(t *testing.T) {
	mgr, cfg := newTestManager(t)
	m := New(mgr, cfg)
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
}
