package calls

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mark0025/Twilio-tools/internal/app"
	"github.com/Mark0025/Twilio-tools/internal/config"
	"github.com/Mark0025/Twilio-tools/internal/services"
)

const sampleCSV = `Call Sid,From,To,Status,Duration,Date Created
CA001,+15550001,+15550002,completed,45,2026-08-01 10:00:00
CA002,+15550003,+15550004,no-answer,,2026-08-01 11:00:00
CA003,+15550005,+15550006,completed,120,2026-08-02 09:30:00
`

func newTestManager(t *testing.T) *services.Manager {
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
	return m
}

func newTestModel(t *testing.T) (*Model, *services.Manager, *app.State) {
	t.Helper()
	mgr := newTestManager(t)
	state := app.NewState()
	state.SetLoading("initial", false)
	m := New(state, mgr, app.NewCommands(mgr))
	m.SetSize(100, 40)
	return m, mgr, state
}

func loadSample(t *testing.T, mgr *services.Manager) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calls.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := mgr.LoadCallLog(path); err != nil {
		t.Fatalf("LoadCallLog() failed: %v", err)
	}
}

func TestNew(t *testing.T) {
	m, _, _ := newTestModel(t)
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.Init() != nil {
		t.Error("Init should return nil")
	}
	if m.InputFocused() {
		t.Error("find input should start blurred")
	}
}

func TestModel_View_Empty(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Call Log") {
		t.Error("View should show the title")
	}
	if !strings.Contains(view, "nothing loaded") {
		t.Error("View should prompt for a load when empty")
	}
}

func TestModel_CallLogLoaded(t *testing.T) {
	m, mgr, state := newTestModel(t)
	loadSample(t, mgr)
	state.SetCallLog("calls.csv", mgr.Stats())

	m.Update(app.CallLogLoadedMsg{Path: "calls.csv", Entries: 3, Stats: mgr.Stats()})

	if len(m.table.Rows()) != 3 {
		t.Fatalf("table rows = %d, want 3", len(m.table.Rows()))
	}

	view := m.View()
	if !strings.Contains(view, "CA001") {
		t.Error("View should show the first call SID")
	}
	if !strings.Contains(view, "3 calls") {
		t.Error("View should show the stats summary")
	}
}

func TestModel_FuzzyFind(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	loadSample(t, mgr)
	m.Update(app.CallLogLoadedMsg{Entries: 3, Stats: mgr.Stats()})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if !m.InputFocused() {
		t.Fatal("find input should focus after /")
	}

	for _, r := range "+15550001" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !m.filtered {
		t.Error("model should be filtered after a find")
	}
	if len(m.table.Rows()) == 0 {
		t.Error("find should keep matching rows")
	}

	// esc restores the full table
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.filtered {
		t.Error("esc should clear the filter")
	}
	if len(m.table.Rows()) != 3 {
		t.Errorf("table rows = %d, want 3 after clearing", len(m.table.Rows()))
	}
}

func TestModel_ChartToggle(t *testing.T) {
	m, _, _ := newTestModel(t)

	if !m.showChart {
		t.Fatal("chart should start visible")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'v'}})
	if m.showChart {
		t.Error("v should hide the chart")
	}
}

func TestModel_ExportKeysReturnCommands(t *testing.T) {
	m, mgr, _ := newTestModel(t)
	loadSample(t, mgr)
	m.Update(app.CallLogLoadedMsg{Entries: 3, Stats: mgr.Stats()})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	if cmd == nil {
		t.Error("e should return an export command")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd == nil {
		t.Error("x should return an enriched export command")
	}
}

func TestModel_ShortHelp(t *testing.T) {
	m, _, _ := newTestModel(t)
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
}
