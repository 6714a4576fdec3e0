package errors

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

const sampleErrorMap = `[
	{"code": 21211, "message": "Invalid 'To' Phone Number", "log_level": "ERROR"}
]`

func newTestManager(t *testing.T) *services.Manager {
	t.Helper()
	tmpDir := t.TempDir()

	errorMapPath := filepath.Join(tmpDir, "error_map.json")
	if err := os.WriteFile(errorMapPath, []byte(sampleErrorMap), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg := &config.Config{
		AccountSID:   "ACtest",
		AuthToken:    "token",
		UploadsDir:   filepath.Join(tmpDir, "uploads"),
		ExportsDir:   filepath.Join(tmpDir, "exports"),
		ErrorMapPath: errorMapPath,
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

func typeString(t *testing.T, m *Model, s string) {
	t.Helper()
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNew(t *testing.T) {
	m := New(newTestManager(t))
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.Init() != nil {
		t.Error("Init should return nil")
	}
}

func TestModel_LookupKnownCode(t *testing.T) {
	m := New(newTestManager(t))
	m.SetSize(80, 24)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if !m.InputFocused() {
		t.Fatal("input should be focused after /")
	}

	typeString(t, m, "21211")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.InputFocused() {
		t.Error("input should blur after enter")
	}
	if !m.known {
		t.Fatal("code 21211 should be known")
	}

	view := m.View()
	if !strings.Contains(view, "21211") {
		t.Error("View should show the code")
	}
	if !strings.Contains(view, "Invalid 'To' Phone Number") {
		t.Error("View should show the message")
	}
}

func TestModel_LookupUnknownCode(t *testing.T) {
	m := New(newTestManager(t))
	m.SetSize(80, 24)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	typeString(t, m, "99999")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.known {
		t.Error("code 99999 should not be known")
	}
	if !strings.Contains(m.View(), "Unknown error code") {
		t.Error("View should flag the unknown code")
	}
}

func TestModel_LookupBadInput(t *testing.T) {
	m := New(newTestManager(t))
	m.SetSize(80, 24)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	typeString(t, m, "abc")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(m.View(), "not a numeric error code") {
		t.Error("View should reject non-numeric input")
	}
}

func TestModel_EscClears(t *testing.T) {
	m := New(newTestManager(t))

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.InputFocused() {
		t.Error("esc should blur the input")
	}

	// Clear a previous result
	m.searched = true
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.searched {
		t.Error("esc should clear the result card")
	}
}

func TestModel_ShortHelp(t *testing.T) {
	m := New(newTestManager(t))
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
}
