// Package errors provides the error-code lookup tab.
package errors

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mark0025/Twilio-tools/internal/app"
	"github.com/Mark0025/Twilio-tools/internal/errormap"
	"github.com/Mark0025/Twilio-tools/internal/services"
)

// keyMap defines the key bindings specific to the errors tab.
type keyMap struct {
	Lookup key.Binding
	Clear  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Lookup: key.NewBinding(
			key.WithKeys("/", "enter"),
			key.WithHelp("/", "look up code"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
	}
}

// Model represents the errors tab state.
type Model struct {
	mgr       *services.Manager
	codeInput textinput.Model
	keys      keyMap

	width  int
	height int

	typing   bool
	searched bool
	code     int
	info     errormap.Info
	known    bool
	badInput string
}

// New creates a new errors tab model.
func New(mgr *services.Manager) *Model {
	codeInput := textinput.New()
	codeInput.Placeholder = "21211"
	codeInput.CharLimit = 10
	codeInput.Width = 16

	return &Model{
		mgr:       mgr,
		codeInput: codeInput,
		keys:      defaultKeyMap(),
	}
}

// Init initializes the errors tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// InputFocused reports whether the code input is capturing keys.
func (m *Model) InputFocused() bool {
	return m.typing
}

// Update handles messages for the errors tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.typing {
		switch keyMsg.String() {
		case "esc":
			m.typing = false
			m.codeInput.Blur()
			m.codeInput.SetValue("")
			return m, nil

		case "enter":
			raw := strings.TrimSpace(m.codeInput.Value())
			m.typing = false
			m.codeInput.Blur()
			m.codeInput.SetValue("")
			if raw == "" {
				return m, nil
			}

			code, err := strconv.Atoi(raw)
			if err != nil {
				m.searched = true
				m.known = false
				m.badInput = raw
				return m, nil
			}

			m.searched = true
			m.badInput = ""
			m.code = code
			m.info, m.known = m.mgr.LookupError(code)
			return m, nil
		}

		var cmd tea.Cmd
		m.codeInput, cmd = m.codeInput.Update(keyMsg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Lookup):
		m.typing = true
		m.codeInput.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, m.keys.Clear):
		m.searched = false
		m.badInput = ""
	}

	return m, nil
}

// SetSize sets the available size for the errors tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.Lookup,
		m.keys.Clear,
	}
}
