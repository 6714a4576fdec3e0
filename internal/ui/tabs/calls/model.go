// Package calls provides the call log tab.
package calls

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mark0025/Twilio-tools/internal/app"
	"github.com/Mark0025/Twilio-tools/internal/calllog"
	"github.com/Mark0025/Twilio-tools/internal/services"
	"github.com/Mark0025/Twilio-tools/internal/ui/styles"
)

// keyMap defines the key bindings specific to the calls tab.
type keyMap struct {
	LoadLatest key.Binding
	Export     key.Binding
	Enrich     key.Binding
	Find       key.Binding
	Chart      key.Binding
	Clear      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		LoadLatest: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "load newest CSV"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export JSON"),
		),
		Enrich: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export enriched"),
		),
		Find: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "fuzzy find"),
		),
		Chart: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "toggle volume chart"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
	}
}

// Model represents the calls tab state.
type Model struct {
	state     *app.State
	mgr       *services.Manager
	cmds      *app.Commands
	table     table.Model
	findInput textinput.Model
	keys      keyMap

	width  int
	height int

	finding   bool
	filtered  bool
	showChart bool
	lastQuery string
}

// New creates a new calls tab model.
func New(state *app.State, mgr *services.Manager, cmds *app.Commands) *Model {
	findInput := textinput.New()
	findInput.Placeholder = "number or SID fragment..."
	findInput.CharLimit = 60
	findInput.Width = 34

	columns := []table.Column{
		{Title: "Call Sid", Width: 20},
		{Title: "From", Width: 15},
		{Title: "To", Width: 15},
		{Title: "Status", Width: 12},
		{Title: "Duration", Width: 8},
		{Title: "Date", Width: 19},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Subtle).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.TextPrimary).
		Background(styles.BgAccent).
		Bold(true)
	t.SetStyles(s)

	return &Model{
		state:     state,
		mgr:       mgr,
		cmds:      cmds,
		table:     t,
		findInput: findInput,
		keys:      defaultKeyMap(),
		showChart: true,
	}
}

// Init initializes the calls tab.
func (m *Model) Init() tea.Cmd {
	return nil
}

// InputFocused reports whether the fuzzy find input is capturing keys.
func (m *Model) InputFocused() bool {
	return m.finding
}

// Update handles messages for the calls tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.finding {
			return m.updateFindInput(msg)
		}

		switch {
		case key.Matches(msg, m.keys.LoadLatest):
			return m, m.cmds.LoadLatest()

		case key.Matches(msg, m.keys.Export):
			return m, m.cmds.ExportCallLog(m.exportPath("call_log"))

		case key.Matches(msg, m.keys.Enrich):
			return m, m.cmds.ExportEnriched(m.exportPath("call_log_enriched"))

		case key.Matches(msg, m.keys.Find):
			m.finding = true
			m.findInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Chart):
			m.showChart = !m.showChart

		case key.Matches(msg, m.keys.Clear):
			if m.filtered {
				m.filtered = false
				m.lastQuery = ""
				m.setRows(m.mgr.Entries())
			}

		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}

	case app.CallLogLoadedMsg:
		if msg.Error == nil {
			m.filtered = false
			m.lastQuery = ""
			m.setRows(m.mgr.Entries())
		}
	}

	return m, tea.Batch(cmds...)
}

// updateFindInput routes keys to the fuzzy find input.
func (m *Model) updateFindInput(msg tea.KeyMsg) (app.Tab, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.finding = false
		m.findInput.Blur()
		m.findInput.SetValue("")
		return m, nil

	case "enter":
		query := m.findInput.Value()
		m.finding = false
		m.findInput.Blur()
		m.findInput.SetValue("")
		if query == "" {
			return m, nil
		}

		matches := m.mgr.FuzzyFind(query, calllog.ColFrom, 3)
		m.filtered = true
		m.lastQuery = query
		m.setRows(matches)
		if len(matches) == 0 {
			return m, m.cmds.NotifyInfo(fmt.Sprintf("No calls matching %q", query))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.findInput, cmd = m.findInput.Update(msg)
	return m, cmd
}

// setRows replaces the table contents with the given entries.
func (m *Model) setRows(entries []calllog.Entry) {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			e.CallSID,
			e.From,
			e.To,
			e.Status,
			fmt.Sprintf("%d", e.Duration),
			e.DateCreated,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// exportPath builds a timestamped path under the exports directory.
func (m *Model) exportPath(prefix string) string {
	name := fmt.Sprintf("%s_%s.json", prefix, time.Now().Format("20060102_150405"))
	return filepath.Join(m.mgr.Config().ExportsDir, name)
}

// SetSize sets the available size for the calls tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	tableHeight := height - 14
	if tableHeight < 4 {
		tableHeight = 4
	}
	m.table.SetHeight(tableHeight)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.LoadLatest,
		m.keys.Export,
		m.keys.Enrich,
		m.keys.Find,
		m.keys.Chart,
	}
}
