// Package trusthub provides the compliance tab.
package trusthub

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Mark0025/Twilio-tools/internal/app"
	"github.com/Mark0025/Twilio-tools/internal/services/trusthub"
	"github.com/Mark0025/Twilio-tools/internal/ui/components"
	"github.com/Mark0025/Twilio-tools/internal/ui/styles"
)

// keyMap defines the key bindings specific to the trusthub tab.
type keyMap struct {
	Refresh key.Binding
	Search  key.Binding
	Export  key.Binding
	Clear   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "fetch profiles"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search subaccounts"),
		),
		Export: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "export profiles"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
	}
}

// Model represents the trusthub tab state.
type Model struct {
	state       *app.State
	cmds        *app.Commands
	table       table.Model
	searchInput textinput.Model
	healthBar   components.HealthBar
	spinner     components.LoadingSpinner
	keys        keyMap

	width  int
	height int

	searching bool
	loading   bool
	fetched   bool
	matches   []trusthub.SubaccountMatch
	lastQuery string
}

// New creates a new trusthub tab model.
func New(state *app.State, cmds *app.Commands) *Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "friendly name fragment, e.g. 239"
	searchInput.CharLimit = 60
	searchInput.Width = 34

	columns := []table.Column{
		{Title: "SID", Width: 22},
		{Title: "Friendly Name", Width: 28},
		{Title: "Status", Width: 18},
		{Title: "Email", Width: 24},
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
		state:       state,
		cmds:        cmds,
		table:       t,
		searchInput: searchInput,
		healthBar:   components.NewHealthBar(30),
		spinner:     components.NewSpinner("Fetching profiles..."),
		keys:        defaultKeyMap(),
	}
}

// Init initializes the trusthub tab.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// InputFocused reports whether the search input is capturing keys.
func (m *Model) InputFocused() bool {
	return m.searching
}

// Update handles messages for the trusthub tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearchInput(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, tea.Batch(
				m.spinner.Tick(),
				func() tea.Msg { return app.StartLoadingMsg{Resource: "profiles"} },
				m.cmds.LoadProfiles(),
			)

		case key.Matches(msg, m.keys.Search):
			m.searching = true
			m.searchInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Export):
			return m, m.cmds.ExportProfiles()

		case key.Matches(msg, m.keys.Clear):
			if m.matches != nil {
				m.matches = nil
				m.lastQuery = ""
			}

		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}

	case app.ProfilesLoadedMsg:
		m.loading = false
		if msg.Error == nil {
			m.fetched = true
			m.refreshRows()
		}

	case app.SearchResultsMsg:
		if msg.Error == nil {
			m.matches = msg.Matches
			m.lastQuery = msg.Query
		}

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// updateSearchInput routes keys to the subaccount search input.
func (m *Model) updateSearchInput(msg tea.KeyMsg) (app.Tab, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil

	case "enter":
		query := m.searchInput.Value()
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		if query == "" {
			return m, nil
		}
		return m, m.cmds.SearchSubaccounts(query)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// refreshRows rebuilds the profile table from the shared state.
func (m *Model) refreshRows() {
	profiles := m.state.GetProfiles()
	rows := make([]table.Row, len(profiles))
	for i, p := range profiles {
		rows[i] = table.Row{
			p.SID,
			p.FriendlyName,
			styles.RenderStatus(p.Status),
			p.Email,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// SetSize sets the available size for the trusthub tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	tableHeight := height - 12
	if tableHeight < 4 {
		tableHeight = 4
	}
	m.table.SetHeight(tableHeight)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	return []key.Binding{
		m.keys.Refresh,
		m.keys.Search,
		m.keys.Export,
	}
}
