package calls

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mark0025/Twilio-tools/internal/ui/components"
	"github.com/Mark0025/Twilio-tools/internal/ui/styles"
)

// View renders the calls tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderSummaryCard())

	if m.finding {
		sections = append(sections, m.renderFindInput())
	}
	if m.filtered {
		sections = append(sections, styles.InfoTextStyle.Render(
			fmt.Sprintf("Filtered by %q, press esc to clear", m.lastQuery)))
	}

	sections = append(sections, m.table.View())

	if m.showChart {
		sections = append(sections, "", m.renderVolumeChart())
	}

	sections = append(sections, "", m.renderHelpLine())

	return styles.DocStyle.
		Width(m.width).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Call Log")
	subtitle := styles.HelpStyle.Render("CSV ingestion, fuzzy lookup and JSON export")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderSummaryCard() string {
	stats := m.state.GetCallStats()
	loaded := m.state.GetLoadedPath()
	if loaded == "" {
		loaded = styles.HelpStyle.Render("nothing loaded, press l")
	}

	summary := fmt.Sprintf("%s  %s  %s",
		styles.InfoTextStyle.Render(fmt.Sprintf("%d calls", stats.Total)),
		styles.SuccessTextStyle.Render(fmt.Sprintf("%d completed", stats.Completed)),
		styles.WarningTextStyle.Render(fmt.Sprintf("%d no-answer", stats.NoAnswer)),
	)

	cardWidth := max(m.width-6, 40)
	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.CardTitleStyle.Render("Summary"),
			summary,
			styles.HelpStyle.Render("Source: ")+loaded,
		),
	)
}

func (m *Model) renderFindInput() string {
	return styles.FocusedBorderStyle.Render("Fuzzy find " + m.findInput.View())
}

func (m *Model) renderVolumeChart() string {
	chartWidth := max(m.width-12, 30)
	return components.RenderCallVolume(m.mgr.Entries(), chartWidth, 5)
}

func (m *Model) renderHelpLine() string {
	sep := styles.HelpSeparatorStyle.Render(" | ")
	parts := []string{
		styles.HelpKeyStyle.Render("l") + styles.HelpDescStyle.Render(" load newest"),
		styles.HelpKeyStyle.Render("e") + styles.HelpDescStyle.Render(" export"),
		styles.HelpKeyStyle.Render("x") + styles.HelpDescStyle.Render(" enrich"),
		styles.HelpKeyStyle.Render("/") + styles.HelpDescStyle.Render(" find"),
		styles.HelpKeyStyle.Render("v") + styles.HelpDescStyle.Render(" chart"),
	}
	line := parts[0]
	for _, p := range parts[1:] {
		line += sep + p
	}
	return line
}
