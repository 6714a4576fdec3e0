package trusthub

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mark0025/Twilio-tools/internal/ui/styles"
)

// View renders the trusthub tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())

	if m.loading {
		sections = append(sections, m.spinner.View())
	} else if !m.fetched {
		sections = append(sections, styles.HelpStyle.Render("Press r to fetch customer profiles"))
	} else {
		sections = append(sections, m.renderHealthCard())
	}

	if m.searching {
		sections = append(sections, styles.FocusedBorderStyle.Render("Subaccounts "+m.searchInput.View()))
	}

	if m.matches != nil {
		sections = append(sections, m.renderSearchResults())
	} else if m.fetched {
		sections = append(sections, m.table.View())
	}

	sections = append(sections, "", m.renderHelpLine())

	return styles.DocStyle.
		Width(m.width).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("TrustHub")
	subtitle := styles.HelpStyle.Render("Compliance profiles, health and subaccount search")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderHealthCard() string {
	cardWidth := max(m.width-6, 40)
	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.CardTitleStyle.Render("Compliance Health"),
			m.healthBar.RenderReport(m.state.GetHealth()),
		),
	)
}

func (m *Model) renderSearchResults() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render(
		fmt.Sprintf("Subaccounts matching %q", m.lastQuery)))

	if len(m.matches) == 0 {
		rows = append(rows, styles.HelpStyle.Render("No matches"))
	}
	for _, match := range m.matches {
		rows = append(rows, fmt.Sprintf("%s  %s  %s",
			match.Account.SID,
			match.Account.FriendlyName,
			styles.RenderStatus(match.Account.Status),
		))
		for _, p := range match.Profiles {
			rows = append(rows, "  profile "+p.SID+"  "+styles.RenderStatus(p.Status))
		}
	}
	rows = append(rows, "", styles.HelpStyle.Render("Press esc to return to the profile table"))

	cardWidth := max(m.width-6, 40)
	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderHelpLine() string {
	sep := styles.HelpSeparatorStyle.Render(" | ")
	parts := []string{
		styles.HelpKeyStyle.Render("r") + styles.HelpDescStyle.Render(" fetch"),
		styles.HelpKeyStyle.Render("/") + styles.HelpDescStyle.Render(" search"),
		styles.HelpKeyStyle.Render("p") + styles.HelpDescStyle.Render(" export"),
	}
	line := parts[0]
	for _, p := range parts[1:] {
		line += sep + p
	}
	return line
}
