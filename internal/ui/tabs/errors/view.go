package errors

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mark0025/Twilio-tools/internal/ui/styles"
)

// View renders the errors tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())

	if m.typing {
		sections = append(sections, styles.FocusedBorderStyle.Render("Error code "+m.codeInput.View()))
	} else {
		sections = append(sections, styles.HelpStyle.Render("Press / to look up an error code"))
	}

	if m.searched {
		sections = append(sections, "", m.renderResultCard())
	}

	sections = append(sections, "", styles.HelpStyle.Render(
		fmt.Sprintf("%d codes loaded", m.mgr.ErrorTable().Len())))

	return styles.DocStyle.
		Width(m.width).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Error Lookup")
	subtitle := styles.HelpStyle.Render("Vendor error codes with causes and solutions")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderResultCard() string {
	cardWidth := max(m.width-6, 50)

	if m.badInput != "" {
		return styles.CardStyle.Width(cardWidth).Render(
			styles.ErrorTextStyle.Render(fmt.Sprintf("%q is not a numeric error code", m.badInput)))
	}

	if !m.known {
		return styles.CardStyle.Width(cardWidth).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				styles.CardTitleStyle.Render(fmt.Sprintf("Code %d", m.code)),
				styles.WarningTextStyle.Render("Unknown error code"),
			),
		)
	}

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render(fmt.Sprintf("Code %d", m.info.Code)))
	rows = append(rows, m.renderRow("Message", m.info.Message))
	rows = append(rows, m.renderRow("Description", m.info.Description))
	rows = append(rows, m.renderRow("Product", m.info.Product))
	rows = append(rows, m.renderRow("Log Level", m.info.LogLevel))
	if m.info.Causes != "" {
		rows = append(rows, m.renderRow("Causes", m.info.Causes))
	}
	if m.info.Solutions != "" {
		rows = append(rows, m.renderRow("Solutions", m.info.Solutions))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRow(label, value string) string {
	if value == "" {
		value = "-"
	}
	labelStyle := lipgloss.NewStyle().
		Width(14).
		Foreground(styles.TextMuted)

	return labelStyle.Render(label+":") + " " + value
}
