package info

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mark0025/Twilio-tools/internal/ui/styles"
	"github.com/Mark0025/Twilio-tools/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderConfigCard())
	sections = append(sections, m.renderAboutCard())
	sections = append(sections, m.renderAuditCard())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration, version and audit history")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) cardWidth() int {
	cardWidth := m.width - 6
	if cardWidth < 50 {
		cardWidth = 50
	}
	if cardWidth > 90 {
		cardWidth = 90
	}
	return cardWidth
}

func (m *Model) renderConfigCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"))
	rows = append(rows, "")

	if m.config != nil {
		rows = append(rows, m.renderConfigRow("Account SID", m.config.AccountSID))
		rows = append(rows, m.renderConfigRow("Uploads", m.config.UploadsDir))
		rows = append(rows, m.renderConfigRow("Exports", m.config.ExportsDir))
		rows = append(rows, m.renderConfigRow("Error Map", m.config.ErrorMapPath))
		rows = append(rows, m.renderConfigRow("Database", m.config.DatabasePath))
		rows = append(rows, m.renderConfigRow("HTTP Timeout", m.config.HTTPTimeout.String()))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderConfigRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(14).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

func (m *Model) renderAboutCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About"))
	rows = append(rows, "")
	rows = append(rows, m.renderConfigRow("Version", version.GetVersion()))
	rows = append(rows, m.renderConfigRow("Commit", version.GetCommit()))
	rows = append(rows, m.renderConfigRow("Built", version.GetDate()))
	rows = append(rows, m.renderConfigRow("Go", runtime.Version()))
	rows = append(rows, m.renderConfigRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderAuditCard() string {
	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Recent Operations"))
	rows = append(rows, "")

	if len(m.operations) == 0 {
		rows = append(rows, styles.HelpStyle.Render("No operations recorded yet"))
	}
	for _, op := range m.operations {
		line := fmt.Sprintf("%s  %-14s %-30s %d rows",
			op.Timestamp.Format("15:04:05"),
			op.Command,
			truncate(op.Argument, 30),
			op.Rows,
		)
		if op.Error != "" {
			line += "  " + styles.ErrorTextStyle.Render("failed")
		}
		rows = append(rows, line)
	}

	if len(m.exports) > 0 {
		rows = append(rows, "")
		rows = append(rows, styles.CardTitleStyle.Render("Recent Exports"))
		for _, rec := range m.exports {
			rows = append(rows, fmt.Sprintf("%s  %-10s %s (%d entries)",
				rec.Timestamp.Format("15:04:05"),
				rec.Kind,
				truncate(rec.Path, 40),
				rec.Entries,
			))
		}
	}

	rows = append(rows, "")
	rows = append(rows, styles.HelpStyle.Render("Press r to refresh"))

	return styles.CardStyle.Width(m.cardWidth()).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return "..." + s[len(s)-n+3:]
}
