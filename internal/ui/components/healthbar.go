package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/Mark0025/Twilio-tools/internal/services/trusthub"
	"github.com/Mark0025/Twilio-tools/internal/ui/styles"
)

// HealthBar renders the compliance health score as a progress bar.
type HealthBar struct {
	progress progress.Model
}

// NewHealthBar creates a health bar with a red-to-green gradient.
func NewHealthBar(width int) HealthBar {
	p := progress.New(
		progress.WithScaledGradient("#ff6b6b", "#51cf66"),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	return HealthBar{progress: p}
}

// Render draws the bar at the given score (0 to 100).
func (h HealthBar) Render(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	bar := h.progress.ViewAs(score / 100)
	label := fmt.Sprintf(" %.0f%%", score)
	switch {
	case score >= 80:
		return bar + styles.SuccessTextStyle.Render(label)
	case score >= 50:
		return bar + styles.WarningTextStyle.Render(label)
	default:
		return bar + styles.ErrorTextStyle.Render(label)
	}
}

// RenderReport draws the bar plus the per-class profile counts.
func (h HealthBar) RenderReport(report *trusthub.HealthReport) string {
	if report == nil || report.Total == 0 {
		return styles.HelpStyle.Render("No profiles loaded")
	}

	counts := fmt.Sprintf("%s  %s  %s",
		styles.SuccessTextStyle.Render(fmt.Sprintf("%d approved", report.Approved)),
		styles.WarningTextStyle.Render(fmt.Sprintf("%d pending", report.Pending)),
		styles.ErrorTextStyle.Render(fmt.Sprintf("%d rejected", report.Rejected)),
	)
	return h.Render(report.Score) + "\n" + counts
}
