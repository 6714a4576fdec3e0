// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/Mark0025/Twilio-tools/internal/calllog"
	"github.com/Mark0025/Twilio-tools/internal/ui/styles"
)

// RenderLineChart creates a single-series ASCII line chart.
func RenderLineChart(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	// Ensure minimum dimensions
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// DailyVolume buckets call log entries by the date part of their creation
// timestamp. It returns counts and matching date labels in ascending order.
func DailyVolume(entries []calllog.Entry) ([]float64, []string) {
	buckets := make(map[string]int)
	for _, e := range entries {
		date := e.DateCreated
		if i := strings.IndexAny(date, " T"); i > 0 {
			date = date[:i]
		}
		if date == "" {
			continue
		}
		buckets[date]++
	}

	dates := make([]string, 0, len(buckets))
	for date := range buckets {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	counts := make([]float64, len(dates))
	for i, date := range dates {
		counts[i] = float64(buckets[date])
	}
	return counts, dates
}

// RenderCallVolume renders the calls-per-day chart for the loaded book.
func RenderCallVolume(entries []calllog.Entry, width, height int) string {
	counts, dates := DailyVolume(entries)
	if len(counts) == 0 {
		return styles.HelpStyle.Render("No dated calls to chart")
	}

	caption := fmt.Sprintf("calls/day (%s to %s)", dates[0], dates[len(dates)-1])
	if len(dates) == 1 {
		caption = "calls on " + dates[0]
	}
	return RenderLineChart(counts, width, height, caption)
}

// RenderBarChart creates a simple horizontal bar chart.
func RenderBarChart(values []float64, labels []string, width int) string {
	if len(values) == 0 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	maxLabelLen := 0
	for _, l := range labels {
		if len(l) > maxLabelLen {
			maxLabelLen = len(l)
		}
	}

	barWidth := width - maxLabelLen - 10
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		filled := int(v / maxVal * float64(barWidth))
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		lines = append(lines, fmt.Sprintf("%*s %s %.0f", maxLabelLen, label, bar, v))
	}

	return strings.Join(lines, "\n")
}
