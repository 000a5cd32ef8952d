package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vmunix/catalogdash/internal/dashboard"
	"github.com/vmunix/catalogdash/internal/filter"
)

const barMaxWidth = 40

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4F46E5"))
	headingStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	metricStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6366F1")).
			Padding(0, 2)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printMetrics(w io.Writer, m dashboard.Metrics) {
	titles := metricStyle.Render(fmt.Sprintf("%s\n%d", labelStyle.Render("Titles"), m.Titles))
	countries := metricStyle.Render(fmt.Sprintf("%s\n%d", labelStyle.Render("Distinct countries"), m.Countries))
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, titles, " ", countries))
}

func printWarnings(w io.Writer, warnings []filter.Warning) {
	for _, warn := range warnings {
		msg := fmt.Sprintf("unknown %s %q", warn.Field, warn.Value)
		if warn.Suggestion != "" {
			msg += fmt.Sprintf(", did you mean %q?", warn.Suggestion)
		}
		fmt.Fprintln(w, warnStyle.Render(msg))
	}
}

// printChart writes a chart as a text table with proportional bars.
// Stacked charts list one row per (label, series) pair.
func printChart(w io.Writer, c dashboard.Chart) {
	fmt.Fprintln(w, headingStyle.Render(c.Heading))
	if c.Empty() {
		fmt.Fprintln(w, labelStyle.Render("  (no titles)"))
		return
	}

	type row struct {
		label string
		value int
	}
	var rows []row
	for _, s := range c.Series {
		for _, p := range s.Points {
			label := dashboard.DisplayLabel(p.Label)
			if c.Kind == dashboard.KindStackedBar {
				label += " / " + dashboard.DisplayLabel(s.Name)
			}
			rows = append(rows, row{label: label, value: p.Value})
		}
	}

	labelWidth, maxValue := 0, 1
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.label))
		maxValue = max(maxValue, r.value)
	}

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Series[0].Color))
	for _, r := range rows {
		n := max(1, r.value*barMaxWidth/maxValue)
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(r.label))
		fmt.Fprintf(w, "  %s%s %6d %s\n", r.label, pad, r.value, bar.Render(strings.Repeat("█", n)))
	}
}
