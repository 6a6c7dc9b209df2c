package tui

import (
	"fmt"

	"github.com/Sharma7422/fintrack/internal/model"
)

// analyticsState is the analytics page payload.
type analyticsState struct {
	overview *model.AnalyticsOverview
	err      error
	loading  bool
}

// barChart renders labelled values as proportional bars.
func (m Model) barChart(points []model.SeriesPoint, width int) string {
	var max float64
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	if max <= 0 {
		return m.theme.Subtitle.Render("No data.") + "\n"
	}

	out := ""
	for _, p := range points {
		out += fmt.Sprintf("%-12s %s %s\n",
			truncate(p.Label, 12),
			m.progressBar(p.Value/max, width),
			m.theme.Subtitle.Render(money(p.Value)))
	}
	return out
}

func (m Model) viewAnalytics() string {
	s := m.analytics
	out := m.theme.Title.Render("Analytics") + "\n"

	switch {
	case s.loading:
		return out + m.spin.View() + " loading…"
	case s.err != nil:
		return out + m.theme.StatusError.Render(s.err.Error()) + "\n" +
			m.theme.Subtitle.Render("r to retry")
	case s.overview == nil:
		return out + m.theme.Subtitle.Render("No data yet.")
	}

	o := s.overview
	if len(o.BarChart) > 0 {
		out += m.theme.Subtitle.Render("Monthly") + "\n"
		out += m.barChart(o.BarChart, 24) + "\n"
	}
	if len(o.DonutChart) > 0 {
		out += m.theme.Subtitle.Render("By category") + "\n"
		points := make([]model.SeriesPoint, 0, len(o.DonutChart))
		for _, c := range o.DonutChart {
			points = append(points, model.SeriesPoint{Label: c.Category, Value: c.Total})
		}
		out += m.barChart(points, 24) + "\n"
	}
	if len(o.Budgets) > 0 {
		out += m.theme.Subtitle.Render("Budget usage") + "\n"
		for _, b := range o.Budgets {
			out += fmt.Sprintf("%-12s %s\n", truncate(b.Category, 12), m.progressBar(b.Progress(), 24))
		}
	}
	if len(o.LineChart) == 0 && len(o.DonutChart) == 0 && len(o.BarChart) == 0 && len(o.Budgets) == 0 {
		out += m.theme.Subtitle.Render("No analytics data for this range.")
	}
	return out
}
