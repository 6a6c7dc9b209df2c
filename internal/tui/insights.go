package tui

import (
	"fmt"

	"github.com/Sharma7422/fintrack/internal/model"
)

// insightsPeriods are the cycle order for the p key.
var insightsPeriods = []string{"monthly", "weekly", "yearly"}

// insightsState is the insights page payload plus its period selector.
type insightsState struct {
	overview *model.InsightsOverview
	err      error
	period   string
	loading  bool
}

// cyclePeriod advances to the next period in the fixed rotation.
func (s *insightsState) cyclePeriod() {
	for i, p := range insightsPeriods {
		if p == s.period {
			s.period = insightsPeriods[(i+1)%len(insightsPeriods)]
			return
		}
	}
	s.period = insightsPeriods[0]
}

func (m Model) viewInsights() string {
	s := m.insights
	out := m.theme.Title.Render("Insights") + "\n"
	out += m.theme.Subtitle.Render("period: "+s.period+" · p to change") + "\n\n"

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
	out += fmt.Sprintf("%s %s   %s %s   %s %s\n\n",
		m.theme.Subtitle.Render("income"), m.theme.Income.Render(money(o.KPIs.TotalIncome)),
		m.theme.Subtitle.Render("expenses"), m.theme.Expense.Render(money(o.KPIs.TotalExpenses)),
		m.theme.Subtitle.Render("saved"), m.theme.Bold.Render(money(o.KPIs.NetSavings)))

	if len(o.PieData) > 0 {
		points := make([]model.SeriesPoint, 0, len(o.PieData))
		for _, c := range o.PieData {
			points = append(points, model.SeriesPoint{Label: c.Category, Value: c.Total})
		}
		out += m.barChart(points, 24) + "\n"
	}
	for _, insight := range o.Insights {
		out += "  • " + insight.Text + "\n"
	}
	for _, prediction := range o.Predictions {
		out += m.theme.Subtitle.Render("  → "+prediction.Text) + "\n"
	}
	if len(o.PieData) == 0 && len(o.Insights) == 0 && len(o.Predictions) == 0 {
		out += m.theme.Subtitle.Render("Nothing to report for this period.")
	}
	return out
}
