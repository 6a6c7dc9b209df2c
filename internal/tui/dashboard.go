package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Sharma7422/fintrack/internal/model"
)

// dashboardState holds the home page's overview payload. Recent records
// come from the shared record store, not this payload, so mutations made
// elsewhere show up without a dashboard refetch.
type dashboardState struct {
	overview *model.DashboardOverview
	err      error
	loading  bool
}

func (m Model) viewDashboard() string {
	s := m.dashboard
	out := m.theme.Title.Render("Dashboard") + "\n"

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
	kpis := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Box.Render(fmt.Sprintf("Income\n%s", m.theme.Income.Render(money(o.TotalIncome)))),
		m.theme.Box.Render(fmt.Sprintf("Expenses\n%s", m.theme.Expense.Render(money(o.TotalExpenses)))),
		m.theme.Box.Render(fmt.Sprintf("Net\n%s", m.theme.Bold.Render(money(o.NetBalance)))),
	)
	out += kpis + "\n"

	if len(o.Insights) > 0 {
		out += m.theme.Subtitle.Render("Insights") + "\n"
		for _, insight := range o.Insights {
			out += "  • " + insight.Text + "\n"
		}
	}

	if len(o.Upcoming.Bills) > 0 {
		out += m.theme.Subtitle.Render("Upcoming bills") + "\n"
		for _, bill := range o.Upcoming.Bills {
			out += fmt.Sprintf("  %s  %s  %s\n",
				bill.DueDate.Format("Jan 02"), bill.Name, money(bill.Amount))
		}
	}

	records := m.records.Records()
	out += m.theme.Subtitle.Render("Recent records") + "\n"
	if m.records.Loading() {
		out += "  " + m.spin.View() + " loading records…\n"
	} else if len(records) == 0 {
		out += m.theme.Subtitle.Render("  No records yet. Add your first one with the CLI.") + "\n"
	} else {
		shown := records
		if len(shown) > 5 {
			shown = shown[len(shown)-5:]
		}
		for _, r := range shown {
			amount := m.theme.Income.Render("+" + money(r.Amount))
			if r.Type == model.RecordTypeExpense {
				amount = m.theme.Expense.Render("-" + money(r.Amount))
			}
			out += fmt.Sprintf("  %s  %-24s %-12s %s\n",
				r.Date.Format("2006-01-02"), truncate(r.Title, 24), r.Category, amount)
		}
	}
	if err := m.records.Err(); err != nil {
		out += m.theme.StatusError.Render("record sync: "+err.Error()) + "\n"
	}

	return out
}
