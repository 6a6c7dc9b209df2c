package tui

import (
	"fmt"
	"strings"

	"github.com/Sharma7422/fintrack/internal/model"
)

// budgetsState is the budgets page payload.
type budgetsState struct {
	overview *model.BudgetOverview
	err      error
	loading  bool
}

// progressBar renders a fixed-width spending bar.
func (m Model) progressBar(fraction float64, width int) string {
	if width < 1 {
		width = 1
	}
	full := int(fraction * float64(width))
	if full > width {
		full = width
	}
	return m.theme.ProgressFull.Render(strings.Repeat("█", full)) +
		m.theme.ProgressRest.Render(strings.Repeat("░", width-full))
}

func (m Model) viewBudgets() string {
	s := m.budgets
	out := m.theme.Title.Render("Budgets") + "\n"

	switch {
	case s.loading:
		return out + m.spin.View() + " loading…"
	case s.err != nil:
		return out + m.theme.StatusError.Render(s.err.Error()) + "\n" +
			m.theme.Subtitle.Render("r to retry")
	case s.overview == nil || len(s.overview.Budgets) == 0:
		return out + m.theme.Subtitle.Render("No budgets found.")
	}

	for _, b := range s.overview.Budgets {
		name := b.Name
		if name == "" {
			name = b.Category
		}
		style := m.theme.Normal
		if b.Spent > b.Limit {
			style = m.theme.StatusError
		}
		out += fmt.Sprintf("%-16s %s %s\n",
			truncate(name, 16),
			m.progressBar(b.Progress(), 24),
			style.Render(fmt.Sprintf("%s / %s", money(b.Spent), money(b.Limit))))
	}
	return out
}
