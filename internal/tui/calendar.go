package tui

import (
	"fmt"
	"sort"
	"time"

	"github.com/Sharma7422/fintrack/internal/model"
)

// calendarState is the bills page payload.
type calendarState struct {
	err     error
	bills   []model.Bill
	loading bool
}

func (m Model) viewCalendar() string {
	s := m.calendar
	out := m.theme.Title.Render("Bills calendar") + "\n"

	switch {
	case s.loading:
		return out + m.spin.View() + " loading…"
	case s.err != nil:
		return out + m.theme.StatusError.Render(s.err.Error()) + "\n" +
			m.theme.Subtitle.Render("r to retry")
	case len(s.bills) == 0:
		return out + m.theme.Subtitle.Render("No bills scheduled.")
	}

	bills := make([]model.Bill, len(s.bills))
	copy(bills, s.bills)
	sort.Slice(bills, func(i, j int) bool { return bills[i].DueDate.Before(bills[j].DueDate) })

	now := time.Now()
	for _, bill := range bills {
		marker := "  "
		style := m.theme.Normal
		switch {
		case bill.DueDate.Before(now):
			marker = "! "
			style = m.theme.StatusError
		case bill.DueWithin(now, 7*24*time.Hour):
			marker = "▸ "
			style = m.theme.Bold
		}
		out += style.Render(fmt.Sprintf("%s%s  %-24s %s",
			marker, bill.DueDate.Format("Mon Jan 02"), truncate(bill.Name, 24), money(bill.Amount))) + "\n"
	}
	out += "\n" + m.theme.Subtitle.Render("▸ due within a week · ! overdue")
	return out
}
