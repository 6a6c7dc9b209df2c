package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sharma7422/fintrack/internal/model"
)

// notificationsState is the bell menu page. Marking one read refetches
// the list rather than flipping the flag locally.
type notificationsState struct {
	items   []model.Notification
	err     error
	cursor  int
	loading bool
}

func (s *notificationsState) unread() int {
	n := 0
	for _, it := range s.items {
		if !it.Read {
			n++
		}
	}
	return n
}

func (s *notificationsState) update(msg tea.Msg, m *Model) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "j", "down":
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "enter":
		if s.cursor < len(s.items) && !s.items[s.cursor].Read {
			return m.markNotificationRead(s.items[s.cursor].ID)
		}
	case "r":
		s.loading = true
		return m.loadNotifications()
	}
	return nil
}

func (m Model) viewNotifications() string {
	s := m.notifications
	out := m.theme.Title.Render("Notifications") + "\n\n"

	switch {
	case s.loading:
		return out + m.spin.View() + " loading…"
	case s.err != nil:
		return out + m.theme.StatusError.Render(s.err.Error()) + "\n" +
			m.theme.Subtitle.Render("r to retry")
	case len(s.items) == 0:
		return out + m.theme.Subtitle.Render("No notifications.")
	}

	for i, it := range s.items {
		marker := "  "
		if !it.Read {
			marker = m.theme.Bold.Render("● ")
		}
		line := marker + it.Title
		if it.Message != "" {
			line += m.theme.Subtitle.Render(" — " + truncate(it.Message, 48))
		}
		if i == s.cursor {
			line = m.theme.Selected.Render(line)
		}
		out += line + "\n"
	}
	out += "\n" + m.theme.Subtitle.Render("enter mark read · r refresh")
	return out
}
