package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginState is the login page: two inputs and the last failure.
type loginState struct {
	err      error
	email    textinput.Model
	password textinput.Model
	focus    int
	busy     bool
}

func newLoginState() loginState {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()
	email.CharLimit = 120

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	return loginState{email: email, password: password}
}

func (s *loginState) update(msg tea.Msg, m *Model) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab":
			s.focus = 1 - s.focus
			if s.focus == 0 {
				s.email.Focus()
				s.password.Blur()
			} else {
				s.password.Focus()
				s.email.Blur()
			}
			return nil
		case "enter":
			if s.busy {
				return nil
			}
			s.busy = true
			s.err = nil
			return m.signIn(s.email.Value(), s.password.Value())
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	s.email, cmd = s.email.Update(msg)
	cmds = append(cmds, cmd)
	s.password, cmd = s.password.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (m Model) viewLogin() string {
	s := m.login
	out := m.theme.Title.Render("Sign in") + "\n\n"
	out += s.email.View() + "\n"
	out += s.password.View() + "\n\n"
	if s.busy {
		out += m.spin.View() + " signing in…\n"
	}
	if s.err != nil {
		out += m.theme.StatusError.Render(s.err.Error()) + "\n"
	}
	out += m.theme.Subtitle.Render("tab to switch fields · enter to sign in · q to quit")
	return out
}
