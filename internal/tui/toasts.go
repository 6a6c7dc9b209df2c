package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Sharma7422/fintrack/internal/tui/themes"
)

// toastTTL is how long a toast stays visible. Expiry ignores user
// interaction; there is no dismiss.
const toastTTL = 3 * time.Second

// ToastVariant selects the toast's styling.
type ToastVariant int

const (
	// ToastInfo is the neutral success/info variant.
	ToastInfo ToastVariant = iota
	// ToastError is the destructive variant.
	ToastError
)

// Toast is one entry in the toast stack.
type Toast struct {
	createdAt time.Time
	ID        string
	Title     string
	Variant   ToastVariant
}

// toastExpiredMsg fires when a toast's lifetime has elapsed.
type toastExpiredMsg struct {
	id string
}

// ToastStack is an append-only list of self-expiring toasts.
type ToastStack struct {
	now    func() time.Time
	toasts []Toast
}

// NewToastStack creates an empty stack on the wall clock.
func NewToastStack() *ToastStack {
	return &ToastStack{now: time.Now}
}

// Push appends a toast and returns the command that will announce its
// expiry.
func (s *ToastStack) Push(title string, variant ToastVariant) tea.Cmd {
	toast := Toast{
		ID:        uuid.NewString(),
		Title:     title,
		Variant:   variant,
		createdAt: s.now(),
	}
	s.toasts = append(s.toasts, toast)

	id := toast.ID
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Update drops the toast named by an expiry message.
func (s *ToastStack) Update(msg tea.Msg) {
	expired, ok := msg.(toastExpiredMsg)
	if !ok {
		return
	}
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != expired.id {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
}

// Visible returns the toasts whose lifetime has not elapsed. Pruning by
// time here means a toast disappears on schedule even if its expiry
// message is still in flight.
func (s *ToastStack) Visible() []Toast {
	cutoff := s.now()
	var visible []Toast
	for _, t := range s.toasts {
		if cutoff.Sub(t.createdAt) < toastTTL {
			visible = append(visible, t)
		}
	}
	return visible
}

// View renders the stack, newest last.
func (s *ToastStack) View(theme themes.Theme) string {
	visible := s.Visible()
	if len(visible) == 0 {
		return ""
	}
	out := ""
	for _, t := range visible {
		style := theme.StatusOK
		if t.Variant == ToastError {
			style = theme.StatusError
		}
		out += style.Render("▌ "+t.Title) + "\n"
	}
	return out
}
