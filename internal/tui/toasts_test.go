package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastStack_SelfExpiry(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	current := start
	stack := &ToastStack{now: func() time.Time { return current }}

	cmd := stack.Push("Record added", ToastInfo)
	require.NotNil(t, cmd)

	// Present at T+1000ms.
	current = start.Add(1000 * time.Millisecond)
	require.Len(t, stack.Visible(), 1)
	assert.Equal(t, "Record added", stack.Visible()[0].Title)

	// Absent at T+3000ms.
	current = start.Add(3000 * time.Millisecond)
	assert.Empty(t, stack.Visible())
}

func TestToastStack_ExpiryMessageRemovesEntry(t *testing.T) {
	stack := NewToastStack()
	_ = stack.Push("one", ToastInfo)
	_ = stack.Push("two", ToastError)
	require.Len(t, stack.Visible(), 2)

	id := stack.toasts[0].ID
	stack.Update(toastExpiredMsg{id: id})

	require.Len(t, stack.toasts, 1)
	assert.Equal(t, "two", stack.toasts[0].Title)
}

func TestToastStack_AppendOnlyOrdering(t *testing.T) {
	stack := NewToastStack()
	_ = stack.Push("first", ToastInfo)
	_ = stack.Push("second", ToastInfo)
	_ = stack.Push("third", ToastError)

	visible := stack.Visible()
	require.Len(t, visible, 3)
	assert.Equal(t, "first", visible[0].Title)
	assert.Equal(t, "third", visible[2].Title)

	// Identities are unique even for identical titles.
	ids := map[string]bool{}
	for _, toast := range visible {
		assert.False(t, ids[toast.ID])
		ids[toast.ID] = true
	}
}
