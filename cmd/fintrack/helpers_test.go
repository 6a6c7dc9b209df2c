package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharma7422/fintrack/internal/model"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "date only",
			input: "2026-03-14",
			want:  time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			input: "2026-03-14T09:30:00Z",
			want:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "14/03/2026",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDate_EmptyDefaultsToNow(t *testing.T) {
	before := time.Now()
	got, err := parseDate("")
	require.NoError(t, err)
	assert.False(t, got.Before(before))
}

func TestRecordDraftFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   recordDraftFlags
		wantErr error
	}{
		{
			name:  "valid expense",
			flags: recordDraftFlags{title: "Coffee", category: "Food", kind: "expense", amount: 4.5},
		},
		{
			name:    "bad type",
			flags:   recordDraftFlags{title: "Coffee", category: "Food", kind: "transfer", amount: 4.5},
			wantErr: model.ErrInvalidType,
		},
		{
			name:    "zero amount",
			flags:   recordDraftFlags{title: "Coffee", category: "Food", kind: "expense"},
			wantErr: model.ErrInvalidAmount,
		},
		{
			name:    "missing category",
			flags:   recordDraftFlags{title: "Coffee", kind: "income", amount: 10},
			wantErr: model.ErrEmptyCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := tt.flags.draft()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.flags.title, draft.Title)
			assert.Equal(t, model.RecordType(tt.flags.kind), draft.Type)
		})
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "exactlyten", clip("exactlyten", 10))
	assert.Equal(t, "truncated…", clip("truncated text", 10))
}
