package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDraft_Validate(t *testing.T) {
	valid := RecordDraft{
		Type:     RecordTypeExpense,
		Category: "Food",
		Title:    "Coffee",
		Amount:   4.50,
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		mutate  func(*RecordDraft)
		wantErr error
		name    string
	}{
		{
			name:    "valid draft passes",
			mutate:  func(*RecordDraft) {},
			wantErr: nil,
		},
		{
			name:    "unknown type rejected",
			mutate:  func(d *RecordDraft) { d.Type = "transfer" },
			wantErr: ErrInvalidType,
		},
		{
			name:    "empty type rejected",
			mutate:  func(d *RecordDraft) { d.Type = "" },
			wantErr: ErrInvalidType,
		},
		{
			name:    "zero amount rejected",
			mutate:  func(d *RecordDraft) { d.Amount = 0 },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount rejected",
			mutate:  func(d *RecordDraft) { d.Amount = -10 },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "empty category rejected",
			mutate:  func(d *RecordDraft) { d.Category = "" },
			wantErr: ErrEmptyCategory,
		},
		{
			name:    "empty title rejected",
			mutate:  func(d *RecordDraft) { d.Title = "" },
			wantErr: ErrEmptyTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := valid
			tt.mutate(&draft)
			err := draft.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBudget_Progress(t *testing.T) {
	tests := []struct {
		name   string
		budget Budget
		want   float64
	}{
		{name: "half spent", budget: Budget{Limit: 200, Spent: 100}, want: 0.5},
		{name: "overspent clamps to one", budget: Budget{Limit: 100, Spent: 150}, want: 1},
		{name: "zero limit reports zero", budget: Budget{Limit: 0, Spent: 50}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.budget.Progress(), 1e-9)
		})
	}
}

func TestBill_DueWithin(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	due := Bill{Name: "Rent", Amount: 1200, DueDate: now.AddDate(0, 0, 3)}
	assert.True(t, due.DueWithin(now, 7*24*time.Hour))

	far := Bill{Name: "Insurance", Amount: 90, DueDate: now.AddDate(0, 1, 0)}
	assert.False(t, far.DueWithin(now, 7*24*time.Hour))

	past := Bill{Name: "Water", Amount: 40, DueDate: now.AddDate(0, 0, -1)}
	assert.False(t, past.DueWithin(now, 7*24*time.Hour))
}

func TestSession_Authenticated(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Authenticated())
	assert.False(t, (&Session{}).Authenticated())
	assert.True(t, (&Session{Token: "tok"}).Authenticated())
}
