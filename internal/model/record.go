// Package model defines the domain types shared across the application.
package model

import (
	"errors"
	"time"
)

// RecordType indicates whether a financial record is income or an expense.
type RecordType string

const (
	// RecordTypeIncome represents money coming in.
	RecordTypeIncome RecordType = "income"
	// RecordTypeExpense represents money going out.
	RecordTypeExpense RecordType = "expense"
)

// Valid reports whether the type is one of the two known values.
func (t RecordType) Valid() bool {
	return t == RecordTypeIncome || t == RecordTypeExpense
}

// Validation errors for record drafts.
var (
	ErrInvalidType   = errors.New("type must be income or expense")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrEmptyCategory = errors.New("category must not be empty")
	ErrEmptyTitle    = errors.New("title must not be empty")
)

// FinancialRecord is a single income or expense entry. The ID is assigned
// by the server; the client never fabricates one.
type FinancialRecord struct {
	Date     time.Time  `json:"date"`
	ID       string     `json:"_id"`
	Title    string     `json:"title"`
	Category string     `json:"category"`
	Notes    string     `json:"notes,omitempty"`
	Image    string     `json:"image,omitempty"`
	Type     RecordType `json:"type"`
	Amount   float64    `json:"amount"`
}

// RecordDraft is a client-side record before the server has assigned an
// identity. Drafts are what Add and Update send over the wire.
type RecordDraft struct {
	Date     time.Time  `json:"date"`
	Title    string     `json:"title"`
	Category string     `json:"category"`
	Notes    string     `json:"notes,omitempty"`
	Image    string     `json:"image,omitempty"`
	Type     RecordType `json:"type"`
	Amount   float64    `json:"amount"`
}

// Validate checks the draft invariants before it is sent to the server.
func (d *RecordDraft) Validate() error {
	if !d.Type.Valid() {
		return ErrInvalidType
	}
	if d.Amount <= 0 {
		return ErrInvalidAmount
	}
	if d.Category == "" {
		return ErrEmptyCategory
	}
	if d.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}
