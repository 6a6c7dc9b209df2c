package model

import "time"

// Budget is a monthly spending limit for one category. Spent is computed
// by the server and never stored client-side.
type Budget struct {
	ID       string  `json:"_id"`
	Category string  `json:"category"`
	Name     string  `json:"name,omitempty"`
	Icon     string  `json:"icon,omitempty"`
	Limit    float64 `json:"limit"`
	Spent    float64 `json:"spent"`
}

// Remaining returns the unspent portion of the budget, clamped at zero.
func (b *Budget) Remaining() float64 {
	if b.Spent >= b.Limit {
		return 0
	}
	return b.Limit - b.Spent
}

// Progress returns spent as a fraction of the limit in [0, 1].
func (b *Budget) Progress() float64 {
	if b.Limit <= 0 {
		return 0
	}
	p := b.Spent / b.Limit
	if p > 1 {
		p = 1
	}
	return p
}

// Bill is a scheduled payment shown on the calendar. Bills are independent
// of financial records.
type Bill struct {
	DueDate time.Time `json:"dueDate"`
	ID      string    `json:"_id"`
	Name    string    `json:"name"`
	Amount  float64   `json:"amount"`
}

// DueWithin reports whether the bill falls due in the next d, measured
// from now.
func (b *Bill) DueWithin(now time.Time, d time.Duration) bool {
	return !b.DueDate.Before(now) && b.DueDate.Before(now.Add(d))
}
