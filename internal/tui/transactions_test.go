package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sharma7422/fintrack/internal/model"
)

func TestTransactionsState_QueryMapsFilterTuple(t *testing.T) {
	s := newTransactionsState()
	s.filterType = "expense"
	s.category = "Food"
	s.search.SetValue("coffee")
	s.page = 2

	q := s.query()
	assert.Equal(t, model.TransactionQuery{
		Type:     "expense",
		Category: "Food",
		Search:   "coffee",
		Page:     2,
		Limit:    transactionsPageSize,
	}, q)
}

func TestTransactionsState_CycleTypeResetsPage(t *testing.T) {
	s := newTransactionsState()
	s.page = 3

	s.cycleType()
	assert.Equal(t, "expense", s.filterType)
	assert.Equal(t, 1, s.page)

	s.cycleType()
	assert.Equal(t, "income", s.filterType)
	s.cycleType()
	assert.Equal(t, "", s.filterType)
}

func TestTransactionsState_LocalSort(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }
	s := newTransactionsState()
	s.overview = &model.TransactionsOverview{Transactions: []model.FinancialRecord{
		{ID: "a", Title: "Beans", Amount: 30, Date: day(2)},
		{ID: "b", Title: "Apples", Amount: 10, Date: day(3)},
		{ID: "c", Title: "Carrots", Amount: 20, Date: day(1)},
	}}

	// Default: date descending.
	got := s.rows()
	assert.Equal(t, []string{"b", "a", "c"}, ids(got))

	s.sortKey = "amount"
	s.sortAsc = true
	assert.Equal(t, []string{"b", "c", "a"}, ids(s.rows()))

	s.sortKey = "title"
	assert.Equal(t, []string{"b", "a", "c"}, ids(s.rows()))

	// Sorting never mutates the fetched payload.
	assert.Equal(t, "a", s.overview.Transactions[0].ID)
}

func ids(records []model.FinancialRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
