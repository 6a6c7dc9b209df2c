package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharma7422/fintrack/internal/model"
)

func TestWriteCategories(t *testing.T) {
	var out strings.Builder
	err := WriteCategories(&out,
		[]model.Category{{Name: "Food"}},
		[]model.Tag{{Name: "Urgent"}})
	require.NoError(t, err)

	assert.Equal(t, "Type,Name\nCategory,\"Food\"\nTag,\"Urgent\"\n", out.String())
}

func TestWriteCategories_EscapesEmbeddedQuotes(t *testing.T) {
	var out strings.Builder
	err := WriteCategories(&out,
		[]model.Category{{Name: `Dining "Out"`}},
		nil)
	require.NoError(t, err)

	assert.Equal(t, "Type,Name\nCategory,\"Dining \"\"Out\"\"\"\n", out.String())
}

func TestWriteCategories_EmptyLists(t *testing.T) {
	var out strings.Builder
	require.NoError(t, WriteCategories(&out, nil, nil))
	assert.Equal(t, "Type,Name\n", out.String())
}

func TestWriteTransactions(t *testing.T) {
	records := []model.FinancialRecord{
		{
			ID:       "a",
			Date:     time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC),
			Type:     model.RecordTypeExpense,
			Category: "Food",
			Title:    "Coffee",
			Amount:   4.5,
			Notes:    "with friends",
		},
	}

	var out strings.Builder
	require.NoError(t, WriteTransactions(&out, records, false))

	assert.Equal(t,
		"Date,Type,Category,Title,Amount,Notes\n"+
			"2024-03-01,expense,\"Food\",\"Coffee\",4.50,\"with friends\"\n",
		out.String())
}
