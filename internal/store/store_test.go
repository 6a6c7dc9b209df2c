package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharma7422/fintrack/internal/gateway"
	"github.com/Sharma7422/fintrack/internal/model"
)

func record(id, title string, amount float64) model.FinancialRecord {
	return model.FinancialRecord{
		ID:       id,
		Title:    title,
		Category: "Food",
		Type:     model.RecordTypeExpense,
		Amount:   amount,
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func draft(title string, amount float64) model.RecordDraft {
	return model.RecordDraft{
		Title:    title,
		Category: "Food",
		Type:     model.RecordTypeExpense,
		Amount:   amount,
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func requireUniqueIDs(t *testing.T, records []model.FinancialRecord) {
	t.Helper()
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		require.False(t, seen[r.ID], "duplicate identity %q", r.ID)
		seen[r.ID] = true
	}
}

func TestFetchAll_ReplacesEntireList(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		return []model.FinancialRecord{record("a", "Coffee", 4), record("b", "Rent", 1200)}, nil
	}
	require.NoError(t, s.FetchAll(context.Background()))
	assert.Len(t, s.Records(), 2)

	// Second fetch returns a disjoint list; the old one must be gone.
	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		return []model.FinancialRecord{record("c", "Groceries", 80)}, nil
	}
	require.NoError(t, s.FetchAll(context.Background()))

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "c", records[0].ID)
	assert.NoError(t, s.Err())
}

func TestFetchAll_FailureKeepsStaleList(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		return []model.FinancialRecord{record("a", "Coffee", 4)}, nil
	}
	require.NoError(t, s.FetchAll(context.Background()))

	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		return nil, &gateway.RemoteError{Kind: gateway.KindServerError, Status: 500}
	}
	err := s.FetchAll(context.Background())
	require.Error(t, err)

	// Stale but available: the previous list survives the failed refetch.
	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].ID)
	assert.Error(t, s.Err())
	assert.False(t, s.Loading())
}

func TestAdd_AppendsCanonicalRecord(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	mock.AddRecordFn = func(_ context.Context, d model.RecordDraft) (*model.FinancialRecord, error) {
		r := record("srv-1", d.Title, d.Amount)
		return &r, nil
	}

	created, err := s.Add(context.Background(), draft("Coffee", 4))
	require.NoError(t, err)
	assert.Equal(t, "srv-1", created.ID)

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "srv-1", records[0].ID)
}

func TestAdd_NoOptimisticGhosts(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		return []model.FinancialRecord{record("a", "Coffee", 4)}, nil
	}
	require.NoError(t, s.FetchAll(context.Background()))
	before := s.Len()

	mock.AddRecordFn = func(context.Context, model.RecordDraft) (*model.FinancialRecord, error) {
		return nil, &gateway.RemoteError{Kind: gateway.KindValidation, Status: 422, Message: "bad draft"}
	}
	_, err := s.Add(context.Background(), draft("Phantom", 10))
	require.Error(t, err)

	assert.Equal(t, before, s.Len())
	assert.Error(t, s.Err())
}

func TestAdd_RejectsInvalidDraftWithoutNetworkCall(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	_, err := s.Add(context.Background(), model.RecordDraft{Type: "expense", Title: "x", Category: "Food", Amount: -1})
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
	assert.Empty(t, mock.AddRecordCalls)
}

func TestUpdate_ReplacesByIdentity(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		return []model.FinancialRecord{record("a", "Coffee", 4), record("b", "Rent", 1200)}, nil
	}
	require.NoError(t, s.FetchAll(context.Background()))

	mock.UpdateRecordFn = func(_ context.Context, id string, d model.RecordDraft) (*model.FinancialRecord, error) {
		r := record(id, d.Title, d.Amount)
		return &r, nil
	}
	updated, err := s.Update(context.Background(), "a", draft("Espresso", 5))
	require.NoError(t, err)
	assert.Equal(t, "Espresso", updated.Title)

	records := s.Records()
	require.Len(t, records, 2)
	requireUniqueIDs(t, records)
	assert.Equal(t, "Espresso", records[0].Title)
	assert.Equal(t, "Rent", records[1].Title)
}

func TestUpdate_MissingIdentitySurfacesNotFound(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		return []model.FinancialRecord{record("a", "Coffee", 4)}, nil
	}
	require.NoError(t, s.FetchAll(context.Background()))

	mock.UpdateRecordFn = func(context.Context, string, model.RecordDraft) (*model.FinancialRecord, error) {
		return nil, &gateway.RemoteError{Kind: gateway.KindNotFound, Status: 404, Message: "no such record"}
	}
	_, err := s.Update(context.Background(), "ghost", draft("Nope", 1))
	require.Error(t, err)
	assert.True(t, gateway.IsNotFound(err))

	// The failure is re-raised to the caller and recorded in state.
	assert.Error(t, s.Err())
	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "Coffee", records[0].Title)
}

func TestUpdateInContext_LocalOnlyReplace(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		return []model.FinancialRecord{record("a", "Coffee", 4)}, nil
	}
	require.NoError(t, s.FetchAll(context.Background()))
	mock.Reset()

	s.UpdateInContext(record("a", "Latte", 6))

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "Latte", records[0].Title)
	assert.Zero(t, mock.RecordsCalls)
	assert.Empty(t, mock.UpdateRecordCalls)
}

func TestRemove_DropsByIdentity(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		return []model.FinancialRecord{record("a", "Coffee", 4), record("b", "Rent", 1200)}, nil
	}
	require.NoError(t, s.FetchAll(context.Background()))

	require.NoError(t, s.Remove(context.Background(), "a"))

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].ID)
}

func TestRemove_FailureLeavesListUnchanged(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		return []model.FinancialRecord{record("a", "Coffee", 4)}, nil
	}
	require.NoError(t, s.FetchAll(context.Background()))

	mock.DeleteRecordFn = func(context.Context, string) error {
		return &gateway.RemoteError{Kind: gateway.KindServerError, Status: 500}
	}
	require.Error(t, s.Remove(context.Background(), "a"))

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].ID)
}

func TestRemoveThenFetch_Idempotent(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	serverRecords := []model.FinancialRecord{record("a", "Coffee", 4), record("b", "Rent", 1200)}
	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		out := make([]model.FinancialRecord, len(serverRecords))
		copy(out, serverRecords)
		return out, nil
	}
	mock.DeleteRecordFn = func(_ context.Context, id string) error {
		kept := serverRecords[:0]
		for _, r := range serverRecords {
			if r.ID != id {
				kept = append(kept, r)
			}
		}
		serverRecords = kept
		return nil
	}

	require.NoError(t, s.FetchAll(context.Background()))
	require.NoError(t, s.Remove(context.Background(), "a"))
	require.NoError(t, s.FetchAll(context.Background()))

	for _, r := range s.Records() {
		assert.NotEqual(t, "a", r.ID)
	}
}

func TestIdentityUniqueness_AcrossOperationSequences(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		return []model.FinancialRecord{record("a", "Coffee", 4), record("b", "Rent", 1200)}, nil
	}
	require.NoError(t, s.FetchAll(context.Background()))

	// Server hands back an identity the cache already holds; the cache
	// must still never contain it twice.
	mock.AddRecordFn = func(_ context.Context, d model.RecordDraft) (*model.FinancialRecord, error) {
		r := record("a", d.Title, d.Amount)
		return &r, nil
	}
	_, err := s.Add(context.Background(), draft("Coffee again", 4))
	require.NoError(t, err)
	requireUniqueIDs(t, s.Records())

	mock.AddRecordFn = func(_ context.Context, d model.RecordDraft) (*model.FinancialRecord, error) {
		r := record("c", d.Title, d.Amount)
		return &r, nil
	}
	_, err = s.Add(context.Background(), draft("Groceries", 80))
	require.NoError(t, err)

	mock.UpdateRecordFn = func(_ context.Context, id string, d model.RecordDraft) (*model.FinancialRecord, error) {
		r := record(id, d.Title, d.Amount)
		return &r, nil
	}
	_, err = s.Update(context.Background(), "b", draft("Rent March", 1200))
	require.NoError(t, err)
	require.NoError(t, s.Remove(context.Background(), "c"))

	requireUniqueIDs(t, s.Records())
	assert.Equal(t, 2, s.Len())
}

func TestClear_EmptiesCache(t *testing.T) {
	mock := gateway.NewMockRecordService()
	s := New(mock)

	mock.RecordsFn = func(context.Context) ([]model.FinancialRecord, error) {
		return []model.FinancialRecord{record("a", "Coffee", 4)}, nil
	}
	require.NoError(t, s.FetchAll(context.Background()))

	s.Clear()
	assert.Zero(t, s.Len())
	assert.NoError(t, s.Err())
}
