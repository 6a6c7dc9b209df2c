// Package store holds the shared financial-record cache. It is the only
// mutable state consumed by more than one view: the server owns the
// records, the store holds confirmed copies and nothing else.
package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Sharma7422/fintrack/internal/gateway"
	"github.com/Sharma7422/fintrack/internal/model"
)

// RecordStore caches the authenticated user's financial records. Every
// entry has been confirmed by the server; no optimistic entries, and no
// two entries share an identity. Construct one per session with New and
// pass it explicitly to consumers.
type RecordStore struct {
	gateway gateway.RecordService
	lastErr error
	records []model.FinancialRecord
	mu      sync.RWMutex
	loading bool
}

// New creates an empty store backed by the given gateway.
func New(gw gateway.RecordService) *RecordStore {
	return &RecordStore{gateway: gw}
}

// Records returns a copy of the cached list.
func (s *RecordStore) Records() []model.FinancialRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.FinancialRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of cached records.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Loading reports whether a FetchAll is in flight.
func (s *RecordStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the most recent operation failure, or nil. The error is
// recorded here so every consumer of the store can react to it without
// re-deriving it from its own call.
func (s *RecordStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// FetchAll replaces the entire cached list with the server's. On failure
// the previous list is kept untouched: a stale cache is better than an
// empty one.
func (s *RecordStore) FetchAll(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	records, err := s.gateway.Records(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		slog.Error("Failed to fetch records", "error", err)
		s.lastErr = err
		return err
	}
	s.records = records
	s.lastErr = nil
	return nil
}

// Add sends the draft to the server and caches the returned canonical
// record. Nothing is inserted until the server confirms, so a failed add
// leaves the list exactly as it was.
func (s *RecordStore) Add(ctx context.Context, draft model.RecordDraft) (*model.FinancialRecord, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	record, err := s.gateway.AddRecord(ctx, draft)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		slog.Error("Failed to add record", "error", err)
		s.lastErr = err
		return nil, err
	}
	s.replaceOrAppend(*record)
	s.lastErr = nil
	return record, nil
}

// Update sends the draft keyed by id and replaces the matching cached
// entry with the returned canonical record. On failure the list is
// unchanged and the error is both recorded and returned, so edit flows
// can keep their form open.
func (s *RecordStore) Update(ctx context.Context, id string, draft model.RecordDraft) (*model.FinancialRecord, error) {
	record, err := s.gateway.UpdateRecord(ctx, id, draft)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		slog.Error("Failed to update record", "id", id, "error", err)
		s.lastErr = err
		return nil, err
	}
	for i := range s.records {
		if s.records[i].ID == record.ID {
			s.records[i] = *record
			break
		}
	}
	s.lastErr = nil
	return record, nil
}

// UpdateInContext replaces a cached entry with a canonical record the
// caller already obtained from its own gateway call. No network traffic;
// it only keeps the shared cache in step without a redundant refetch.
func (s *RecordStore) UpdateInContext(record model.FinancialRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == record.ID {
			s.records[i] = record
			return
		}
	}
}

// Remove deletes the record on the server, then drops it from the cache.
// On failure the list is unchanged.
func (s *RecordStore) Remove(ctx context.Context, id string) error {
	err := s.gateway.DeleteRecord(ctx, id)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		slog.Error("Failed to delete record", "id", id, "error", err)
		s.lastErr = err
		return err
	}
	kept := s.records[:0]
	for _, r := range s.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	s.records = kept
	s.lastErr = nil
	return nil
}

// Clear empties the cache. Called on logout, when the store's session
// ends.
func (s *RecordStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.lastErr = nil
	s.loading = false
}

// replaceOrAppend inserts record, replacing any cached entry with the
// same identity. Identity uniqueness holds even if the server hands back
// an id the cache already knows.
func (s *RecordStore) replaceOrAppend(record model.FinancialRecord) {
	for i := range s.records {
		if s.records[i].ID == record.ID {
			s.records[i] = record
			return
		}
	}
	s.records = append(s.records, record)
}
