package gateway

import (
	"context"

	"github.com/Sharma7422/fintrack/internal/model"
)

// RecordService is the slice of the gateway the record store depends on.
// It exists so the store can be exercised against a mock in tests.
type RecordService interface {
	Records(ctx context.Context) ([]model.FinancialRecord, error)
	AddRecord(ctx context.Context, draft model.RecordDraft) (*model.FinancialRecord, error)
	UpdateRecord(ctx context.Context, id string, draft model.RecordDraft) (*model.FinancialRecord, error)
	DeleteRecord(ctx context.Context, id string) error
}

var _ RecordService = (*Client)(nil)
