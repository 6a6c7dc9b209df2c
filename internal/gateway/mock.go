package gateway

import (
	"context"

	"github.com/Sharma7422/fintrack/internal/model"
)

// MockRecordService is a hand-written mock of RecordService for tests.
type MockRecordService struct {
	// Functions that can be set by tests to control behavior
	RecordsFn      func(ctx context.Context) ([]model.FinancialRecord, error)
	AddRecordFn    func(ctx context.Context, draft model.RecordDraft) (*model.FinancialRecord, error)
	UpdateRecordFn func(ctx context.Context, id string, draft model.RecordDraft) (*model.FinancialRecord, error)
	DeleteRecordFn func(ctx context.Context, id string) error

	// Call tracking
	RecordsCalls      int
	AddRecordCalls    []model.RecordDraft
	UpdateRecordCalls []UpdateRecordCall
	DeleteRecordCalls []string
}

// UpdateRecordCall records the parameters of an UpdateRecord call.
type UpdateRecordCall struct {
	ID    string
	Draft model.RecordDraft
}

// NewMockRecordService creates a mock whose operations succeed with empty
// results until configured otherwise.
func NewMockRecordService() *MockRecordService {
	return &MockRecordService{}
}

// Records implements RecordService.
func (m *MockRecordService) Records(ctx context.Context) ([]model.FinancialRecord, error) {
	m.RecordsCalls++
	if m.RecordsFn != nil {
		return m.RecordsFn(ctx)
	}
	return []model.FinancialRecord{}, nil
}

// AddRecord implements RecordService.
func (m *MockRecordService) AddRecord(ctx context.Context, draft model.RecordDraft) (*model.FinancialRecord, error) {
	m.AddRecordCalls = append(m.AddRecordCalls, draft)
	if m.AddRecordFn != nil {
		return m.AddRecordFn(ctx, draft)
	}
	record := model.FinancialRecord{
		Type:     draft.Type,
		Category: draft.Category,
		Title:    draft.Title,
		Amount:   draft.Amount,
		Date:     draft.Date,
		Notes:    draft.Notes,
		Image:    draft.Image,
	}
	return &record, nil
}

// UpdateRecord implements RecordService.
func (m *MockRecordService) UpdateRecord(ctx context.Context, id string, draft model.RecordDraft) (*model.FinancialRecord, error) {
	m.UpdateRecordCalls = append(m.UpdateRecordCalls, UpdateRecordCall{ID: id, Draft: draft})
	if m.UpdateRecordFn != nil {
		return m.UpdateRecordFn(ctx, id, draft)
	}
	record := model.FinancialRecord{
		ID:       id,
		Type:     draft.Type,
		Category: draft.Category,
		Title:    draft.Title,
		Amount:   draft.Amount,
		Date:     draft.Date,
		Notes:    draft.Notes,
		Image:    draft.Image,
	}
	return &record, nil
}

// DeleteRecord implements RecordService.
func (m *MockRecordService) DeleteRecord(ctx context.Context, id string) error {
	m.DeleteRecordCalls = append(m.DeleteRecordCalls, id)
	if m.DeleteRecordFn != nil {
		return m.DeleteRecordFn(ctx, id)
	}
	return nil
}

// Reset clears all call tracking.
func (m *MockRecordService) Reset() {
	m.RecordsCalls = 0
	m.AddRecordCalls = nil
	m.UpdateRecordCalls = nil
	m.DeleteRecordCalls = nil
}

// Ensure MockRecordService implements the RecordService interface.
var _ RecordService = (*MockRecordService)(nil)
