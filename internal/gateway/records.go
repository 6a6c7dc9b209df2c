package gateway

import (
	"context"

	"github.com/Sharma7422/fintrack/internal/model"
)

// Records fetches the full financial-record list.
func (c *Client) Records(ctx context.Context) ([]model.FinancialRecord, error) {
	var records []model.FinancialRecord
	if err := c.get(ctx, "/financial-records", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// AddRecord creates a record from draft and returns the canonical record
// with its server-assigned identity.
func (c *Client) AddRecord(ctx context.Context, draft model.RecordDraft) (*model.FinancialRecord, error) {
	var record model.FinancialRecord
	if err := c.post(ctx, "/financial-records", draft, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateRecord replaces the record with the given identity and returns the
// new canonical record.
func (c *Client) UpdateRecord(ctx context.Context, id string, draft model.RecordDraft) (*model.FinancialRecord, error) {
	var record model.FinancialRecord
	if err := c.put(ctx, "/financial-records/"+id, draft, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteRecord removes the record with the given identity.
func (c *Client) DeleteRecord(ctx context.Context, id string) error {
	return c.delete(ctx, "/financial-records/"+id, nil)
}
