package gateway

import (
	"context"
	"time"

	"github.com/Sharma7422/fintrack/internal/model"
)

// BillDraft is the payload for creating or updating a calendar bill.
type BillDraft struct {
	DueDate time.Time `json:"dueDate"`
	Name    string    `json:"name"`
	Amount  float64   `json:"amount"`
}

// Bills fetches all calendar bills.
func (c *Client) Bills(ctx context.Context) ([]model.Bill, error) {
	var bills []model.Bill
	if err := c.get(ctx, "/calendar/bills", nil, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// AddBill creates a bill.
func (c *Client) AddBill(ctx context.Context, draft BillDraft) (*model.Bill, error) {
	var bill model.Bill
	if err := c.post(ctx, "/calendar/bills", draft, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// UpdateBill replaces the bill with the given identity.
func (c *Client) UpdateBill(ctx context.Context, id string, draft BillDraft) (*model.Bill, error) {
	var bill model.Bill
	if err := c.put(ctx, "/calendar/bills/"+id, draft, &bill); err != nil {
		return nil, err
	}
	return &bill, nil
}

// DeleteBill removes the bill with the given identity.
func (c *Client) DeleteBill(ctx context.Context, id string) error {
	return c.delete(ctx, "/calendar/bills/"+id, nil)
}
