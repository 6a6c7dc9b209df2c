package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Sharma7422/fintrack/internal/model"
)

// TransactionsOverview fetches one page of transactions with KPIs. Empty
// query fields are omitted from the request; page and limit always go out.
func (c *Client) TransactionsOverview(ctx context.Context, q model.TransactionQuery) (*model.TransactionsOverview, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}

	var overview model.TransactionsOverview
	if err := c.get(ctx, "/transactions/transactions-overview", params, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// AddTransaction creates a transaction and returns the canonical record.
func (c *Client) AddTransaction(ctx context.Context, draft model.RecordDraft) (*model.FinancialRecord, error) {
	var record model.FinancialRecord
	if err := c.post(ctx, "/transactions", draft, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateTransaction replaces the transaction with the given identity.
func (c *Client) UpdateTransaction(ctx context.Context, id string, draft model.RecordDraft) (*model.FinancialRecord, error) {
	var record model.FinancialRecord
	if err := c.put(ctx, "/transactions/"+id, draft, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteTransaction removes the transaction with the given identity.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.delete(ctx, "/transactions/"+id, nil)
}
