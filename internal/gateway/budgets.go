package gateway

import (
	"context"

	"github.com/Sharma7422/fintrack/internal/model"
)

// BudgetDraft is the client-side payload for creating or updating a
// budget. Spent is server-computed and never sent.
type BudgetDraft struct {
	Category string  `json:"category"`
	Name     string  `json:"name,omitempty"`
	Icon     string  `json:"icon,omitempty"`
	Limit    float64 `json:"limit"`
}

// BudgetOverview fetches all budgets with their server-computed spend.
func (c *Client) BudgetOverview(ctx context.Context) (*model.BudgetOverview, error) {
	var overview model.BudgetOverview
	if err := c.get(ctx, "/budgets/budget-overview", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// AddBudget creates a budget.
func (c *Client) AddBudget(ctx context.Context, draft BudgetDraft) (*model.Budget, error) {
	var budget model.Budget
	if err := c.post(ctx, "/budgets", draft, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

// UpdateBudget replaces the budget with the given identity.
func (c *Client) UpdateBudget(ctx context.Context, id string, draft BudgetDraft) (*model.Budget, error) {
	var budget model.Budget
	if err := c.put(ctx, "/budgets/"+id, draft, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

// DeleteBudget removes the budget with the given identity.
func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return c.delete(ctx, "/budgets/"+id, nil)
}
