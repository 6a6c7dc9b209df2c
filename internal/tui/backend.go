package tui

import (
	"context"

	"github.com/Sharma7422/fintrack/internal/gateway"
	"github.com/Sharma7422/fintrack/internal/model"
)

// Backend is the slice of the gateway the TUI talks to. Every page loads
// its own overview through it; mutations go through it or the record
// store, never around them.
type Backend interface {
	Login(ctx context.Context, email, password string) (*gateway.AuthResponse, error)
	DashboardOverview(ctx context.Context) (*model.DashboardOverview, error)
	TransactionsOverview(ctx context.Context, q model.TransactionQuery) (*model.TransactionsOverview, error)
	DeleteTransaction(ctx context.Context, id string) error
	BudgetOverview(ctx context.Context) (*model.BudgetOverview, error)
	Bills(ctx context.Context) ([]model.Bill, error)
	AnalyticsOverview(ctx context.Context) (*model.AnalyticsOverview, error)
	InsightsOverview(ctx context.Context, period string) (*model.InsightsOverview, error)
	Notifications(ctx context.Context) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
	Categories(ctx context.Context) (*model.CategorySet, error)
}

var _ Backend = (*gateway.Client)(nil)
