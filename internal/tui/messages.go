package tui

import (
	"github.com/Sharma7422/fintrack/internal/model"
)

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	err     error
	session model.Session
}

// recordsRefreshedMsg reports a record-store FetchAll completing.
type recordsRefreshedMsg struct {
	err error
}

// dashboardLoadedMsg carries the home-page overview.
type dashboardLoadedMsg struct {
	overview *model.DashboardOverview
	err      error
}

// transactionsLoadedMsg carries one page of the transactions overview.
type transactionsLoadedMsg struct {
	overview *model.TransactionsOverview
	err      error
}

// transactionDeletedMsg reports a delete completing; the page refetches
// its own query on success.
type transactionDeletedMsg struct {
	err error
	id  string
}

// budgetsLoadedMsg carries the budgets overview.
type budgetsLoadedMsg struct {
	overview *model.BudgetOverview
	err      error
}

// billsLoadedMsg carries the calendar bills.
type billsLoadedMsg struct {
	err   error
	bills []model.Bill
}

// analyticsLoadedMsg carries the analytics chart payload.
type analyticsLoadedMsg struct {
	overview *model.AnalyticsOverview
	err      error
}

// insightsLoadedMsg carries the insights payload for one period.
type insightsLoadedMsg struct {
	overview *model.InsightsOverview
	err      error
}

// notificationsLoadedMsg carries the bell-menu list.
type notificationsLoadedMsg struct {
	err           error
	notifications []model.Notification
}

// categoriesLoadedMsg carries the category set used by filter cycling.
type categoriesLoadedMsg struct {
	set *model.CategorySet
	err error
}

// notificationMarkedMsg reports a mark-as-read completing.
type notificationMarkedMsg struct {
	err error
}
