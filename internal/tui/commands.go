package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sharma7422/fintrack/internal/model"
)

// requestTimeout bounds every load the TUI issues.
const requestTimeout = 30 * time.Second

func (m Model) signIn(email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := m.backend.Login(ctx, email, password)
		if err != nil {
			return loginResultMsg{err: err}
		}
		return loginResultMsg{session: model.Session{Token: resp.Token, User: resp.User}}
	}
}

func (m Model) refreshRecords() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return recordsRefreshedMsg{err: m.records.FetchAll(ctx)}
	}
}

func (m Model) loadDashboard() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		overview, err := m.backend.DashboardOverview(ctx)
		return dashboardLoadedMsg{overview: overview, err: err}
	}
}

func (m Model) loadTransactions(q model.TransactionQuery) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		overview, err := m.backend.TransactionsOverview(ctx, q)
		return transactionsLoadedMsg{overview: overview, err: err}
	}
}

func (m Model) deleteTransaction(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return transactionDeletedMsg{id: id, err: m.backend.DeleteTransaction(ctx, id)}
	}
}

func (m Model) loadBudgets() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		overview, err := m.backend.BudgetOverview(ctx)
		return budgetsLoadedMsg{overview: overview, err: err}
	}
}

func (m Model) loadBills() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		bills, err := m.backend.Bills(ctx)
		return billsLoadedMsg{bills: bills, err: err}
	}
}

func (m Model) loadAnalytics() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		overview, err := m.backend.AnalyticsOverview(ctx)
		return analyticsLoadedMsg{overview: overview, err: err}
	}
}

func (m Model) loadInsights(period string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		overview, err := m.backend.InsightsOverview(ctx, period)
		return insightsLoadedMsg{overview: overview, err: err}
	}
}

func (m Model) loadNotifications() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		notifications, err := m.backend.Notifications(ctx)
		return notificationsLoadedMsg{notifications: notifications, err: err}
	}
}

func (m Model) loadCategories() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		set, err := m.backend.Categories(ctx)
		return categoriesLoadedMsg{set: set, err: err}
	}
}

func (m Model) markNotificationRead(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return notificationMarkedMsg{err: m.backend.MarkNotificationRead(ctx, id)}
	}
}
