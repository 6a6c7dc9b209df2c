package tui

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sharma7422/fintrack/internal/gateway"
	"github.com/Sharma7422/fintrack/internal/model"
	"github.com/Sharma7422/fintrack/internal/session"
	"github.com/Sharma7422/fintrack/internal/store"
)

// stubBackend satisfies Backend with canned responses.
type stubBackend struct {
	loginFn       func(email, password string) (*gateway.AuthResponse, error)
	transactions  *model.TransactionsOverview
	lastQuery     *model.TransactionQuery
	deleteErr     error
	deletedIDs    []string
	dashboardErr  error
	notifications []model.Notification
}

func (b *stubBackend) Login(_ context.Context, email, password string) (*gateway.AuthResponse, error) {
	if b.loginFn != nil {
		return b.loginFn(email, password)
	}
	return &gateway.AuthResponse{Token: "tok", User: model.User{Name: "Asha", Email: email}}, nil
}

func (b *stubBackend) DashboardOverview(context.Context) (*model.DashboardOverview, error) {
	if b.dashboardErr != nil {
		return nil, b.dashboardErr
	}
	return &model.DashboardOverview{}, nil
}

func (b *stubBackend) TransactionsOverview(_ context.Context, q model.TransactionQuery) (*model.TransactionsOverview, error) {
	b.lastQuery = &q
	if b.transactions != nil {
		return b.transactions, nil
	}
	return &model.TransactionsOverview{TotalPages: 1}, nil
}

func (b *stubBackend) DeleteTransaction(_ context.Context, id string) error {
	if b.deleteErr != nil {
		return b.deleteErr
	}
	b.deletedIDs = append(b.deletedIDs, id)
	return nil
}

func (b *stubBackend) BudgetOverview(context.Context) (*model.BudgetOverview, error) {
	return &model.BudgetOverview{}, nil
}

func (b *stubBackend) Bills(context.Context) ([]model.Bill, error) { return nil, nil }

func (b *stubBackend) AnalyticsOverview(context.Context) (*model.AnalyticsOverview, error) {
	return &model.AnalyticsOverview{}, nil
}

func (b *stubBackend) InsightsOverview(_ context.Context, period string) (*model.InsightsOverview, error) {
	return &model.InsightsOverview{}, nil
}

func (b *stubBackend) Notifications(context.Context) ([]model.Notification, error) {
	return b.notifications, nil
}

func (b *stubBackend) MarkNotificationRead(context.Context, string) error { return nil }

func (b *stubBackend) Categories(context.Context) (*model.CategorySet, error) {
	return &model.CategorySet{}, nil
}

func newTestModel(t *testing.T, backend *stubBackend) Model {
	t.Helper()

	state, err := session.NewStorage(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = state.Close() })

	records := store.New(gateway.NewMockRecordService())
	return NewModel(Config{Backend: backend, Records: records, State: state})
}

func TestNewModel_UnauthenticatedStartsOnLogin(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	assert.Equal(t, PageLogin, m.page)
}

func TestNewModel_RestoresPersistedSession(t *testing.T) {
	state, err := session.NewStorage(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = state.Close() })
	require.NoError(t, state.SaveSession(model.Session{Token: "tok", User: model.User{Email: "a@b.c"}}))

	records := store.New(gateway.NewMockRecordService())
	m := NewModel(Config{Backend: &stubBackend{}, Records: records, State: state})
	assert.Equal(t, PageDashboard, m.page)
}

func TestNavigate_GuardBlocksProtectedPagesWhenSignedOut(t *testing.T) {
	m := newTestModel(t, &stubBackend{})

	for _, page := range []Page{PageDashboard, PageTransactions, PageBudgets, PageInsights} {
		m.navigate(page)
		assert.Equal(t, PageLogin, m.page, "page %s should be blocked", page)
	}
}

func TestNavigate_GuardRedirectsLoginWhenSignedIn(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	m.session = &model.Session{Token: "tok"}

	m.navigate(PageLogin)
	assert.Equal(t, PageDashboard, m.page)
}

func TestUpdate_LoginSuccessPersistsSessionAndNavigates(t *testing.T) {
	m := newTestModel(t, &stubBackend{})

	sess := model.Session{Token: "tok", User: model.User{Name: "Asha", Email: "a@b.c"}}
	next, cmd := m.Update(loginResultMsg{session: sess})
	m = next.(Model)

	assert.Equal(t, PageDashboard, m.page)
	assert.NotNil(t, cmd)
	require.True(t, m.session.Authenticated())

	restored, err := m.state.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "tok", restored.Token)
	assert.Equal(t, "a@b.c", restored.User.Email)
}

func TestUpdate_LoginFailureStaysOnLoginPage(t *testing.T) {
	m := newTestModel(t, &stubBackend{})

	next, _ := m.Update(loginResultMsg{err: errors.New("invalid credentials")})
	m = next.(Model)

	assert.Equal(t, PageLogin, m.page)
	assert.Error(t, m.login.err)
	assert.False(t, m.session.Authenticated())

	restored, err := m.state.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestUpdate_TransactionDeleteRefetchesOwnQuery(t *testing.T) {
	backend := &stubBackend{}
	m := newTestModel(t, backend)
	m.session = &model.Session{Token: "tok"}
	m.page = PageTransactions
	m.transactions.filterType = "expense"
	m.transactions.category = "Food"
	m.transactions.page = 2

	next, cmd := m.Update(transactionDeletedMsg{id: "r1"})
	m = next.(Model)
	require.NotNil(t, cmd)

	// Drain the batch; the refetch lands on the backend with the page's
	// current filter tuple, not a reset one.
	drainCmd(t, cmd)
	require.NotNil(t, backend.lastQuery)
	assert.Equal(t, "expense", backend.lastQuery.Type)
	assert.Equal(t, "Food", backend.lastQuery.Category)
	assert.Equal(t, 2, backend.lastQuery.Page)
}

func TestUpdate_UnauthorizedResponseEndsSession(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	m.session = &model.Session{Token: "tok"}
	require.NoError(t, m.state.SaveSession(model.Session{Token: "tok"}))
	m.page = PageDashboard

	expired := &gateway.RemoteError{
		Err:    errors.New("unauthorized"),
		Kind:   gateway.KindUnauthorized,
		Status: http.StatusUnauthorized,
	}
	next, _ := m.Update(dashboardLoadedMsg{err: expired})
	m = next.(Model)

	assert.Equal(t, PageLogin, m.page)
	assert.False(t, m.session.Authenticated())

	restored, err := m.state.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestUpdate_ValidationErrorKeepsSession(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	m.session = &model.Session{Token: "tok"}
	m.page = PageDashboard

	invalid := &gateway.RemoteError{
		Err:    errors.New("bad filter"),
		Kind:   gateway.KindValidation,
		Status: http.StatusBadRequest,
	}
	next, _ := m.Update(dashboardLoadedMsg{err: invalid})
	m = next.(Model)

	assert.Equal(t, PageDashboard, m.page)
	assert.True(t, m.session.Authenticated())
	assert.Error(t, m.dashboard.err)
}

func TestUpdate_ThemeToggleSurvivesLogout(t *testing.T) {
	m := newTestModel(t, &stubBackend{})
	m.session = &model.Session{Token: "tok"}
	m.page = PageDashboard

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = next.(Model)
	assert.Equal(t, "light", m.themeName)

	m.logout()
	assert.Equal(t, "light", m.state.Theme())
}

func TestUpdate_CategoriesFeedFilterCycling(t *testing.T) {
	m := newTestModel(t, &stubBackend{})

	set := &model.CategorySet{Categories: []model.Category{
		{ID: "c1", Name: "Food", Type: model.RecordTypeExpense},
		{ID: "c2", Name: "Rent", Type: model.RecordTypeExpense},
	}}
	next, _ := m.Update(categoriesLoadedMsg{set: set})
	m = next.(Model)

	m.transactions.cycleCategory()
	assert.Equal(t, "Food", m.transactions.category)
	m.transactions.cycleCategory()
	assert.Equal(t, "Rent", m.transactions.category)
	m.transactions.cycleCategory()
	assert.Equal(t, "", m.transactions.category)
}

// drainCmd executes a command tree synchronously, discarding the
// produced messages.
func drainCmd(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			drainCmd(t, sub)
		}
	}
}
