package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sharma7422/fintrack/internal/gateway"
	"github.com/Sharma7422/fintrack/internal/model"
	"github.com/Sharma7422/fintrack/internal/session"
	"github.com/Sharma7422/fintrack/internal/store"
	"github.com/Sharma7422/fintrack/internal/tui/themes"
)

// Page identifies the screen currently shown.
type Page int

const (
	PageLogin Page = iota
	PageDashboard
	PageTransactions
	PageBudgets
	PageCalendar
	PageAnalytics
	PageInsights
	PageNotifications
)

func (p Page) String() string {
	switch p {
	case PageLogin:
		return "Sign in"
	case PageDashboard:
		return "Dashboard"
	case PageTransactions:
		return "Transactions"
	case PageBudgets:
		return "Budgets"
	case PageCalendar:
		return "Calendar"
	case PageAnalytics:
		return "Analytics"
	case PageInsights:
		return "Insights"
	case PageNotifications:
		return "Notifications"
	}
	return "Unknown"
}

// routeClass maps a page onto the guard's route classes. The TUI has no
// standalone register or password-reset screens, so only the two classes
// it can reach appear here.
func routeClass(p Page) session.RouteClass {
	if p == PageLogin {
		return session.RouteAnonymous
	}
	return session.RouteProtected
}

// Config wires the dashboard to its collaborators. All fields are
// required except Theme, which falls back to the persisted preference.
type Config struct {
	Backend Backend
	Records *store.RecordStore
	State   *session.Storage
	Theme   string
}

// Model is the root bubbletea model. It owns navigation, the session
// snapshot, and one state struct per page. Page data never survives a
// logout.
type Model struct {
	backend Backend
	records *store.RecordStore
	state   *session.Storage
	session *model.Session

	theme     themes.Theme
	themeName string
	keys      KeyMap
	spin      spinner.Model
	toasts    *ToastStack

	page   Page
	width  int
	height int

	login         loginState
	dashboard     dashboardState
	transactions  transactionsState
	budgets       budgetsState
	calendar      calendarState
	analytics     analyticsState
	insights      insightsState
	notifications notificationsState
}

// NewModel builds the root model, restoring any persisted session so a
// previously signed-in user lands on the dashboard.
func NewModel(cfg Config) Model {
	themeName := cfg.Theme
	if themeName == "" {
		themeName = cfg.State.Theme()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		backend:      cfg.Backend,
		records:      cfg.Records,
		state:        cfg.State,
		theme:        themes.FromName(themeName),
		themeName:    themeName,
		keys:         DefaultKeyMap(),
		spin:         sp,
		toasts:       NewToastStack(),
		page:         PageLogin,
		login:        newLoginState(),
		transactions: newTransactionsState(),
		insights:     insightsState{period: insightsPeriods[0]},
	}

	sess, err := cfg.State.LoadSession()
	if err != nil {
		slog.Warn("could not restore session", "error", err)
	}
	m.session = sess
	if m.session.Authenticated() {
		m.page = PageDashboard
		m.dashboard.loading = true
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.page == PageDashboard {
		cmds = append(cmds, m.loadDashboard(), m.refreshRecords(), m.loadNotifications())
	}
	return tea.Batch(cmds...)
}

// navigate runs the guard for the requested page and either switches to
// it or to wherever the guard redirects.
func (m *Model) navigate(page Page) tea.Cmd {
	switch session.Decide(routeClass(page), m.session.Authenticated(), "") {
	case session.RedirectLogin:
		page = PageLogin
	case session.RedirectHome:
		page = PageDashboard
	}
	m.page = page
	return m.enterPage(page)
}

// enterPage marks the destination loading and returns its fetch command.
func (m *Model) enterPage(page Page) tea.Cmd {
	switch page {
	case PageDashboard:
		m.dashboard.loading = true
		return m.loadDashboard()
	case PageTransactions:
		m.transactions.loading = true
		return tea.Batch(m.loadTransactions(m.transactions.query()), m.loadCategories())
	case PageBudgets:
		m.budgets.loading = true
		return m.loadBudgets()
	case PageCalendar:
		m.calendar.loading = true
		return m.loadBills()
	case PageAnalytics:
		m.analytics.loading = true
		return m.loadAnalytics()
	case PageInsights:
		m.insights.loading = true
		return m.loadInsights(m.insights.period)
	case PageNotifications:
		m.notifications.loading = true
		return m.loadNotifications()
	}
	return nil
}

// logout clears the credential, the persisted session, and every cached
// record, then returns to the login page. The theme preference survives.
func (m *Model) logout() tea.Cmd {
	if err := m.state.ClearSession(); err != nil {
		slog.Error("clearing session", "error", err)
	}
	m.records.Clear()
	m.session = nil
	m.login = newLoginState()
	m.dashboard = dashboardState{}
	m.transactions = newTransactionsState()
	m.budgets = budgetsState{}
	m.calendar = calendarState{}
	m.analytics = analyticsState{}
	m.insights = insightsState{period: insightsPeriods[0]}
	m.notifications = notificationsState{}
	m.page = PageLogin
	return m.toasts.Push("Signed out", ToastInfo)
}

// toggleTheme flips between dark and light and persists the choice.
func (m *Model) toggleTheme() {
	if m.themeName == "light" {
		m.themeName = "dark"
	} else {
		m.themeName = "light"
	}
	m.theme = themes.FromName(m.themeName)
	if err := m.state.SetTheme(m.themeName); err != nil {
		slog.Error("persisting theme", "error", err)
	}
}

// textEntryActive reports whether keystrokes belong to an input field
// rather than to global shortcuts.
func (m Model) textEntryActive() bool {
	return m.page == PageLogin || (m.page == PageTransactions && m.transactions.searching)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case toastExpiredMsg:
		m.toasts.Update(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loginResultMsg:
		m.login.busy = false
		if msg.err != nil {
			m.login.err = msg.err
			return m, m.toasts.Push(msg.err.Error(), ToastError)
		}
		if err := m.state.SaveSession(msg.session); err != nil {
			slog.Error("persisting session", "error", err)
		}
		sess := msg.session
		m.session = &sess
		cmds = append(cmds,
			m.toasts.Push("Welcome back, "+sess.User.Name, ToastInfo),
			m.navigate(PageDashboard),
			m.refreshRecords(),
			m.loadNotifications(),
		)
		return m, tea.Batch(cmds...)

	case recordsRefreshedMsg:
		// The store already holds the outcome; nothing page-local to do.
		return m, nil

	case dashboardLoadedMsg:
		m.dashboard.loading = false
		m.dashboard.overview, m.dashboard.err = msg.overview, msg.err
		return m, m.redirectIfExpired(msg.err)

	case transactionsLoadedMsg:
		m.transactions.loading = false
		m.transactions.overview, m.transactions.err = msg.overview, msg.err
		if rows := m.transactions.rows(); m.transactions.cursor >= len(rows) && len(rows) > 0 {
			m.transactions.cursor = len(rows) - 1
		}
		return m, m.redirectIfExpired(msg.err)

	case transactionDeletedMsg:
		if msg.err != nil {
			return m, tea.Batch(m.toasts.Push(msg.err.Error(), ToastError), m.redirectIfExpired(msg.err))
		}
		// Refetch rather than splicing the row out locally.
		cmds = append(cmds,
			m.toasts.Push("Transaction deleted", ToastInfo),
			m.loadTransactions(m.transactions.query()),
			m.refreshRecords(),
		)
		return m, tea.Batch(cmds...)

	case budgetsLoadedMsg:
		m.budgets.loading = false
		m.budgets.overview, m.budgets.err = msg.overview, msg.err
		return m, m.redirectIfExpired(msg.err)

	case billsLoadedMsg:
		m.calendar.loading = false
		m.calendar.bills, m.calendar.err = msg.bills, msg.err
		return m, m.redirectIfExpired(msg.err)

	case analyticsLoadedMsg:
		m.analytics.loading = false
		m.analytics.overview, m.analytics.err = msg.overview, msg.err
		return m, m.redirectIfExpired(msg.err)

	case insightsLoadedMsg:
		m.insights.loading = false
		m.insights.overview, m.insights.err = msg.overview, msg.err
		return m, m.redirectIfExpired(msg.err)

	case notificationsLoadedMsg:
		m.notifications.loading = false
		m.notifications.items, m.notifications.err = msg.notifications, msg.err
		if m.notifications.cursor >= len(m.notifications.items) && len(m.notifications.items) > 0 {
			m.notifications.cursor = len(m.notifications.items) - 1
		}
		return m, m.redirectIfExpired(msg.err)

	case notificationMarkedMsg:
		if msg.err != nil {
			return m, tea.Batch(m.toasts.Push(msg.err.Error(), ToastError), m.redirectIfExpired(msg.err))
		}
		return m, m.loadNotifications()

	case categoriesLoadedMsg:
		if msg.err == nil && msg.set != nil {
			names := make([]string, 0, len(msg.set.Categories))
			for _, c := range msg.set.Categories {
				names = append(names, c.Name)
			}
			m.transactions.categories = names
		}
		return m, nil
	}

	return m, m.updatePage(msg)
}

// handleKey routes global shortcuts first, then hands the key to the
// current page. Input fields win over shortcuts while active.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.textEntryActive() {
		return m, m.updatePage(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Logout):
		if m.session.Authenticated() {
			return m, m.logout()
		}
		return m, nil
	}

	switch msg.String() {
	case "1":
		return m, m.navigate(PageDashboard)
	case "2":
		return m, m.navigate(PageTransactions)
	case "3":
		return m, m.navigate(PageBudgets)
	case "4":
		return m, m.navigate(PageCalendar)
	case "5":
		return m, m.navigate(PageAnalytics)
	case "6":
		return m, m.navigate(PageInsights)
	case "7":
		return m, m.navigate(PageNotifications)
	}

	return m, m.updatePage(msg)
}

// updatePage forwards a message to the current page's own handler.
func (m *Model) updatePage(msg tea.Msg) tea.Cmd {
	switch m.page {
	case PageLogin:
		return m.login.update(msg, m)
	case PageTransactions:
		return m.transactions.update(msg, m)
	case PageNotifications:
		return m.notifications.update(msg, m)
	case PageDashboard:
		if isKey(msg, "r") {
			m.dashboard.loading = true
			return tea.Batch(m.loadDashboard(), m.refreshRecords())
		}
	case PageBudgets:
		if isKey(msg, "r") {
			m.budgets.loading = true
			return m.loadBudgets()
		}
	case PageCalendar:
		if isKey(msg, "r") {
			m.calendar.loading = true
			return m.loadBills()
		}
	case PageAnalytics:
		if isKey(msg, "r") {
			m.analytics.loading = true
			return m.loadAnalytics()
		}
	case PageInsights:
		switch {
		case isKey(msg, "p"):
			m.insights.cyclePeriod()
			m.insights.loading = true
			return m.loadInsights(m.insights.period)
		case isKey(msg, "r"):
			m.insights.loading = true
			return m.loadInsights(m.insights.period)
		}
	}
	return nil
}

func isKey(msg tea.Msg, s string) bool {
	k, ok := msg.(tea.KeyMsg)
	return ok && k.String() == s
}

// redirectIfExpired sends the user back to the login page when the
// backend rejects the credential mid-session.
func (m *Model) redirectIfExpired(err error) tea.Cmd {
	if err == nil || !gateway.IsUnauthorized(err) {
		return nil
	}
	cmd := m.logout()
	return tea.Batch(cmd, m.toasts.Push("Session expired, sign in again", ToastError))
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	switch m.page {
	case PageLogin:
		b.WriteString(m.viewLogin())
	case PageDashboard:
		b.WriteString(m.viewDashboard())
	case PageTransactions:
		b.WriteString(m.viewTransactions())
	case PageBudgets:
		b.WriteString(m.viewBudgets())
	case PageCalendar:
		b.WriteString(m.viewCalendar())
	case PageAnalytics:
		b.WriteString(m.viewAnalytics())
	case PageInsights:
		b.WriteString(m.viewInsights())
	case PageNotifications:
		b.WriteString(m.viewNotifications())
	}

	if toasts := m.toasts.View(m.theme); toasts != "" {
		b.WriteString("\n")
		b.WriteString(toasts)
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	left := m.theme.Bold.Render("fintrack")
	if !m.session.Authenticated() {
		return left + "\n"
	}

	right := m.session.User.Email
	if unread := m.notifications.unread(); unread > 0 {
		right += fmt.Sprintf("  %s", m.theme.Bold.Render(fmt.Sprintf("🔔 %d", unread)))
	}
	return left + "  " + m.theme.Subtitle.Render(right) + "\n"
}

func (m Model) viewFooter() string {
	if !m.session.Authenticated() {
		return m.theme.Subtitle.Render("t theme · ctrl+c quit")
	}
	return m.theme.Subtitle.Render(
		"1 dashboard · 2 transactions · 3 budgets · 4 calendar · 5 analytics · 6 insights · 7 notifications · t theme · L log out · q quit")
}
