package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sharma7422/fintrack/internal/model"
)

// transactionsPageSize is the fixed page size for the transactions grid.
const transactionsPageSize = 10

// transactionsState is the transactions page. It owns the full filter
// tuple and its own fetched page; it does not read the shared record
// store, so it and the dashboard are two separate caches of overlapping
// server data.
type transactionsState struct {
	overview   *model.TransactionsOverview
	err        error
	search     textinput.Model
	filterType string
	category   string
	sortKey    string
	categories []string
	page       int
	cursor     int
	catIndex   int
	sortAsc    bool
	loading    bool
	searching  bool
}

func newTransactionsState() transactionsState {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 80
	return transactionsState{page: 1, filterType: "", sortKey: "date", search: search}
}

// query maps the page's filter tuple onto the overview request. Empty
// strings mean unfiltered; page and limit always go out.
func (s *transactionsState) query() model.TransactionQuery {
	return model.TransactionQuery{
		Type:     s.filterType,
		Category: s.category,
		Search:   s.search.Value(),
		Page:     s.page,
		Limit:    transactionsPageSize,
	}
}

// cycleType rotates the type filter: all -> expense -> income -> all.
func (s *transactionsState) cycleType() {
	switch s.filterType {
	case "":
		s.filterType = "expense"
	case "expense":
		s.filterType = "income"
	default:
		s.filterType = ""
	}
	s.page = 1
}

// cycleCategory rotates through the known category names plus "all".
func (s *transactionsState) cycleCategory() {
	if len(s.categories) == 0 {
		return
	}
	s.catIndex = (s.catIndex + 1) % (len(s.categories) + 1)
	if s.catIndex == 0 {
		s.category = ""
	} else {
		s.category = s.categories[s.catIndex-1]
	}
	s.page = 1
}

func (s *transactionsState) totalPages() int {
	if s.overview == nil || s.overview.TotalPages < 1 {
		return 1
	}
	return s.overview.TotalPages
}

// cycleSort rotates the sort column: date -> amount -> title.
func (s *transactionsState) cycleSort() {
	switch s.sortKey {
	case "date":
		s.sortKey = "amount"
	case "amount":
		s.sortKey = "title"
	default:
		s.sortKey = "date"
	}
}

// rows returns the fetched page sorted by the view's sort tuple. Sorting
// is local to the page; the server is only asked for filters and paging.
func (s *transactionsState) rows() []model.FinancialRecord {
	if s.overview == nil {
		return nil
	}
	rows := make([]model.FinancialRecord, len(s.overview.Transactions))
	copy(rows, s.overview.Transactions)

	sort.SliceStable(rows, func(i, j int) bool {
		if !s.sortAsc {
			i, j = j, i
		}
		switch s.sortKey {
		case "amount":
			return rows[i].Amount < rows[j].Amount
		case "title":
			return rows[i].Title < rows[j].Title
		default:
			return rows[i].Date.Before(rows[j].Date)
		}
	})
	return rows
}

func (s *transactionsState) update(msg tea.Msg, m *Model) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	// While the search input has focus it swallows every key except the
	// ones that leave search mode.
	if s.searching {
		switch key.String() {
		case "enter", "esc":
			s.searching = false
			s.search.Blur()
			s.page = 1
			s.loading = true
			return m.loadTransactions(s.query())
		default:
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			return cmd
		}
	}

	switch key.String() {
	case "/":
		s.searching = true
		s.search.Focus()
		return nil
	case "f":
		s.cycleType()
		s.loading = true
		return m.loadTransactions(s.query())
	case "c":
		s.cycleCategory()
		s.loading = true
		return m.loadTransactions(s.query())
	case "[":
		if s.page > 1 {
			s.page--
			s.loading = true
			return m.loadTransactions(s.query())
		}
	case "]":
		if s.page < s.totalPages() {
			s.page++
			s.loading = true
			return m.loadTransactions(s.query())
		}
	case "j", "down":
		if s.cursor < len(s.rows())-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "d":
		rows := s.rows()
		if s.cursor < len(rows) {
			return m.deleteTransaction(rows[s.cursor].ID)
		}
	case "s":
		s.cycleSort()
	case "o":
		s.sortAsc = !s.sortAsc
	case "r":
		s.loading = true
		return m.loadTransactions(s.query())
	}
	return nil
}

func (m Model) viewTransactions() string {
	s := m.transactions
	out := m.theme.Title.Render("Transactions") + "\n"

	filterType := s.filterType
	if filterType == "" {
		filterType = "all"
	}
	category := s.category
	if category == "" {
		category = "all"
	}
	out += m.theme.Subtitle.Render(fmt.Sprintf("type: %s · category: %s", filterType, category)) + "\n"
	out += s.search.View() + "\n\n"

	switch {
	case s.loading:
		return out + m.spin.View() + " loading…"
	case s.err != nil:
		return out + m.theme.StatusError.Render(s.err.Error()) + "\n" +
			m.theme.Subtitle.Render("r to retry")
	}

	rows := s.rows()
	if len(rows) == 0 {
		out += m.theme.Subtitle.Render("No transactions match.") + "\n"
	} else {
		if s.overview != nil {
			k := s.overview.KPIs
			out += fmt.Sprintf("%s %s   %s %s   %s %s\n\n",
				m.theme.Subtitle.Render("in"), m.theme.Income.Render(money(k.TotalIncome)),
				m.theme.Subtitle.Render("out"), m.theme.Expense.Render(money(k.TotalExpenses)),
				m.theme.Subtitle.Render("net"), m.theme.Bold.Render(money(k.NetBalance)))
		}
		for i, r := range rows {
			amount := m.theme.Income.Render("+" + money(r.Amount))
			if r.Type == model.RecordTypeExpense {
				amount = m.theme.Expense.Render("-" + money(r.Amount))
			}
			line := fmt.Sprintf("%s  %-24s %-12s %s",
				r.Date.Format("2006-01-02"), truncate(r.Title, 24), r.Category, amount)
			if i == s.cursor {
				line = m.theme.Selected.Render(line)
			}
			out += line + "\n"
		}
	}

	order := "desc"
	if s.sortAsc {
		order = "asc"
	}
	out += "\n" + m.theme.Subtitle.Render(fmt.Sprintf("page %d of %d · sort %s %s · [/] pages · f type · c category · s/o sort · / search · d delete",
		s.page, s.totalPages(), s.sortKey, order))
	return out
}
