package model

// KPISet holds the headline totals shown at the top of a page.
type KPISet struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetBalance    float64 `json:"netBalance"`
}

// SeriesPoint is one labelled value in a chart series (pie slices, bar
// heights, line points).
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// DashboardOverview is the server-computed summary for the home page.
type DashboardOverview struct {
	TotalIncome   float64           `json:"totalIncome"`
	TotalExpenses float64           `json:"totalExpenses"`
	NetBalance    float64           `json:"netBalance"`
	Insights      []Insight         `json:"insights,omitempty"`
	RecentRecords []FinancialRecord `json:"recentRecords,omitempty"`
	Upcoming      UpcomingBills     `json:"upcoming"`
}

// UpcomingBills groups the bills due soon for the dashboard widget.
type UpcomingBills struct {
	Bills []Bill `json:"bills"`
}

// Insight is one server-generated observation about spending behaviour.
type Insight struct {
	Text string `json:"text"`
}

// TransactionsOverview is the paginated transactions payload with its KPIs.
type TransactionsOverview struct {
	Transactions []FinancialRecord `json:"transactions"`
	KPIs         KPISet            `json:"kpis"`
	TotalPages   int               `json:"totalPages"`
}

// TransactionQuery is the filter tuple a transactions view sends with the
// overview request. Zero values mean "unfiltered".
type TransactionQuery struct {
	Type     string
	Category string
	Search   string
	Page     int
	Limit    int
}

// AnalyticsOverview carries the chart series for the analytics page.
type AnalyticsOverview struct {
	LineChart  []SeriesPoint   `json:"lineChart,omitempty"`
	DonutChart []CategoryTotal `json:"donutChart,omitempty"`
	BarChart   []SeriesPoint   `json:"barChart,omitempty"`
	Budgets    []Budget        `json:"budgets,omitempty"`
}

// CategoryTotal is a per-category aggregate used by donut charts and
// budget comparisons.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// BudgetOverview is the budgets page payload.
type BudgetOverview struct {
	Budgets []Budget `json:"budgets"`
}

// InsightsOverview is the insights page payload for one period.
type InsightsOverview struct {
	KPIs        InsightsKPIs    `json:"kpis"`
	PieData     []CategoryTotal `json:"pieData,omitempty"`
	LineChart   []SeriesPoint   `json:"lineChart,omitempty"`
	Insights    []Insight       `json:"insights,omitempty"`
	Predictions []Insight       `json:"predictions,omitempty"`
	Trends      []SeriesPoint   `json:"trends,omitempty"`
}

// InsightsKPIs mirrors KPISet but reports savings instead of balance,
// matching the insights endpoint's payload.
type InsightsKPIs struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetSavings    float64 `json:"netSavings"`
}
