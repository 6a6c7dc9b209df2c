package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sharma7422/fintrack/internal/cli"
	"github.com/Sharma7422/fintrack/internal/config"
	"github.com/Sharma7422/fintrack/internal/model"
)

func overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the dashboard summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			overview, err := client.DashboardOverview(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Println(cli.FormatTitle("Overview"))
			printKPIs(cmd, overview.TotalIncome, overview.TotalExpenses, overview.NetBalance)

			if len(overview.Insights) > 0 {
				cmd.Println()
				for _, insight := range overview.Insights {
					cmd.Println("  • " + insight.Text)
				}
			}
			if len(overview.Upcoming.Bills) > 0 {
				cmd.Println()
				cmd.Println(cli.SubtitleStyle.Render("Upcoming bills"))
				for _, bill := range overview.Upcoming.Bills {
					cmd.Printf("  %s  %-24s $%.2f\n", bill.DueDate.Format("Jan 02"), clip(bill.Name, 24), bill.Amount)
				}
			}
			return nil
		},
	}
}

func analyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show spending analytics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			overview, err := client.AnalyticsOverview(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Println(cli.FormatTitle("Analytics"))
			if len(overview.BarChart) > 0 {
				cmd.Println(cli.SubtitleStyle.Render("Monthly totals"))
				printSeries(cmd, overview.BarChart)
			}
			if len(overview.DonutChart) > 0 {
				cmd.Println(cli.SubtitleStyle.Render("Spending by category"))
				for _, c := range overview.DonutChart {
					cmd.Printf("  %-20s $%.2f\n", clip(c.Category, 20), c.Total)
				}
			}
			if len(overview.Budgets) > 0 {
				cmd.Println(cli.SubtitleStyle.Render("Budget usage"))
				for _, b := range overview.Budgets {
					cmd.Printf("  %-20s $%.2f of $%.2f\n", clip(b.Category, 20), b.Spent, b.Limit)
				}
			}
			return nil
		},
	}
}

func insightsCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show spending insights for a period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			overview, err := client.InsightsOverview(cmd.Context(), period)
			if err != nil {
				return err
			}

			cmd.Println(cli.FormatTitle("Insights (" + period + ")"))
			printKPIs(cmd, overview.KPIs.TotalIncome, overview.KPIs.TotalExpenses, overview.KPIs.NetSavings)

			if len(overview.PieData) > 0 {
				cmd.Println()
				for _, c := range overview.PieData {
					cmd.Printf("  %-20s $%.2f\n", clip(c.Category, 20), c.Total)
				}
			}
			for _, insight := range overview.Insights {
				cmd.Println("  • " + insight.Text)
			}
			for _, prediction := range overview.Predictions {
				cmd.Println(cli.SubtleStyle.Render("  → " + prediction.Text))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", config.DefaultPeriod, "period (weekly, monthly, yearly)")
	return cmd
}

func printKPIs(cmd *cobra.Command, income, expenses, net float64) {
	cmd.Printf("%s %s   %s %s   %s %s\n",
		cli.SubtleStyle.Render("income"), cli.IncomeStyle.Render(fmt.Sprintf("$%.2f", income)),
		cli.SubtleStyle.Render("expenses"), cli.ExpenseStyle.Render(fmt.Sprintf("$%.2f", expenses)),
		cli.SubtleStyle.Render("net"), cli.BoldStyle.Render(fmt.Sprintf("$%.2f", net)))
}

func printSeries(cmd *cobra.Command, points []model.SeriesPoint) {
	max := 0.0
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	for _, p := range points {
		width := 0
		if max > 0 {
			width = int(p.Value / max * 24)
		}
		bar := ""
		for i := 0; i < width; i++ {
			bar += "█"
		}
		cmd.Printf("  %-12s %s $%.2f\n", clip(p.Label, 12), bar, p.Value)
	}
}
