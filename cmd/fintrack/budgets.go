package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sharma7422/fintrack/internal/cli"
	"github.com/Sharma7422/fintrack/internal/gateway"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage per-category budgets",
	}

	cmd.AddCommand(budgetsListCmd())
	cmd.AddCommand(budgetsSetCmd())
	cmd.AddCommand(budgetsEditCmd())
	cmd.AddCommand(budgetsDeleteCmd())
	return cmd
}

func budgetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with server-computed spend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			overview, err := client.BudgetOverview(cmd.Context())
			if err != nil {
				return err
			}
			if len(overview.Budgets) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No budgets yet. Create one with: fintrack budgets set"))
				return nil
			}

			for _, b := range overview.Budgets {
				spent := fmt.Sprintf("$%.2f of $%.2f", b.Spent, b.Limit)
				line := fmt.Sprintf("%s  %-20s %s", cli.SubtleStyle.Render(b.ID), clip(b.Category, 20), spent)
				if b.Spent > b.Limit {
					line += "  " + cli.ErrorStyle.Render("over budget")
				} else {
					line += "  " + cli.SubtleStyle.Render(fmt.Sprintf("$%.2f left", b.Remaining()))
				}
				cmd.Println(line)
			}
			return nil
		},
	}
}

func budgetsSetCmd() *cobra.Command {
	var (
		name  string
		icon  string
		limit float64
	)

	cmd := &cobra.Command{
		Use:   "set <category>",
		Short: "Create a budget for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			budget, err := client.AddBudget(cmd.Context(), gateway.BudgetDraft{
				Category: args[0],
				Name:     name,
				Icon:     icon,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s set at $%.2f", budget.Category, budget.Limit)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&icon, "icon", "", "display icon")
	cmd.Flags().Float64Var(&limit, "limit", 0, "spending limit")
	_ = cmd.MarkFlagRequired("limit")
	return cmd
}

func budgetsEditCmd() *cobra.Command {
	var (
		category string
		name     string
		icon     string
		limit    float64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a budget's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			budget, err := client.UpdateBudget(cmd.Context(), args[0], gateway.BudgetDraft{
				Category: category,
				Name:     name,
				Icon:     icon,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %s now $%.2f", budget.Category, budget.Limit)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category name")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&icon, "icon", "", "display icon")
	cmd.Flags().Float64Var(&limit, "limit", 0, "spending limit")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("limit")
	return cmd
}

func budgetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			if err := client.DeleteBudget(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Deleted " + args[0]))
			return nil
		},
	}
}
