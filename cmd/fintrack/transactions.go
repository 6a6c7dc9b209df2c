package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sharma7422/fintrack/internal/cli"
	"github.com/Sharma7422/fintrack/internal/model"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Browse transactions with filters",
	}

	cmd.AddCommand(transactionsListCmd())
	cmd.AddCommand(transactionsAddCmd())
	cmd.AddCommand(transactionsEditCmd())
	cmd.AddCommand(transactionsDeleteCmd())
	return cmd
}

func transactionsListCmd() *cobra.Command {
	var (
		kind     string
		category string
		search   string
		page     int
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			overview, err := client.TransactionsOverview(cmd.Context(), model.TransactionQuery{
				Type:     kind,
				Category: category,
				Search:   search,
				Page:     page,
				Limit:    limit,
			})
			if err != nil {
				return err
			}

			cmd.Printf("%s %s   %s %s   %s %s\n\n",
				cli.SubtleStyle.Render("income"), cli.IncomeStyle.Render(fmt.Sprintf("$%.2f", overview.KPIs.TotalIncome)),
				cli.SubtleStyle.Render("expenses"), cli.ExpenseStyle.Render(fmt.Sprintf("$%.2f", overview.KPIs.TotalExpenses)),
				cli.SubtleStyle.Render("net"), cli.BoldStyle.Render(fmt.Sprintf("$%.2f", overview.KPIs.NetBalance)))

			if len(overview.Transactions) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No transactions match the filters."))
				return nil
			}

			for _, r := range overview.Transactions {
				cmd.Printf("%s  %s\n", cli.SubtleStyle.Render(r.ID), formatRecordRow(r))
			}
			cmd.Println(cli.SubtleStyle.Render(fmt.Sprintf("\npage %d of %d", page, overview.TotalPages)))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "filter by type (income, expense)")
	cmd.Flags().StringVar(&category, "category", "", "filter by category name")
	cmd.Flags().StringVar(&search, "search", "", "match against title and notes")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "page size")
	return cmd
}

func transactionsAddCmd() *cobra.Command {
	var flags recordDraftFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := flags.draft()
			if err != nil {
				return err
			}

			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			record, err := client.AddTransaction(cmd.Context(), draft)
			if err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Added " + record.Title + " (" + record.ID + ")"))
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func transactionsEditCmd() *cobra.Command {
	var flags recordDraftFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a transaction's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := flags.draft()
			if err != nil {
				return err
			}

			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			record, err := client.UpdateTransaction(cmd.Context(), args[0], draft)
			if err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Updated " + record.Title))
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func transactionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			if err := client.DeleteTransaction(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Deleted " + args[0]))
			return nil
		},
	}
}
