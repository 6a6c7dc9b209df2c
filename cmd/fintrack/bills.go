package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sharma7422/fintrack/internal/cli"
	"github.com/Sharma7422/fintrack/internal/gateway"
)

func billsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "Manage calendar bills",
	}

	cmd.AddCommand(billsListCmd())
	cmd.AddCommand(billsAddCmd())
	cmd.AddCommand(billsEditCmd())
	cmd.AddCommand(billsDeleteCmd())
	return cmd
}

func billsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bills by due date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			bills, err := client.Bills(cmd.Context())
			if err != nil {
				return err
			}
			if len(bills) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No bills on the calendar."))
				return nil
			}

			sort.Slice(bills, func(i, j int) bool { return bills[i].DueDate.Before(bills[j].DueDate) })
			now := time.Now()
			for _, b := range bills {
				line := fmt.Sprintf("%s  %s  %-24s $%.2f",
					cli.SubtleStyle.Render(b.ID), b.DueDate.Format("2006-01-02"), clip(b.Name, 24), b.Amount)
				switch {
				case b.DueDate.Before(now):
					line += "  " + cli.ErrorStyle.Render("overdue")
				case b.DueWithin(now, 7*24*time.Hour):
					line += "  " + cli.WarningStyle.Render("due soon")
				}
				cmd.Println(line)
			}
			return nil
		},
	}
}

func billsAddCmd() *cobra.Command {
	var (
		due    string
		amount float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDate(due)
			if err != nil {
				return err
			}

			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			bill, err := client.AddBill(cmd.Context(), gateway.BillDraft{
				Name:    args[0],
				Amount:  amount,
				DueDate: dueDate,
			})
			if err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Added %s due %s", bill.Name, bill.DueDate.Format("2006-01-02"))))
			return nil
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "bill amount")
	_ = cmd.MarkFlagRequired("due")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func billsEditCmd() *cobra.Command {
	var (
		name   string
		due    string
		amount float64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a bill's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dueDate, err := parseDate(due)
			if err != nil {
				return err
			}

			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			bill, err := client.UpdateBill(cmd.Context(), args[0], gateway.BillDraft{
				Name:    name,
				Amount:  amount,
				DueDate: dueDate,
			})
			if err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Updated " + bill.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "bill name")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "bill amount")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("due")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func billsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a bill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			if err := client.DeleteBill(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Deleted " + args[0]))
			return nil
		},
	}
}
