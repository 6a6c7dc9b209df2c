package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sharma7422/fintrack/internal/cli"
	"github.com/Sharma7422/fintrack/internal/export"
	"github.com/Sharma7422/fintrack/internal/model"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data as CSV",
	}

	cmd.AddCommand(exportCategoriesCmd())
	cmd.AddCommand(exportTransactionsCmd())
	return cmd
}

// openExportTarget opens the output file, or stdout for "-".
func openExportTarget(path string) (*os.File, func(), error) {
	if path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func exportCategoriesCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Export categories and tags as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			set, err := client.Categories(cmd.Context())
			if err != nil {
				return err
			}

			target, closeTarget, err := openExportTarget(out)
			if err != nil {
				return err
			}
			defer closeTarget()

			if err := export.WriteCategories(target, set.Categories, set.Tags); err != nil {
				return err
			}
			if out != "-" {
				cmd.Println(cli.FormatSuccess(fmt.Sprintf("Wrote %d rows to %s", len(set.Categories)+len(set.Tags), out)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "categories.csv", `output file ("-" for stdout)`)
	return cmd
}

func exportTransactionsCmd() *cobra.Command {
	var (
		out  string
		kind string
	)

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Export records as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			records := initRecordStore(client)
			if err := records.FetchAll(cmd.Context()); err != nil {
				return err
			}

			all := records.Records()
			if kind != "" {
				filtered := make([]model.FinancialRecord, 0, len(all))
				for _, r := range all {
					if string(r.Type) == kind {
						filtered = append(filtered, r)
					}
				}
				all = filtered
			}

			target, closeTarget, err := openExportTarget(out)
			if err != nil {
				return err
			}
			defer closeTarget()

			if err := export.WriteTransactions(target, all, out != "-"); err != nil {
				return err
			}
			if out != "-" {
				cmd.Println(cli.FormatSuccess(fmt.Sprintf("Wrote %d rows to %s", len(all), out)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "transactions.csv", `output file ("-" for stdout)`)
	cmd.Flags().StringVar(&kind, "type", "", "only export one type (income, expense)")
	return cmd
}
