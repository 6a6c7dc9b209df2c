package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sharma7422/fintrack/internal/cli"
	"github.com/Sharma7422/fintrack/internal/model"
)

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Manage financial records",
	}

	cmd.AddCommand(recordsListCmd())
	cmd.AddCommand(recordsAddCmd())
	cmd.AddCommand(recordsEditCmd())
	cmd.AddCommand(recordsDeleteCmd())
	return cmd
}

func recordsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all records",
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
			if len(all) == 0 {
				cmd.Println(cli.SubtleStyle.Render("No records yet. Add one with: fintrack records add"))
				return nil
			}

			cmd.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-10s  %-28s %-16s %10s", "Date", "Title", "Category", "Amount")))
			for _, r := range all {
				cmd.Printf("%s  %s\n", cli.SubtleStyle.Render(r.ID), formatRecordRow(r))
			}
			return nil
		},
	}
}

// recordDraftFlags binds the shared draft flags for add and edit.
type recordDraftFlags struct {
	title    string
	category string
	kind     string
	date     string
	notes    string
	amount   float64
}

func (f *recordDraftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "record title")
	cmd.Flags().StringVar(&f.category, "category", "", "category name")
	cmd.Flags().StringVar(&f.kind, "type", "expense", "record type (income, expense)")
	cmd.Flags().StringVar(&f.date, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-form notes")
	cmd.Flags().Float64Var(&f.amount, "amount", 0, "amount, always positive")
}

func (f *recordDraftFlags) draft() (model.RecordDraft, error) {
	date, err := parseDate(f.date)
	if err != nil {
		return model.RecordDraft{}, err
	}
	draft := model.RecordDraft{
		Title:    f.title,
		Category: f.category,
		Type:     model.RecordType(f.kind),
		Date:     date,
		Notes:    f.notes,
		Amount:   f.amount,
	}
	return draft, draft.Validate()
}

func recordsAddCmd() *cobra.Command {
	var flags recordDraftFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a record",
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

			record, err := initRecordStore(client).Add(cmd.Context(), draft)
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

func recordsEditCmd() *cobra.Command {
	var flags recordDraftFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a record's fields",
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

			record, err := initRecordStore(client).Update(cmd.Context(), args[0], draft)
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

func recordsDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !force {
				prompter := cli.NewPrompter(os.Stdin, cmd.OutOrStdout())
				ok, err := prompter.Confirm(ctx, "delete record "+args[0]+"?", false)
				if err != nil {
					return err
				}
				if !ok {
					cmd.Println(cli.FormatInfo("Aborted"))
					return nil
				}
			}

			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			if err := initRecordStore(client).Remove(ctx, args[0]); err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Deleted " + args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}
