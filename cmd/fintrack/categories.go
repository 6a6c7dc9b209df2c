package main

import (
	"github.com/spf13/cobra"

	"github.com/Sharma7422/fintrack/internal/cli"
	"github.com/Sharma7422/fintrack/internal/gateway"
	"github.com/Sharma7422/fintrack/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories and tags",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesRenameCmd())
	cmd.AddCommand(categoriesDeleteCmd())
	cmd.AddCommand(tagsCmd())
	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories and tags",
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

			cmd.Println(cli.FormatTitle("Categories"))
			if len(set.Categories) == 0 {
				cmd.Println(cli.SubtleStyle.Render("none"))
			}
			for _, c := range set.Categories {
				cmd.Printf("%s  %-24s %s\n", cli.SubtleStyle.Render(c.ID), c.Name, cli.SubtleStyle.Render(string(c.Type)))
			}

			cmd.Println()
			cmd.Println(cli.FormatTitle("Tags"))
			if len(set.Tags) == 0 {
				cmd.Println(cli.SubtleStyle.Render("none"))
			}
			for _, tag := range set.Tags {
				cmd.Printf("%s  %s\n", cli.SubtleStyle.Render(tag.ID), tag.Name)
			}
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			category, err := client.AddCategory(cmd.Context(), gateway.CategoryDraft{
				Name: args[0],
				Type: model.RecordType(kind),
			})
			if err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Added category " + category.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "expense", "category type (income, expense)")
	return cmd
}

func categoriesRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Long: `Rename a category. Records keep the category name they were saved
with, so renames do not rewrite history.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			category, err := client.UpdateCategory(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Renamed to " + category.Name))
			return nil
		},
	}
}

func categoriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			if err := client.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Deleted " + args[0]))
			return nil
		},
	}
}

func tagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage tags",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			tag, err := client.AddTag(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Added tag " + tag.Name))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			if err := client.DeleteTag(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Deleted " + args[0]))
			return nil
		},
	})

	return cmd
}
