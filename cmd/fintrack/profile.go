package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Sharma7422/fintrack/internal/cli"
	"github.com/Sharma7422/fintrack/internal/gateway"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the account profile",
	}

	cmd.AddCommand(profileShowCmd())
	cmd.AddCommand(profileUpdateCmd())
	cmd.AddCommand(changePasswordCmd())
	cmd.AddCommand(deleteAccountCmd())
	return cmd
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			user, err := client.Profile(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Println(cli.BoldStyle.Render(user.Name))
			cmd.Println(user.Email)
			if user.Phone != "" {
				cmd.Println(user.Phone)
			}
			return nil
		},
	}
}

func profileUpdateCmd() *cobra.Command {
	var update gateway.ProfileUpdate

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Long:  `Update profile fields. Flags left unset keep their current value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			user, err := client.UpdateProfile(cmd.Context(), update)
			if err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Profile updated for " + user.Email))
			return nil
		},
	}

	cmd.Flags().StringVar(&update.Name, "name", "", "display name")
	cmd.Flags().StringVar(&update.Email, "email", "", "account email")
	cmd.Flags().StringVar(&update.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&update.Avatar, "avatar", "", "avatar URL")
	return cmd
}

func changePasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change-password",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			prompter := cli.NewPrompter(os.Stdin, cmd.OutOrStdout())
			current, err := prompter.Password(ctx, "current password")
			if err != nil {
				return err
			}
			next, err := prompter.Password(ctx, "new password")
			if err != nil {
				return err
			}

			if err := client.ChangePassword(ctx, current, next); err != nil {
				return describeAuthFailure(err)
			}
			cmd.Println(cli.FormatSuccess("Password changed"))
			return nil
		},
	}
}

func deleteAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-account",
		Short: "Permanently delete the account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			prompter := cli.NewPrompter(os.Stdin, cmd.OutOrStdout())
			ok, err := prompter.Confirm(ctx, "permanently delete the account and all its data?", false)
			if err != nil {
				return err
			}
			if !ok {
				cmd.Println(cli.FormatInfo("Aborted"))
				return nil
			}

			if err := client.DeleteAccount(ctx); err != nil {
				return err
			}
			if err := state.ClearSession(); err != nil {
				cmd.Println(cli.FormatWarning("account deleted but local session cleanup failed: " + err.Error()))
				return nil
			}
			cmd.Println(cli.FormatSuccess("Account deleted"))
			return nil
		},
	}
}
