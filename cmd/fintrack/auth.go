package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sharma7422/fintrack/internal/cli"
	"github.com/Sharma7422/fintrack/internal/gateway"
	"github.com/Sharma7422/fintrack/internal/model"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the signed-in session",
	}

	cmd.AddCommand(loginCmd())
	cmd.AddCommand(registerCmd())
	cmd.AddCommand(logoutCmd())
	cmd.AddCommand(whoamiCmd())
	cmd.AddCommand(forgotPasswordCmd())
	cmd.AddCommand(resetPasswordCmd())
	return cmd
}

func loginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			state, err := initState()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			client, err := initGateway(state)
			if err != nil {
				return err
			}

			prompter := cli.NewPrompter(os.Stdin, cmd.OutOrStdout())
			if email == "" {
				if email, err = prompter.Line(ctx, "email"); err != nil {
					return err
				}
			}
			password, err := prompter.Password(ctx, "password")
			if err != nil {
				return err
			}

			resp, err := client.Login(ctx, email, password)
			if err != nil {
				return describeAuthFailure(err)
			}
			if err := state.SaveSession(model.Session{Token: resp.Token, User: resp.User}); err != nil {
				return fmt.Errorf("failed to persist session: %w", err)
			}

			cmd.Println(cli.FormatSuccess("Signed in as " + resp.User.Email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (prompted when omitted)")
	return cmd
}

func registerCmd() *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			state, err := initState()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			client, err := initGateway(state)
			if err != nil {
				return err
			}

			prompter := cli.NewPrompter(os.Stdin, cmd.OutOrStdout())
			if name == "" {
				if name, err = prompter.Line(ctx, "name"); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = prompter.Line(ctx, "email"); err != nil {
					return err
				}
			}
			password, err := prompter.Password(ctx, "password")
			if err != nil {
				return err
			}

			resp, err := client.Register(ctx, gateway.RegisterRequest{
				Name:     name,
				Email:    email,
				Password: password,
			})
			if err != nil {
				return describeAuthFailure(err)
			}
			if err := state.SaveSession(model.Session{Token: resp.Token, User: resp.User}); err != nil {
				return fmt.Errorf("failed to persist session: %w", err)
			}

			cmd.Println(cli.FormatSuccess("Account created, signed in as " + resp.User.Email))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (prompted when omitted)")
	cmd.Flags().StringVar(&email, "email", "", "account email (prompted when omitted)")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := initState()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			if err := state.ClearSession(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			cmd.Println(cli.FormatSuccess("Signed out"))
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			user, err := client.CurrentUser(cmd.Context())
			if err != nil {
				return describeAuthFailure(err)
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

func forgotPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password <email>",
		Short: "Request a password reset code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := initState()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			client, err := initGateway(state)
			if err != nil {
				return err
			}

			if err := client.ForgotPassword(cmd.Context(), args[0]); err != nil {
				return describeAuthFailure(err)
			}
			cmd.Println(cli.FormatSuccess("Reset code sent to " + args[0]))
			cmd.Println(cli.FormatInfo("Complete it with: fintrack auth reset-password " + args[0]))
			return nil
		},
	}
}

func resetPasswordCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "reset-password <email>",
		Short: "Set a new password using a reset code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			state, err := initState()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			client, err := initGateway(state)
			if err != nil {
				return err
			}

			prompter := cli.NewPrompter(os.Stdin, cmd.OutOrStdout())
			if code == "" {
				if code, err = prompter.Line(ctx, "reset code"); err != nil {
					return err
				}
			}
			password, err := prompter.Password(ctx, "new password")
			if err != nil {
				return err
			}

			if err := client.ResetPassword(ctx, args[0], code, password); err != nil {
				return describeAuthFailure(err)
			}
			cmd.Println(cli.FormatSuccess("Password updated, sign in with: fintrack auth login"))
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "reset code from the email (prompted when omitted)")
	return cmd
}

// describeAuthFailure translates gateway error kinds into actionable
// messages without losing the underlying error.
func describeAuthFailure(err error) error {
	kind, ok := gateway.KindOf(err)
	if !ok {
		return err
	}
	switch kind {
	case gateway.KindUnauthorized:
		return fmt.Errorf("credentials rejected: %w", err)
	case gateway.KindNetworkUnreachable:
		return fmt.Errorf("cannot reach the backend, check api.origin: %w", err)
	default:
		return err
	}
}
