package main

import (
	"github.com/spf13/cobra"

	"github.com/Sharma7422/fintrack/internal/cli"
)

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "View and acknowledge notifications",
	}

	cmd.AddCommand(notificationsListCmd())
	cmd.AddCommand(notificationsReadCmd())
	return cmd
}

func notificationsListCmd() *cobra.Command {
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			notifications, err := client.Notifications(cmd.Context())
			if err != nil {
				return err
			}

			shown := 0
			for _, n := range notifications {
				if unreadOnly && n.Read {
					continue
				}
				shown++
				marker := "  "
				if !n.Read {
					marker = cli.BoldStyle.Render("● ")
				}
				cmd.Printf("%s%s  %s\n", marker, cli.SubtleStyle.Render(n.ID), n.Title)
				if n.Message != "" {
					cmd.Println("    " + cli.SubtleStyle.Render(n.Message))
				}
			}
			if shown == 0 {
				cmd.Println(cli.SubtleStyle.Render("No notifications."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "only show unread notifications")
	return cmd
}

func notificationsReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			if err := client.MarkNotificationRead(cmd.Context(), args[0]); err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess("Marked " + args[0] + " as read"))
			return nil
		},
	}
}
