package main

import (
	"github.com/spf13/cobra"

	"github.com/Sharma7422/fintrack/internal/config"
	"github.com/Sharma7422/fintrack/internal/tui"
)

func dashboardCmd() *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open the full-screen dashboard. A stored session is picked up
automatically; otherwise the dashboard starts on the sign-in page.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := initState()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			client, err := initGateway(state)
			if err != nil {
				return err
			}

			if theme == "" {
				theme = config.Theme()
			}
			return tui.Run(cmd.Context(), tui.Config{
				Backend: client,
				Records: initRecordStore(client),
				State:   state,
				Theme:   theme,
			})
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "color theme (dark, light, auto)")
	return cmd
}
