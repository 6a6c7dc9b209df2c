package main

import (
	"fmt"
	"time"

	"github.com/Sharma7422/fintrack/internal/cli"
	"github.com/Sharma7422/fintrack/internal/common"
	"github.com/Sharma7422/fintrack/internal/config"
	"github.com/Sharma7422/fintrack/internal/gateway"
	"github.com/Sharma7422/fintrack/internal/model"
	"github.com/Sharma7422/fintrack/internal/session"
	"github.com/Sharma7422/fintrack/internal/store"
)

// initState opens the local state database holding the session and
// preferences. Callers own the Close.
func initState() (*session.Storage, error) {
	state, err := session.NewStorage(config.StatePath())
	if err != nil {
		return nil, fmt.Errorf("failed to open local state: %w", err)
	}
	return state, nil
}

// initGateway wires a client against the configured origin, reading the
// bearer token from local state on every request.
func initGateway(state *session.Storage) (*gateway.Client, error) {
	origin, err := config.APIOrigin()
	if err != nil {
		return nil, err
	}
	return gateway.New(origin, state), nil
}

// initSignedIn is the common preamble for commands that need a session:
// local state, a gateway, and a guard check that someone is signed in.
func initSignedIn() (*session.Storage, *gateway.Client, error) {
	state, err := initState()
	if err != nil {
		return nil, nil, err
	}

	sess, err := state.LoadSession()
	if err != nil {
		_ = state.Close()
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !sess.Authenticated() {
		_ = state.Close()
		return nil, nil, common.NewUserError(
			"you are not signed in; run: fintrack auth login", common.ErrNoSession)
	}

	client, err := initGateway(state)
	if err != nil {
		_ = state.Close()
		return nil, nil, err
	}
	return state, client, nil
}

// initRecordStore builds the shared record cache over the gateway.
func initRecordStore(client *gateway.Client) *store.RecordStore {
	return store.New(client)
}

// formatRecordRow renders one record as a table row.
func formatRecordRow(r model.FinancialRecord) string {
	amount := cli.FormatAmount(string(r.Type), fmt.Sprintf("$%.2f", r.Amount))
	return fmt.Sprintf("%s  %-28s %-16s %10s",
		r.Date.Format("2006-01-02"), clip(r.Title, 28), clip(r.Category, 16), amount)
}

// clip shortens s to at most n runes.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// parseDate accepts the date formats the commands take on flags.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}
