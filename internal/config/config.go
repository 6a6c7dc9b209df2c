// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sharma7422/fintrack/internal/common"
)

// Defaults applied when the config file and environment say nothing.
const (
	DefaultTheme  = "auto"
	DefaultPeriod = "monthly"
)

// APIOrigin returns the configured backend origin (scheme://host[:port]),
// without the /api suffix the gateway appends.
func APIOrigin() (string, error) {
	origin := viper.GetString("api.origin")
	if origin == "" {
		return "", common.NewUserError(
			"backend origin not configured; set api.origin in the config file or FINTRACK_API_ORIGIN",
			common.ErrMissingConfig)
	}
	return origin, nil
}

// StatePath returns the path of the local state database, creating a
// default under the user config directory when unset.
func StatePath() string {
	if path := viper.GetString("state.path"); path != "" {
		return ExpandPath(path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "fintrack-state.db"
	}
	return filepath.Join(home, ".config", "fintrack", "state.db")
}

// Theme returns the configured default theme.
func Theme() string {
	if theme := viper.GetString("theme"); theme != "" {
		return theme
	}
	return DefaultTheme
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
