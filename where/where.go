// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/nextep-cli/nextep/constant"
	"github.com/nextep-cli/nextep/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable used to override the default configuration directory.
const EnvConfigPath = "NEXTEP_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the application configuration directory.
// NEXTEP_CONFIG_PATH takes precedence over the platform user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Nextep))
}

// Cache resolves the absolute path to the application's cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Nextep))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Shows resolves the watchlist file, one show identifier per line.
func Shows() string {
	return filepath.Join(Config(), "shows.txt")
}

// Queries resolves the registry of remembered show identifiers used for completion.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}
