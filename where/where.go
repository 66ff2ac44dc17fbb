// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/huewheel/huewheel/constant"
	"github.com/huewheel/huewheel/filesystem"
	"github.com/huewheel/huewheel/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable used to override the default configuration directory.
const EnvConfigPath = "HUEWHEEL_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the application configuration directory.
// HUEWHEEL_CONFIG_PATH takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Huewheel))
}

// Cache resolves the application cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Huewheel))
}

// Logs resolves the directory daily log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Rules resolves the directory holding custom Lua harmony rules.
func Rules() string {
	return ensureDir(filepath.Join(Config(), "rules"))
}

// Queries resolves the search query suggestion registry.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// History resolves the registry of recently generated palettes.
func History() string {
	return filepath.Join(Cache(), "history.json")
}

// Exports resolves the directory palettes and schemes are exported to.
// An empty export.dir means the working directory.
func Exports() string {
	if dir := viper.GetString(key.ExportDir); dir != "" {
		return ensureDir(dir)
	}

	return lo.Must(os.Getwd())
}

// Temp resolves a volatile directory for transient artifacts such as rendered wheels.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Huewheel))
}
