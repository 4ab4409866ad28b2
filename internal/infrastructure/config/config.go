// Package config loads the optional workspace settings file and GROONA_*
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings are the workspace-level tunables. None are required; the zero
// config is a working config.
type Settings struct {
	// HoursPerDay replaces the engine's 8h/day capacity default when
	// positive.
	HoursPerDay float64
	// DashboardAddr is the listen address for `groona dashboard`.
	DashboardAddr string
	// WatchDebounceMs is the quiet window for `groona watch`.
	WatchDebounceMs int
}

// Load reads .groona/config.yaml under root, then applies environment
// overrides (GROONA_HOURS_PER_DAY and friends). A missing config file is
// not an error.
func Load(root string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("hours_per_day", 0.0)
	v.SetDefault("dashboard_addr", ":8090")
	v.SetDefault("watch_debounce_ms", 500)
	v.SetEnvPrefix("GROONA")
	v.AutomaticEnv()

	path := filepath.Join(root, ".groona", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return &Settings{
		HoursPerDay:     v.GetFloat64("hours_per_day"),
		DashboardAddr:   v.GetString("dashboard_addr"),
		WatchDebounceMs: v.GetInt("watch_debounce_ms"),
	}, nil
}
