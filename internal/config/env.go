package config

import (
	"log/slog"
	"slices"
)

const (
	EnvLanguage = "RO_START_LANGUAGE"
	EnvTheme    = "RO_START_THEME"
)

// ApplyEnv overlays RO_START_* variables on cfg.
func ApplyEnv(cfg AppConfig, getenv func(string) string) AppConfig {
	if v := getenv(EnvLanguage); v != "" {
		if slices.Contains(LanguageOptions(), v) {
			cfg.Language = v
		} else {
			slog.Warn("ignoring invalid language override", "env", EnvLanguage, "value", v)
		}
	}
	if v := getenv(EnvTheme); v != "" {
		if slices.Contains(ThemeOptions(), v) {
			cfg.Theme = v
		} else {
			slog.Warn("ignoring invalid theme override", "env", EnvTheme, "value", v)
		}
	}
	return cfg
}
