package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"ro-start/internal/apperr"
)

const (
	appDir   = "ro-start"
	fileName = "config.toml"

	// LanguageAuto selects the locale from the environment.
	LanguageAuto = "auto"
)

// AppConfig is the persisted user configuration.
type AppConfig struct {
	AppName   string `toml:"app_name" json:"app_name" yaml:"app_name"`
	Version   string `toml:"version" json:"version" yaml:"version"`
	Autostart bool   `toml:"autostart" json:"autostart" yaml:"autostart"`
	Language  string `toml:"language" json:"language" yaml:"language"`
	Theme     string `toml:"theme" json:"theme" yaml:"theme"`
	// UpdateTimeoutSecs bounds one update check; 0 disables the limit.
	UpdateTimeoutSecs int `toml:"update_timeout_secs" json:"update_timeout_secs" yaml:"update_timeout_secs"`
}

// Default returns the configuration used when no file exists.
func Default() AppConfig {
	return AppConfig{
		AppName:   "Ro-Start",
		Version:   "1.0.0",
		Autostart: false,
		Language:  LanguageAuto,
		Theme:     "system",
	}
}

// UpdateTimeout is UpdateTimeoutSecs as a duration.
func (c AppConfig) UpdateTimeout() time.Duration {
	return time.Duration(c.UpdateTimeoutSecs) * time.Second
}

// LanguageOptions is the allow-list for the language field, in display order.
func LanguageOptions() []string {
	return []string{LanguageAuto, "en_US", "tr_TR", "de", "es", "fr", "it", "ja", "ru", "zh"}
}

// ThemeOptions is the allow-list for the theme field.
func ThemeOptions() []string {
	return []string{"system", "light", "dark"}
}

// Validate checks fields against their allow-lists.
func (c AppConfig) Validate() error {
	if !slices.Contains(LanguageOptions(), c.Language) {
		return apperr.Errorf(apperr.KindConfig, "invalid language %q", c.Language)
	}
	if !slices.Contains(ThemeOptions(), c.Theme) {
		return apperr.Errorf(apperr.KindConfig, "invalid theme %q", c.Theme)
	}
	if c.UpdateTimeoutSecs < 0 {
		return apperr.Errorf(apperr.KindConfig, "update_timeout_secs must not be negative")
	}
	return nil
}

// DefaultPath returns <user config dir>/ro-start/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", apperr.New(apperr.KindConfig, "failed to get config directory", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads the file at path. A missing file yields Default with no error.
// Fields absent from the file keep their default values and unknown keys are
// ignored.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("config file not found, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, apperr.New(apperr.KindIO, "failed to read config file", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), apperr.New(apperr.KindConfig, "failed to parse config file", err)
	}
	return cfg, nil
}

// Save validates cfg and writes it to path, creating parent directories. The
// file is readable only by its owner.
func Save(path string, cfg AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return apperr.New(apperr.KindIO, "failed to create config directory", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return apperr.New(apperr.KindConfig, "failed to serialize config", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return apperr.New(apperr.KindIO, "failed to write config file", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0o600); err != nil {
		return apperr.New(apperr.KindIO, "failed to restrict config file permissions", err)
	}

	slog.Info("config saved", "path", path)
	return nil
}

// Store serialises access to one config file.
type Store struct {
	mu   sync.RWMutex
	path string
	cfg  AppConfig
}

// Open loads path into a new Store. On a load error the Store still holds the
// defaults so the caller can keep running.
func Open(path string) (*Store, error) {
	cfg, err := Load(path)
	return &Store{path: path, cfg: cfg}, err
}

// Path is the backing file.
func (s *Store) Path() string { return s.path }

// Get returns a copy of the stored configuration.
func (s *Store) Get() AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update applies fn to a copy, validates and saves it, then publishes it.
// On any error the stored configuration is unchanged.
func (s *Store) Update(fn func(*AppConfig)) (AppConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cfg
	fn(&next)
	if err := Save(s.path, next); err != nil {
		return s.cfg, fmt.Errorf("update config: %w", err)
	}
	s.cfg = next
	return next, nil
}

// Effective is Get with environment overrides applied. Invalid override
// values are ignored.
func (s *Store) Effective(getenv func(string) string) AppConfig {
	return ApplyEnv(s.Get(), getenv)
}
