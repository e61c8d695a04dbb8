package config

import (
	"strconv"

	"ro-start/internal/apperr"
)

// SettableKeys lists the keys accepted by Set.
func SettableKeys() []string {
	return []string{"language", "theme", "autostart", "update_timeout_secs"}
}

// Set assigns a field by its TOML key from a string value. app_name and
// version are not user-settable.
func (c *AppConfig) Set(key, value string) error {
	switch key {
	case "language":
		c.Language = value
	case "theme":
		c.Theme = value
	case "autostart":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return apperr.New(apperr.KindConfig, "autostart expects true or false", err)
		}
		c.Autostart = b
	case "update_timeout_secs":
		n, err := strconv.Atoi(value)
		if err != nil {
			return apperr.New(apperr.KindConfig, "update_timeout_secs expects an integer", err)
		}
		c.UpdateTimeoutSecs = n
	default:
		return apperr.Errorf(apperr.KindConfig, "unknown key %q", key)
	}
	return c.Validate()
}
