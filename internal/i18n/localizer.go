package i18n

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
)

// Localizer is the localization context handed to UI code. It is a value
// bound to one catalog and one locale; switching language produces a new
// Localizer.
type Localizer struct {
	catalog *Catalog
	locale  string
}

// NewLocalizer binds catalog to locale. An unknown locale falls back to
// DefaultLocale.
func NewLocalizer(catalog *Catalog, locale string) *Localizer {
	if catalog == nil {
		catalog = NewCatalog()
	}
	if !catalog.Has(locale) {
		if locale != "" {
			slog.Warn("locale not available, using default", "locale", locale)
		}
		locale = DefaultLocale
	}
	return &Localizer{catalog: catalog, locale: locale}
}

// Locale is the active locale code.
func (l *Localizer) Locale() string { return l.locale }

// Catalog is the backing catalog.
func (l *Localizer) Catalog() *Catalog { return l.catalog }

// Available lists the catalog's locale codes.
func (l *Localizer) Available() []string { return l.catalog.Codes() }

// WithLocale returns a Localizer for code. If code is not available the
// receiver's locale is kept.
func (l *Localizer) WithLocale(code string) *Localizer {
	if !l.catalog.Has(code) {
		slog.Warn("locale not available, keeping current", "locale", code, "current", l.locale)
		return l
	}
	slog.Info("locale set", "locale", code)
	return &Localizer{catalog: l.catalog, locale: code}
}

// T returns a copy of the active table, or English if it is missing.
func (l *Localizer) T() Translations {
	if t, ok := l.catalog.Get(l.locale); ok {
		return t
	}
	return fallbackEN()
}

// Lookup resolves a dotted key such as "home.title". A missing key yields
// def[0] when given, otherwise the key itself.
func (l *Localizer) Lookup(key string, def ...string) string {
	section, field, ok := strings.Cut(key, ".")
	if ok {
		if v, found := l.flatten()[section][field]; found {
			return v
		}
	}
	if len(def) > 0 {
		return def[0]
	}
	return key
}

func (l *Localizer) flatten() map[string]map[string]string {
	out := map[string]map[string]string{}
	data, err := json.Marshal(l.T())
	if err != nil {
		return out
	}
	_ = json.Unmarshal(data, &out)
	return out
}

// Format substitutes {name} placeholders in s.
func Format(s string, args map[string]string) string {
	for k, v := range args {
		s = strings.ReplaceAll(s, "{"+k+"}", v)
	}
	return s
}

// Count substitutes a {count} placeholder.
func Count(s string, n int) string {
	return Format(s, map[string]string{"count": strconv.Itoa(n)})
}
