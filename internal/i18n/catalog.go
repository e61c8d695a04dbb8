// Package i18n provides locale string tables and an explicit localization
// context that is threaded through the UI instead of process-wide state.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultLocale is used when detection finds nothing better.
const DefaultLocale = "en_US"

//go:embed locales/*.json
var embedded embed.FS

// Catalog maps locale codes to translations. It is immutable once built.
type Catalog struct {
	tables map[string]Translations
}

// NewCatalog returns a catalog with only the built-in English table.
func NewCatalog() *Catalog {
	return &Catalog{tables: map[string]Translations{DefaultLocale: fallbackEN()}}
}

// LoadCatalog builds the catalog from the embedded locale files, then applies
// any <code>.json files found in dir (typically assets/locales). An empty or
// missing dir is not an error. Files that fail to parse are logged and
// skipped.
func LoadCatalog(dir string) *Catalog {
	c := NewCatalog()
	c.loadFS(embedded, "locales")
	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			c.loadFS(os.DirFS(dir), ".")
		} else {
			slog.Debug("locale directory not found", "dir", dir)
		}
	}
	return c
}

func (c *Catalog) loadFS(fsys fs.FS, root string) {
	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		slog.Warn("failed to read locale directory", "root", root, "err", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		code := strings.TrimSuffix(e.Name(), ".json")
		data, err := fs.ReadFile(fsys, pathJoin(root, e.Name()))
		if err != nil {
			slog.Warn("failed to read locale", "locale", code, "err", err)
			continue
		}
		if err := c.Add(code, data); err != nil {
			slog.Warn("failed to parse locale", "locale", code, "err", err)
			continue
		}
		slog.Debug("loaded locale", "locale", code)
	}
}

func pathJoin(root, name string) string {
	if root == "." {
		return name
	}
	return root + "/" + name
}

// Add decodes a JSON table for code on top of the English fallback and
// registers it, replacing any previous table for code.
func (c *Catalog) Add(code string, data []byte) error {
	if code == "" {
		return errors.New("empty locale code")
	}
	t := fallbackEN()
	if err := json.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("decode %s: %w", code, err)
	}
	c.tables[code] = t
	return nil
}

// Has reports whether code is registered.
func (c *Catalog) Has(code string) bool {
	_, ok := c.tables[code]
	return ok
}

// Get returns the table for code.
func (c *Catalog) Get(code string) (Translations, bool) {
	t, ok := c.tables[code]
	return t, ok
}

// Codes returns the registered locale codes in sorted order.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.tables))
	for code := range c.tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// DisplayName is the native name of a locale, or "Unknown".
func DisplayName(code string) string {
	switch code {
	case "en_US":
		return "English"
	case "tr_TR":
		return "Türkçe"
	case "de":
		return "Deutsch"
	case "es":
		return "Español"
	case "fr":
		return "Français"
	case "it":
		return "Italiano"
	case "ja":
		return "日本語"
	case "ru":
		return "Русский"
	case "zh":
		return "中文"
	default:
		return "Unknown"
	}
}
