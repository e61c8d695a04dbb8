package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Detect picks a catalog locale from LANG, then LC_ALL. It tries the exact
// code (tr_TR), then the bare language (tr), then any catalog entry with the
// same base language, then DefaultLocale.
func Detect(getenv func(string) string, c *Catalog) string {
	raw := getenv("LANG")
	if raw == "" {
		raw = getenv("LC_ALL")
	}
	if raw == "" {
		raw = "en_US.UTF-8"
	}
	return Resolve(raw, c)
}

// Resolve maps a POSIX locale string such as "de_AT.UTF-8@euro" to a catalog
// code.
func Resolve(raw string, c *Catalog) string {
	code, _, _ := strings.Cut(raw, ".")
	code, _, _ = strings.Cut(code, "@")
	if code == "" || code == "C" || code == "POSIX" {
		return DefaultLocale
	}
	if c.Has(code) {
		return code
	}

	base, ok := baseLanguage(code)
	if !ok {
		return DefaultLocale
	}
	if c.Has(base) {
		return base
	}
	for _, candidate := range c.Codes() {
		if b, ok := baseLanguage(candidate); ok && b == base {
			return candidate
		}
	}
	return DefaultLocale
}

func baseLanguage(code string) (string, bool) {
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}
