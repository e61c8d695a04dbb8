package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadCatalogEmbedded(t *testing.T) {
	c := LoadCatalog("")
	for _, code := range []string{"en_US", "tr_TR", "de", "es", "fr", "it", "ja", "ru", "zh"} {
		assert.True(t, c.Has(code), code)
	}
	tr, ok := c.Get("tr_TR")
	require.True(t, ok)
	assert.Equal(t, "Sistem Bilgisi", tr.System.Title)
}

func TestPartialLocaleFallsBackToEnglish(t *testing.T) {
	c := LoadCatalog("")
	ja, ok := c.Get("ja")
	require.True(t, ok)
	assert.Equal(t, "設定", ja.Settings.Title)
	assert.Equal(t, fallbackEN().Drivers.Title, ja.Drivers.Title)
	assert.Equal(t, fallbackEN().Notify.UpdatesBody, ja.Notify.UpdatesBody)
}

func TestLoadCatalogDirectoryOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "de.json"),
		[]byte(`{"home":{"title":"Hallo"}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pt_BR.json"),
		[]byte(`{"settings":{"title":"Configurações"}}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`x`), 0o644))

	c := LoadCatalog(dir)
	de, _ := c.Get("de")
	assert.Equal(t, "Hallo", de.Home.Title)
	assert.True(t, c.Has("pt_BR"))
	assert.False(t, c.Has("broken"))
	assert.False(t, c.Has("notes"))
}

func TestLoadCatalogMissingDirectory(t *testing.T) {
	c := LoadCatalog(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, c.Has("en_US"))
	assert.True(t, c.Has("fr"))
}

func TestAddRejectsBadInput(t *testing.T) {
	c := NewCatalog()
	assert.Error(t, c.Add("xx", []byte("not json")))
	assert.Error(t, c.Add("", []byte(`{}`)))
	assert.False(t, c.Has("xx"))
	assert.Equal(t, []string{"en_US"}, c.Codes())
}

func TestResolve(t *testing.T) {
	c := LoadCatalog("")
	tests := []struct {
		raw  string
		want string
	}{
		{"tr_TR.UTF-8", "tr_TR"},
		{"tr_TR", "tr_TR"},
		{"tr", "tr_TR"},
		{"de_DE.UTF-8", "de"},
		{"de_AT.UTF-8@euro", "de"},
		{"fr_CA.UTF-8", "fr"},
		{"zh_CN.UTF-8", "zh"},
		{"en_GB.UTF-8", "en_US"},
		{"pt_BR.UTF-8", "en_US"},
		{"C", "en_US"},
		{"POSIX", "en_US"},
		{"C.UTF-8", "en_US"},
		{"", "en_US"},
		{"!!garbage", "en_US"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.raw, c))
		})
	}
}

func TestDetectPrefersLang(t *testing.T) {
	c := LoadCatalog("")
	assert.Equal(t, "es", Detect(envMap(map[string]string{"LANG": "es_ES.UTF-8", "LC_ALL": "fr_FR.UTF-8"}), c))
	assert.Equal(t, "fr", Detect(envMap(map[string]string{"LC_ALL": "fr_FR.UTF-8"}), c))
	assert.Equal(t, "en_US", Detect(envMap(nil), c))
}

func TestLocalizerUnknownLocaleFallsBack(t *testing.T) {
	l := NewLocalizer(LoadCatalog(""), "xx_YY")
	assert.Equal(t, DefaultLocale, l.Locale())
	assert.Equal(t, "Welcome to Linux", l.T().App.Title)
}

func TestWithLocale(t *testing.T) {
	l := NewLocalizer(LoadCatalog(""), "en_US")

	de := l.WithLocale("de")
	assert.Equal(t, "de", de.Locale())
	assert.Equal(t, "Einstellungen", de.T().Settings.Title)
	assert.Equal(t, "en_US", l.Locale(), "receiver is not mutated")

	same := de.WithLocale("klingon")
	assert.Equal(t, "de", same.Locale())
}

func TestLookup(t *testing.T) {
	l := NewLocalizer(LoadCatalog(""), "tr_TR")

	assert.Equal(t, "Ayarlar", l.Lookup("settings.title"))
	assert.Equal(t, "Başlangıçta göster", l.Lookup("home.autostart_label"))
	assert.Equal(t, "missing.key", l.Lookup("missing.key"))
	assert.Equal(t, "fallback", l.Lookup("home.nothing", "fallback"))
	assert.Equal(t, "nodot", l.Lookup("nodot"))
}

func TestFormatAndCount(t *testing.T) {
	assert.Equal(t, "3 update(s) available", Count(fallbackEN().Update.StatusNeedUpdate, 3))
	assert.Equal(t, "Failed to open Discover",
		Format(fallbackEN().Actions.OpenFailed, map[string]string{"name": "Discover"}))
	assert.Equal(t, "100% {name}", Format("100% {name}", nil))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Türkçe", DisplayName("tr_TR"))
	assert.Equal(t, "English", DisplayName("en_US"))
	assert.Equal(t, "日本語", DisplayName("ja"))
	assert.Equal(t, "Unknown", DisplayName("xx"))
}

func TestEmbeddedLocalesKeepPlaceholders(t *testing.T) {
	c := LoadCatalog("")
	for _, code := range c.Codes() {
		tr, _ := c.Get(code)
		assert.Contains(t, tr.Update.StatusNeedUpdate, "{count}", code)
		assert.Contains(t, tr.Notify.UpdatesBody, "{count}", code)
		assert.Contains(t, tr.Actions.OpenFailed, "{name}", code)
	}
}
