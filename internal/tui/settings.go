package tui

import (
	"fmt"
	"strconv"
	"strings"

	"ro-start/internal/config"
	"ro-start/internal/i18n"
)

type settingItem struct {
	label   string   // display label
	key     string   // config key
	value   string   // current value
	options []string // available options (nil = read-only)
}

func (m Model) settingItems() []settingItem {
	t := m.loc.T()
	path := ""
	if m.ctrl.Store != nil {
		path = m.ctrl.Store.Path()
	}
	return []settingItem{
		{
			label:   t.Settings.Language,
			key:     "language",
			value:   m.cfg.Language,
			options: config.LanguageOptions(),
		},
		{
			label:   t.Settings.Autostart,
			key:     "autostart",
			value:   strconv.FormatBool(m.cfg.Autostart),
			options: []string{"false", "true"},
		},
		{
			label:   t.Settings.Theme,
			key:     "theme",
			value:   m.cfg.Theme,
			options: config.ThemeOptions(),
		},
		{
			label: t.Settings.ConfigFile,
			key:   "config_file",
			value: path,
		},
	}
}

// nextOption cycles to the option after current, or the first option if
// current is not in the list.
func nextOption(options []string, current string) string {
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (m Model) renderSettings(width int) string {
	t := m.loc.T()
	var b strings.Builder

	b.WriteString("  " + m.styles.heading.Render(t.Settings.Title) + "\n\n")

	for i, item := range m.settingItems() {
		cursor := "  "
		labelStyle := m.styles.muted
		if i == m.settingsCursor {
			cursor = "▸ "
			labelStyle = m.styles.label
		}

		shown := m.displayValue(item)
		var value string
		switch {
		case item.options == nil:
			value = m.styles.muted.Render(shown)
		case i == m.settingsCursor:
			value = m.styles.ok.Render(shown)
		default:
			value = m.styles.value.Render(shown)
		}

		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, labelStyle.Render(padRight(item.label, 24)), value))

		if i == m.settingsCursor {
			if desc := m.settingDescription(item); desc != "" {
				b.WriteString(fmt.Sprintf("  %s  %s\n", strings.Repeat(" ", 24), m.styles.hint.Render(desc)))
			}
		}
		b.WriteString("\n")
	}

	return m.styles.card.Width(max(20, width-4)).Render(b.String())
}

func (m Model) displayValue(item settingItem) string {
	switch item.key {
	case "language":
		if item.value == config.LanguageAuto {
			return "auto (" + i18n.DisplayName(m.loc.Locale()) + ")"
		}
		return i18n.DisplayName(item.value)
	case "autostart":
		if item.value == "true" {
			return "on"
		}
		return "off"
	}
	return item.value
}

func (m Model) settingDescription(item settingItem) string {
	switch item.key {
	case "autostart":
		return m.loc.T().Settings.AutostartDesc
	case "language", "theme":
		return "enter: " + m.displayValue(settingItem{key: item.key, value: nextOption(item.options, item.value)})
	case "config_file":
		return "Read-only"
	}
	return ""
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
