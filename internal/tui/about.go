package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	websiteURL = "https://github.com/ro-repo/ro-start"
	issuesURL  = "https://github.com/ro-repo/ro-start/issues"
	license    = "GPL-3.0"
	credits    = "ro-repo <project.roasd@gmail.com>"
	builtWith  = "Go, Bubble Tea, Lip Gloss, gopsutil"
)

func (m Model) renderAbout(width int) string {
	t := m.loc.T()
	version := m.version
	if version == "" {
		version = m.cfg.Version
	}

	rows := [][2]string{
		{t.Home.Website, websiteURL},
		{"Issues", issuesURL},
		{t.About.License, license},
		{t.About.Credits, credits},
		{t.About.BuiltWith, builtWith},
	}
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r[0]))
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(" "+m.cfg.AppName+" ") + "  " + m.styles.muted.Render(version))
	b.WriteString("\n\n")
	b.WriteString(m.styles.value.Render(t.About.Description))
	b.WriteString("\n\n")
	for _, r := range rows {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(r[0]))
		b.WriteString(m.styles.label.Render(r[0]) + pad + "  " + m.styles.value.Render(r[1]) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render("© 2026 ro-repo"))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, m.styles.card.Render(b.String()))
}
