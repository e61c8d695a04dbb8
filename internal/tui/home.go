package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ro-start/internal/desktop"
	"ro-start/internal/i18n"
)

type homeItem struct {
	title string
	desc  string
	msg   actionMsg
}

func homeItems(t i18n.Translations) []homeItem {
	return []homeItem{
		{t.Actions.CheckUpdates, t.Actions.CheckUpdatesDesc, actionMsg{kind: actionCheckUpdates}},
		{t.Actions.UpdateSystem, t.Actions.UpdateSystemDesc, actionMsg{kind: actionOpen, tool: desktop.UpdateManager}},
		{t.Actions.SoftwareCenter, t.Actions.SoftwareCenterDesc, actionMsg{kind: actionOpen, tool: desktop.SoftwareCenter}},
		{t.Actions.SystemSettings, t.Actions.SystemSettingsDesc, actionMsg{kind: actionOpen, tool: desktop.SystemSettings}},
	}
}

func (m Model) renderHome(width int) string {
	t := m.loc.T()
	var b strings.Builder

	b.WriteString(m.styles.heading.Render(t.Home.Title))
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render(t.Home.Description))
	b.WriteString("\n\n")

	card := m.renderSystemCard()
	actions := m.renderActions()
	if width >= lipgloss.Width(card)+lipgloss.Width(actions)+2 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, card, "  ", actions))
	} else {
		b.WriteString(card)
		b.WriteString("\n")
		b.WriteString(actions)
	}
	return b.String()
}

func (m Model) renderSystemCard() string {
	t := m.loc.T()
	osLine := m.info.OSName
	if m.info.OSVersion != "" && m.info.OSVersion != "Unknown" {
		osLine += " " + m.info.OSVersion
	}
	rows := [][2]string{
		{t.System.OS, osLine},
		{t.System.Desktop, m.info.DesktopEnvironment},
		{t.System.Session, m.info.SessionType},
		{t.System.Kernel, m.info.KernelVersion},
		{t.System.Memory, m.info.MemoryInfo},
		{t.System.CPU, m.info.CPUInfo},
		{t.System.Disk, m.info.DiskInfo},
		{t.System.Hostname, m.info.Hostname},
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r[0]))
	}

	var b strings.Builder
	b.WriteString(m.styles.heading.Render(t.System.Title))
	b.WriteString("\n\n")
	for _, r := range rows {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(r[0]))
		b.WriteString(m.styles.label.Render(r[0]) + pad + "  " + m.styles.value.Render(r[1]) + "\n")
	}
	return m.styles.card.Render(strings.TrimSuffix(b.String(), "\n"))
}

func (m Model) renderActions() string {
	t := m.loc.T()
	var b strings.Builder
	b.WriteString(m.styles.heading.Render(t.Actions.Title))
	b.WriteString("\n\n")

	for i, item := range homeItems(t) {
		cursor := "  "
		title := m.styles.value.Render(item.title)
		if i == m.homeCursor {
			cursor = "▸ "
			title = m.styles.selected.Render(item.title)
		}
		if item.msg.kind == actionCheckUpdates && m.checking {
			title = m.spinner.View() + " " + m.styles.muted.Render(t.Actions.Checking)
		}
		b.WriteString(cursor + title + "\n")
		b.WriteString("  " + m.styles.hint.Render(item.desc) + "\n")
	}

	b.WriteString("\n")
	label := m.updateLabel()
	switch {
	case m.checking || !m.updateKnown:
		label = m.styles.muted.Render(label)
	case m.updateErr != nil:
		label = m.styles.err.Render(label)
	case m.updateCount > 0:
		label = m.styles.warn.Render(label)
	default:
		label = m.styles.ok.Render(label)
	}
	b.WriteString(m.styles.label.Render(t.Update.Title) + "  " + label)

	return m.styles.card.Render(b.String())
}
