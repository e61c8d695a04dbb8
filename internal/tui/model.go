// Package tui is the interactive welcome screen.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ro-start/internal/config"
	"ro-start/internal/desktop"
	"ro-start/internal/i18n"
	"ro-start/internal/notify"
	"ro-start/internal/pkgmgr"
	"ro-start/internal/sysinfo"
)

type viewState int

const (
	viewHome viewState = iota
	viewSettings
	viewAbout
)

const viewCount = 3

// dialog is a modal message; any key other than esc or enter is ignored
// while it is open.
type dialog struct {
	title string
	body  string
	isErr bool
}

// Options configures a TUI run.
type Options struct {
	Controller *Controller
	Localizer  *i18n.Localizer
	Version    string
	// StartupCheck runs one silent update check when the program starts.
	StartupCheck bool
}

// Model is the main TUI model.
type Model struct {
	ctrl    *Controller
	loc     *i18n.Localizer
	styles  styles
	help    help.Model
	spinner spinner.Model
	version string

	view           viewState
	homeCursor     int
	settingsCursor int

	cfg         config.AppConfig
	info        sysinfo.Info
	checking    bool
	startup     bool
	updateKnown bool
	updateCount int
	updateErr   error
	status      string
	dialog      *dialog

	width  int
	height int
}

// NewModel creates the initial TUI model.
func NewModel(opts Options) Model {
	ctrl := opts.Controller
	loc := opts.Localizer
	if loc == nil {
		loc = i18n.NewLocalizer(ctrl.Catalog, ctrl.localeFor(config.LanguageAuto))
	}

	cfg := config.Default()
	if ctrl.Store != nil {
		cfg = ctrl.Store.Get()
	}

	st := newStyles(cfg.Theme)
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.spinner

	m := Model{
		ctrl:     ctrl,
		loc:      loc,
		styles:   st,
		help:     help.New(),
		spinner:  sp,
		version:  opts.Version,
		cfg:      cfg,
		startup:  opts.StartupCheck,
		checking: opts.StartupCheck,
	}
	if ctrl.SysInfo != nil {
		m.info = ctrl.SysInfo.Info()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if !m.startup {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.ctrl.Handle(actionMsg{kind: actionCheckUpdates, silent: true}))
}

func emit(msg actionMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width - 4
		return m, nil

	case spinner.TickMsg:
		if !m.checking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case actionMsg:
		return m.dispatch(msg)

	case updateCheckedMsg:
		return m.onUpdateChecked(msg)

	case launchedMsg:
		return m.onLaunched(msg)

	case sysinfoMsg:
		m.info = msg.info
		return m, nil

	case settingAppliedMsg:
		return m.onSettingApplied(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) dispatch(msg actionMsg) (tea.Model, tea.Cmd) {
	if msg.kind == actionCheckUpdates {
		if m.checking {
			return m, nil
		}
		m.checking = true
		return m, tea.Batch(m.spinner.Tick, m.ctrl.Handle(msg))
	}
	return m, m.ctrl.Handle(msg)
}

func (m Model) onUpdateChecked(msg updateCheckedMsg) (tea.Model, tea.Cmd) {
	m.checking = false
	m.updateKnown = true
	m.updateCount = msg.count
	m.updateErr = msg.err
	t := m.loc.T()
	label := m.updateLabel()

	if msg.err != nil {
		if msg.silent {
			return m, nil
		}
		m.dialog = &dialog{title: t.Notify.Error, body: label + "\n\n" + msg.err.Error(), isErr: true}
		return m, m.ctrl.notify(m.loc, func(n *notify.Messenger) { n.Error(label) })
	}

	var cmd tea.Cmd
	if msg.count > 0 {
		count := msg.count
		cmd = m.ctrl.notify(m.loc, func(n *notify.Messenger) { n.UpdatesAvailable(count) })
	}
	if !msg.silent {
		m.dialog = &dialog{title: t.Update.Title, body: label}
	}
	return m, cmd
}

// updateLabel describes the last update check in the current locale.
func (m Model) updateLabel() string {
	t := m.loc.T()
	switch {
	case m.checking:
		return t.Actions.Checking
	case !m.updateKnown:
		return t.Update.StatusUnknown
	case m.updateErr != nil:
		if errors.Is(m.updateErr, pkgmgr.ErrNotFound) {
			return t.Update.NoManager
		}
		return t.Update.Error
	case m.updateCount > 0:
		return i18n.Count(t.Update.StatusNeedUpdate, m.updateCount)
	default:
		return t.Update.StatusUptodate
	}
}

func (m Model) onLaunched(msg launchedMsg) (tea.Model, tea.Cmd) {
	t := m.loc.T()
	label := toolLabel(t, msg.tool)
	if msg.err != nil {
		text := i18n.Format(t.Actions.OpenFailed, map[string]string{"name": label})
		m.status = ""
		m.dialog = &dialog{title: t.Notify.Error, body: text + "\n\n" + msg.err.Error(), isErr: true}
		return m, m.ctrl.notify(m.loc, func(n *notify.Messenger) { n.Error(text) })
	}
	text := i18n.Format(t.Actions.Opened, map[string]string{"name": label})
	m.status = text
	return m, m.ctrl.notify(m.loc, func(n *notify.Messenger) { n.Success(text) })
}

func (m Model) onSettingApplied(msg settingAppliedMsg) (tea.Model, tea.Cmd) {
	m.cfg = msg.cfg
	// Only an explicit language change moves the locale; other settings keep
	// whatever --locale or RO_START_LANGUAGE selected at startup.
	if msg.key == "language" && msg.err == nil {
		if code := m.ctrl.localeFor(m.cfg.Language); code != m.loc.Locale() {
			m.loc = m.loc.WithLocale(code)
		}
	}
	if m.styles.theme != m.cfg.Theme {
		m.styles = newStyles(m.cfg.Theme)
		m.spinner.Style = m.styles.spinner
	}
	t := m.loc.T()
	if msg.err != nil {
		m.status = ""
		m.dialog = &dialog{title: t.Notify.Error, body: msg.err.Error(), isErr: true}
		return m, nil
	}
	m.status = t.Settings.Saved
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog != nil {
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, keys.Escape), msg.String() == "enter":
			m.dialog = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		if msg.String() == "shift+tab" {
			m.view = (m.view + viewCount - 1) % viewCount
		} else {
			m.view = (m.view + 1) % viewCount
		}
		return m, nil

	case key.Matches(msg, keys.Settings):
		m.view = viewSettings
		return m, nil

	case key.Matches(msg, keys.About):
		m.view = viewAbout
		return m, nil

	case key.Matches(msg, keys.Escape):
		m.view = viewHome
		return m, nil

	case key.Matches(msg, keys.Check):
		if m.checking {
			return m, nil
		}
		return m, emit(actionMsg{kind: actionCheckUpdates})

	case key.Matches(msg, keys.Refresh):
		return m, emit(actionMsg{kind: actionRefresh})

	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, keys.Enter):
		return m, m.activate()
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.view {
	case viewHome:
		m.homeCursor = clamp(m.homeCursor+delta, 0, len(homeItems(m.loc.T()))-1)
	case viewSettings:
		m.settingsCursor = clamp(m.settingsCursor+delta, 0, len(m.settingItems())-1)
	}
}

func (m Model) activate() tea.Cmd {
	switch m.view {
	case viewHome:
		item := homeItems(m.loc.T())[m.homeCursor]
		if item.msg.kind == actionCheckUpdates && m.checking {
			return nil
		}
		return emit(item.msg)
	case viewSettings:
		item := m.settingItems()[m.settingsCursor]
		if item.options == nil {
			return nil
		}
		return emit(actionMsg{kind: actionSetting, key: item.key, value: nextOption(item.options, item.value)})
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toolLabel(t i18n.Translations, a desktop.Action) string {
	switch a {
	case desktop.UpdateManager:
		return t.Actions.UpdateSystem
	case desktop.SoftwareCenter:
		return t.Actions.SoftwareCenter
	case desktop.SystemSettings:
		return t.Actions.SystemSettings
	}
	return a.String()
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	innerWidth := m.width - 4
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.dialog != nil {
		b.WriteString(m.renderDialog(innerWidth))
	} else {
		switch m.view {
		case viewSettings:
			b.WriteString(m.renderSettings(innerWidth))
		case viewAbout:
			b.WriteString(m.renderAbout(innerWidth))
		default:
			b.WriteString(m.renderHome(innerWidth))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.ok.Render("  " + m.status))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.help.View(keys)))

	return m.styles.app.Render(b.String())
}

func (m Model) renderHeader() string {
	t := m.loc.T()
	title := m.styles.title.Render(" ⬡ " + t.App.Title + " ")

	names := []string{t.Sidebar.Home, t.Settings.Title, t.About.Title}
	tabs := make([]string, len(names))
	for i, name := range names {
		if viewState(i) == m.view {
			tabs[i] = m.styles.activeTab.Render(name)
		} else {
			tabs[i] = m.styles.inactiveTab.Render(name)
		}
	}

	right := m.styles.muted.Render(i18n.DisplayName(m.loc.Locale()))
	left := title + "  " + strings.Join(tabs, "  ")
	gap := strings.Repeat(" ", max(1, m.width-4-lipgloss.Width(left)-lipgloss.Width(right)))
	return left + gap + right
}

func (m Model) renderDialog(width int) string {
	style := m.styles.dialog
	titleStyle := m.styles.heading
	if m.dialog.isErr {
		style = m.styles.dialogError
		titleStyle = m.styles.err.Bold(true)
	}
	box := style.Render(titleStyle.Render(m.dialog.title) + "\n\n" + m.dialog.body + "\n\n" +
		m.styles.hint.Render("enter/esc"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
