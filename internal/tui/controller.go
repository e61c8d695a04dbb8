package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"ro-start/internal/config"
	"ro-start/internal/desktop"
	"ro-start/internal/i18n"
	"ro-start/internal/notify"
	"ro-start/internal/pkgmgr"
	"ro-start/internal/sysinfo"
)

type actionKind int

const (
	actionCheckUpdates actionKind = iota
	actionOpen
	actionRefresh
	actionSetting
)

// actionMsg is what the views emit. The model hands it to the Controller,
// which turns it into a background command.
type actionMsg struct {
	kind   actionKind
	tool   desktop.Action
	key    string
	value  string
	silent bool // startup check: no dialog, notify only when updates exist
}

// updateCheckedMsg carries the outcome of an update check.
type updateCheckedMsg struct {
	count  int
	err    error
	silent bool
}

// launchedMsg carries the outcome of opening a desktop tool.
type launchedMsg struct {
	tool desktop.Action
	name string
	err  error
}

// sysinfoMsg carries a fresh snapshot.
type sysinfoMsg struct{ info sysinfo.Info }

// settingAppliedMsg is sent after a setting is persisted.
type settingAppliedMsg struct {
	cfg config.AppConfig
	key string
	err error
}

// Launcher opens desktop tools.
type Launcher interface {
	Launch(action desktop.Action) (string, error)
}

// InfoSource yields system snapshots.
type InfoSource interface {
	Info() sysinfo.Info
	Refresh(ctx context.Context) sysinfo.Info
}

// AutostartSyncer keeps the autostart entry in line with the config flag.
type AutostartSyncer interface {
	Sync(enabled bool, execPath string) error
}

// Controller performs the side effects the views ask for.
type Controller struct {
	Launcher  Launcher
	Updates   pkgmgr.Lister
	Messenger *notify.Messenger
	Store     *config.Store
	Autostart AutostartSyncer
	SysInfo   InfoSource
	Catalog   *i18n.Catalog
	ExecPath  string
	Getenv    func(string) string
	Logger    *slog.Logger
}

func (c *Controller) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Handle maps an action to the command that performs it.
func (c *Controller) Handle(msg actionMsg) tea.Cmd {
	switch msg.kind {
	case actionCheckUpdates:
		return c.checkUpdates(msg.silent)
	case actionOpen:
		return c.open(msg.tool)
	case actionRefresh:
		return c.refresh()
	case actionSetting:
		return c.applySetting(msg.key, msg.value)
	}
	return nil
}

func (c *Controller) checkUpdates(silent bool) tea.Cmd {
	return func() tea.Msg {
		if c.Updates == nil {
			return updateCheckedMsg{err: pkgmgr.ErrNotFound, silent: silent}
		}
		n, err := c.Updates.ListAvailableUpdates(context.Background())
		if err != nil {
			c.logger().Warn("update check failed", "err", err)
		} else {
			c.logger().Info("update check finished", "count", n)
		}
		return updateCheckedMsg{count: n, err: err, silent: silent}
	}
}

func (c *Controller) open(tool desktop.Action) tea.Cmd {
	return func() tea.Msg {
		name, err := c.Launcher.Launch(tool)
		if err != nil {
			c.logger().Error("failed to open desktop tool", "action", tool.String(), "err", err)
		}
		return launchedMsg{tool: tool, name: name, err: err}
	}
}

func (c *Controller) refresh() tea.Cmd {
	return func() tea.Msg {
		return sysinfoMsg{info: c.SysInfo.Refresh(context.Background())}
	}
}

func (c *Controller) applySetting(key, value string) tea.Cmd {
	return func() tea.Msg {
		prev := c.Store.Get().Autostart
		var setErr error
		cfg, err := c.Store.Update(func(cfg *config.AppConfig) {
			setErr = cfg.Set(key, value)
		})
		if setErr != nil {
			return settingAppliedMsg{cfg: cfg, key: key, err: setErr}
		}
		if err != nil {
			return settingAppliedMsg{cfg: cfg, key: key, err: err}
		}
		if key == "autostart" && c.Autostart != nil {
			if err := c.Autostart.Sync(cfg.Autostart, c.ExecPath); err != nil {
				c.logger().Error("failed to sync autostart entry", "err", err)
				if restored, rbErr := c.Store.Update(func(cfg *config.AppConfig) { cfg.Autostart = prev }); rbErr != nil {
					c.logger().Error("failed to restore autostart flag", "err", rbErr)
				} else {
					cfg = restored
				}
				return settingAppliedMsg{cfg: cfg, key: key, err: err}
			}
		}
		c.logger().Info("setting changed", "key", key, "value", value)
		return settingAppliedMsg{cfg: cfg, key: key}
	}
}

// notify sends a notification in loc off the UI goroutine.
func (c *Controller) notify(loc *i18n.Localizer, send func(m *notify.Messenger)) tea.Cmd {
	if c.Messenger == nil {
		return nil
	}
	m := c.Messenger.WithLocalizer(loc)
	return func() tea.Msg {
		send(m)
		return nil
	}
}

// localeFor resolves a config language value to a catalog code.
func (c *Controller) localeFor(language string) string {
	if language == config.LanguageAuto || language == "" {
		getenv := c.Getenv
		if getenv == nil || c.Catalog == nil {
			return i18n.DefaultLocale
		}
		return i18n.Detect(getenv, c.Catalog)
	}
	return language
}
