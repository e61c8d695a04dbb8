package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"ro-start/internal/config"
	"ro-start/internal/desktop"
	"ro-start/internal/i18n"
	"ro-start/internal/logging"
	"ro-start/internal/notify"
	"ro-start/internal/output"
	"ro-start/internal/pkgmgr"
	"ro-start/internal/sysinfo"
	"ro-start/internal/tui"
	"ro-start/internal/ui"
)

// localesDir holds optional on-disk locale overrides, relative to the
// working directory.
const localesDir = "assets/locales"

// globalOptions are the persistent root flags.
type globalOptions struct {
	noStartup  bool
	locale     string
	debug      bool
	output     string
	configPath string
}

// App carries the process dependencies the commands use. Tests replace the
// function fields with fakes.
type App struct {
	Runner      pkgmgr.Runner
	Getenv      func(string) string
	Out         io.Writer
	Err         io.Writer
	IsTTY       func() bool
	RunTUI      func(tui.Options) error
	CollectInfo func(ctx context.Context) sysinfo.Info
	StartTool   desktop.StartFunc
	Notifier    notify.Notifier
	Executable  func() (string, error)
	LogDir      func() (string, error)

	opts    globalOptions
	printer *output.Printer
	store   *config.Store
	catalog *i18n.Catalog
	loc     *i18n.Localizer
	logger  *slog.Logger
}

// DefaultApp wires the real system.
func DefaultApp() *App {
	return &App{
		Runner: pkgmgr.ExecRunner{},
		Getenv: os.Getenv,
		Out:    os.Stdout,
		Err:    os.Stderr,
		IsTTY: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		RunTUI:      tui.Run,
		CollectInfo: sysinfo.Collect,
		Notifier:    notify.NewDesktopNotifier(),
		Executable:  desktop.Executable,
		LogDir:      logging.Dir,
	}
}

// setup runs before every command: output format, logging, config and
// locale, in that order.
func (a *App) setup() error {
	format, err := output.ParseFormat(a.opts.output)
	if err != nil {
		return err
	}
	a.printer = &output.Printer{Format: format, Out: a.Out, Err: a.Err}
	ui.Out = a.Out
	a.logger = logging.Console(a.Err, a.opts.debug, a.printer.Structured())

	path := a.opts.configPath
	if path == "" {
		if path, err = config.DefaultPath(); err != nil {
			return err
		}
	}
	store, err := config.Open(path)
	if err != nil {
		// Keep running on defaults; a broken file must not lock the user out.
		a.logger.Warn("failed to load config, using defaults", "path", path, "err", err)
	}
	a.store = store

	a.catalog = i18n.LoadCatalog(localesDir)
	a.loc = i18n.NewLocalizer(a.catalog, a.resolveLocale())
	a.logger.Debug("locale selected", "locale", a.loc.Locale())
	return nil
}

// resolveLocale applies --locale, then the effective config language, then
// environment detection.
func (a *App) resolveLocale() string {
	if a.opts.locale != "" {
		return i18n.Resolve(a.opts.locale, a.catalog)
	}
	cfg := a.store.Effective(a.Getenv)
	if cfg.Language != config.LanguageAuto {
		return cfg.Language
	}
	return i18n.Detect(a.Getenv, a.catalog)
}

func (a *App) effectiveConfig() config.AppConfig {
	return a.store.Effective(a.Getenv)
}

func (a *App) lister() pkgmgr.Lister {
	return pkgmgr.AutoLister{Runner: a.Runner, Timeout: a.effectiveConfig().UpdateTimeout()}
}

func (a *App) messenger() *notify.Messenger {
	n := a.Notifier
	if n == nil {
		n = notify.Discard{}
	}
	multi := notify.NewMultiNotifier(n, notify.LogNotifier{Logger: a.logger})
	return &notify.Messenger{Notifier: multi, Localizer: a.loc, Logger: a.logger}
}

func (a *App) launcher() *desktop.Launcher {
	l := desktop.NewLauncher(sysinfo.DetectDesktop(a.Getenv))
	if a.StartTool != nil {
		l.Start = a.StartTool
	}
	l.Logger = a.logger
	return l
}

func (a *App) autostart() (*desktop.Autostart, error) {
	return desktop.NewAutostart(a.Getenv)
}
