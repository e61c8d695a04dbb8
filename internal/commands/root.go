package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ro-start/internal/logging"
	"ro-start/internal/output"
	"ro-start/internal/sysinfo"
	"ro-start/internal/tui"
)

// NewRootCmd builds the ro-start command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ro-start",
		Short: "Welcome screen for your Linux desktop",
		Long: "ro-start shows system information, checks for package updates and opens the\n" +
			"update manager, software center and settings of the running desktop.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Non-TTY fallback: print the report instead of drawing a UI.
			if app.IsTTY == nil || !app.IsTTY() {
				return runInfo(cmd.Context(), app)
			}
			return runTUI(cmd.Context(), app)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.BoolVar(&app.opts.noStartup, "no-startup", false, "Skip the startup update check and notification")
	flags.StringVar(&app.opts.locale, "locale", "", "UI locale, e.g. tr_TR or de (overrides config and environment)")
	flags.BoolVar(&app.opts.debug, "debug", false, "Enable debug logging")
	flags.StringVarP(&app.opts.output, "output", "o", string(output.Text), "Output format: text, json or yaml")
	flags.StringVar(&app.opts.configPath, "config", "", "Config file path (default <user config dir>/ro-start/config.toml)")

	root.AddCommand(
		newInfoCmd(app),
		newUpdatesCmd(app),
		newDetectCmd(app),
		newOpenCmd(app),
		newConfigCmd(app),
		newAutostartCmd(app),
		newLocalesCmd(app),
		newVersionCmd(app),
		newCompletionCmd(app),
	)
	return root
}

// Execute runs the command tree and reports any error in the selected
// output format. It returns the process exit code.
func Execute(app *App, args []string) int {
	root := NewRootCmd(app)
	root.SetArgs(args)
	root.SetOut(app.Out)
	root.SetErr(app.Err)
	if err := root.ExecuteContext(context.Background()); err != nil {
		p := app.printer
		if p == nil {
			p = &output.Printer{Format: output.Text, Out: app.Out, Err: app.Err}
		}
		p.PrintError(err)
		return 1
	}
	return 0
}

func runTUI(ctx context.Context, app *App) error {
	logger, closer := app.logger, io.Closer(nil)
	if app.LogDir != nil {
		if dir, err := app.LogDir(); err != nil {
			app.logger.Warn("no log directory, TUI logs are discarded", "err", err)
			logger = logging.Discard()
		} else if l, c, err := logging.File(dir, app.opts.debug); err != nil {
			app.logger.Warn("failed to open log file, TUI logs are discarded", "err", err)
			logger = logging.Discard()
		} else {
			logger, closer = l, c
		}
	}
	if closer != nil {
		defer closer.Close()
	}
	app.logger = logger

	execPath := ""
	if app.Executable != nil {
		p, err := app.Executable()
		if err != nil {
			logger.Warn("cannot resolve executable path", "err", err)
		}
		execPath = p
	}

	var syncer tui.AutostartSyncer
	if a, err := app.autostart(); err != nil {
		logger.Warn("autostart unavailable", "err", err)
	} else {
		syncer = a
	}

	ctrl := &tui.Controller{
		Launcher:  app.launcher(),
		Updates:   app.lister(),
		Messenger: app.messenger(),
		Store:     app.store,
		Autostart: syncer,
		SysInfo:   sysinfo.NewStateFunc(ctx, app.CollectInfo),
		Catalog:   app.catalog,
		ExecPath:  execPath,
		Getenv:    app.Getenv,
		Logger:    logger,
	}

	logger.Info("starting tui", "locale", app.loc.Locale(), "version", Version, "startup_check", !app.opts.noStartup)
	if err := app.RunTUI(tui.Options{
		Controller:   ctrl,
		Localizer:    app.loc,
		Version:      Version,
		StartupCheck: !app.opts.noStartup,
	}); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func newCompletionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for the specified shell.

Usage examples:
  # Bash
  source <(ro-start completion bash)

  # Zsh
  source <(ro-start completion zsh)

  # Fish
  ro-start completion fish | source`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(app.Out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(app.Out)
			case "fish":
				return cmd.Root().GenFishCompletion(app.Out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(app.Out)
			}
			return fmt.Errorf("unsupported shell: %s", args[0])
		},
	}
}
