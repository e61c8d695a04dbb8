package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ro-start/internal/config"
	"ro-start/internal/ui"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"c"},
		Short:   "Manage configuration",
		Long:    "Show or change settings stored in config.toml (keys: " + strings.Join(config.SettableKeys(), ", ") + ")",
	}
	cmd.AddCommand(
		newConfigShowCmd(app),
		newConfigSetCmd(app),
		newConfigPathCmd(app),
	)
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	var effective bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.store.Get()
			if effective {
				cfg = app.effectiveConfig()
			}
			return app.printer.Print(cfg, func() {
				w := ui.FieldWidth("update_timeout_secs")
				ui.ShowField(w, "app_name", cfg.AppName)
				ui.ShowField(w, "version", cfg.Version)
				ui.ShowField(w, "autostart", strconv.FormatBool(cfg.Autostart))
				ui.ShowField(w, "language", cfg.Language)
				ui.ShowField(w, "theme", cfg.Theme)
				ui.ShowField(w, "update_timeout_secs", strconv.Itoa(cfg.UpdateTimeoutSecs))
			})
		},
	}
	cmd.Flags().BoolVar(&effective, "effective", false, "Apply RO_START_* environment overrides")
	return cmd
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "set <key> <value>",
		Short:     "Set a configuration value",
		Args:      cobra.ExactArgs(2),
		ValidArgs: config.SettableKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			candidate := app.store.Get()
			if err := candidate.Set(key, value); err != nil {
				return err
			}
			var cfg config.AppConfig
			var err error
			if key == "autostart" {
				cfg, err = applyAutostart(app, candidate.Autostart)
			} else {
				cfg, err = app.store.Update(func(c *config.AppConfig) { _ = c.Set(key, value) })
			}
			if err != nil {
				return err
			}
			return app.printer.Print(cfg, func() {
				ui.ShowSuccess("%s = %s", key, value)
			})
		},
	}
}

func newConfigPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.store.Path()
			return app.printer.Print(map[string]string{"path": path}, func() {
				fmt.Fprintln(app.Out, path)
			})
		},
	}
}
