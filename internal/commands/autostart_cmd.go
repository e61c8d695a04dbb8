package commands

import (
	"github.com/spf13/cobra"

	"ro-start/internal/config"
	"ro-start/internal/ui"
)

type autostartStatus struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

func newAutostartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Manage the login autostart entry",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "enable",
			Short: "Start ro-start at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return setAutostart(app, true)
			},
		},
		&cobra.Command{
			Use:   "disable",
			Short: "Do not start ro-start at login",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return setAutostart(app, false)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show whether the autostart entry exists",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := app.autostart()
				if err != nil {
					return err
				}
				st := autostartStatus{Enabled: a.Enabled(), Path: a.Path()}
				return app.printer.Print(st, func() {
					if st.Enabled {
						ui.ShowSuccess("enabled (%s)", st.Path)
					} else {
						ui.ShowInfo("disabled")
					}
				})
			},
		},
	)
	return cmd
}

// setAutostart applies the flag and prints the resulting status.
func setAutostart(app *App, enabled bool) error {
	if _, err := applyAutostart(app, enabled); err != nil {
		return err
	}
	a, err := app.autostart()
	if err != nil {
		return err
	}
	st := autostartStatus{Enabled: enabled, Path: a.Path()}
	return app.printer.Print(st, func() {
		if enabled {
			ui.ShowSuccess("autostart enabled (%s)", st.Path)
		} else {
			ui.ShowSuccess("autostart disabled")
		}
	})
}

// applyAutostart saves the config flag first and then writes or removes the
// entry. If the entry cannot be synced the previous flag is restored, so the
// file and the config never disagree.
func applyAutostart(app *App, enabled bool) (config.AppConfig, error) {
	prev := app.store.Get().Autostart
	cfg, err := app.store.Update(func(c *config.AppConfig) { c.Autostart = enabled })
	if err != nil {
		return cfg, err
	}
	if err := syncAutostart(app, enabled); err != nil {
		if _, rbErr := app.store.Update(func(c *config.AppConfig) { c.Autostart = prev }); rbErr != nil {
			app.logger.Error("failed to restore autostart flag", "err", rbErr)
		}
		return app.store.Get(), err
	}
	return cfg, nil
}

func syncAutostart(app *App, enabled bool) error {
	a, err := app.autostart()
	if err != nil {
		return err
	}
	if !enabled {
		return a.Disable()
	}
	execPath, err := app.Executable()
	if err != nil {
		return err
	}
	return a.Enable(execPath)
}
