package commands

import (
	"github.com/spf13/cobra"

	"ro-start/internal/i18n"
	"ro-start/internal/pkgmgr"
	"ro-start/internal/ui"
)

func newUpdatesCmd(app *App) *cobra.Command {
	var sendNotification bool
	cmd := &cobra.Command{
		Use:   "updates",
		Short: "Check for pending package updates",
		Long: "Detect the package manager (apt, dnf, pacman, zypper) and count pending updates.\n" +
			"Exits 1 when no manager is found or the check cannot run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout := app.effectiveConfig().UpdateTimeout()
			info, err := pkgmgr.DetectAndCheck(cmd.Context(), app.Runner, timeout)
			if err != nil {
				if sendNotification {
					app.messenger().Error(app.loc.T().Update.Error)
				}
				return err
			}
			if sendNotification && info.Available {
				app.messenger().UpdatesAvailable(info.Count)
			}
			return app.printer.Print(info, func() {
				t := app.loc.T()
				if info.Available {
					ui.ShowWarning("%s (%s)", i18n.Count(t.Update.StatusNeedUpdate, info.Count), info.Manager)
					return
				}
				ui.ShowSuccess("%s (%s)", t.Update.StatusUptodate, info.Manager)
			})
		},
	}
	cmd.Flags().BoolVar(&sendNotification, "notify", false, "Also send a desktop notification with the result")
	return cmd
}

type detectResult struct {
	Manager pkgmgr.Manager `json:"package_manager" yaml:"package_manager"`
	Check   []string       `json:"check_command" yaml:"check_command"`
}

func newDetectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Print the detected package manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := pkgmgr.Detect(cmd.Context(), app.Runner)
			if err != nil {
				return err
			}
			res := detectResult{Manager: m, Check: m.CheckCommand()}
			return app.printer.Print(res, func() {
				ui.ShowInfo("%s", m)
			})
		},
	}
}
