package commands

import (
	"github.com/spf13/cobra"

	"ro-start/internal/desktop"
	"ro-start/internal/i18n"
	"ro-start/internal/ui"
)

type openResult struct {
	Action  string `json:"action" yaml:"action"`
	Command string `json:"command" yaml:"command"`
	Desktop string `json:"desktop" yaml:"desktop"`
}

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "open <update|software|settings>",
		Short:     "Open the desktop's update manager, software center or settings",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"update", "software", "settings"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := desktop.ParseAction(args[0])
			if err != nil {
				return err
			}
			l := app.launcher()
			name, err := l.Launch(action)
			if err != nil {
				return err
			}
			res := openResult{Action: action.String(), Command: name, Desktop: l.Desktop}
			return app.printer.Print(res, func() {
				ui.ShowSuccess("%s", i18n.Format(app.loc.T().Actions.Opened, map[string]string{"name": name}))
			})
		},
	}
}
