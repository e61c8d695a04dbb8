package commands

import (
	"github.com/spf13/cobra"

	"ro-start/internal/i18n"
	"ro-start/internal/ui"
)

type localeEntry struct {
	Code   string `json:"code" yaml:"code"`
	Name   string `json:"name" yaml:"name"`
	Active bool   `json:"active" yaml:"active"`
}

func newLocalesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List available UI locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []localeEntry
			for _, code := range app.loc.Available() {
				entries = append(entries, localeEntry{
					Code:   code,
					Name:   i18n.DisplayName(code),
					Active: code == app.loc.Locale(),
				})
			}
			return app.printer.Print(entries, func() {
				for _, e := range entries {
					marker := " "
					if e.Active {
						marker = "*"
					}
					ui.ShowListItem(marker, e.Code, e.Name)
				}
			})
		},
	}
}
