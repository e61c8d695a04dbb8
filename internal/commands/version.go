package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

type versionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := versionInfo{Version: Version, Commit: Commit, Date: Date}
			return app.printer.Print(v, func() {
				fmt.Fprintf(app.Out, "ro-start version %s (commit %s, built %s)\n", Version, Commit, Date)
			})
		},
	}
}
