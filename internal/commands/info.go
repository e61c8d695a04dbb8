package commands

import (
	"context"

	"github.com/spf13/cobra"

	"ro-start/internal/sysinfo"
	"ro-start/internal/ui"
)

func newInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show system information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), app)
		},
	}
}

func runInfo(ctx context.Context, app *App) error {
	collect := app.CollectInfo
	if collect == nil {
		collect = sysinfo.Collect
	}
	info := collect(ctx)
	return app.printer.Print(info, func() {
		t := app.loc.T()
		rows := [][2]string{
			{t.System.OS, joinNonEmpty(info.OSName, info.OSVersion)},
			{t.System.Desktop, info.DesktopEnvironment},
			{t.System.Session, info.SessionType},
			{t.System.Kernel, info.KernelVersion},
			{t.System.CPU, info.CPUInfo},
			{t.System.Memory, info.MemoryInfo},
			{t.System.Disk, info.DiskInfo},
			{t.System.Hostname, info.Hostname},
		}
		labels := make([]string, len(rows))
		for i, r := range rows {
			labels[i] = r[0]
		}
		w := ui.FieldWidth(labels...)

		ui.ShowHeader(t.System.Title)
		for _, r := range rows {
			ui.ShowField(w, r[0], r[1])
		}
	})
}

func joinNonEmpty(name, version string) string {
	if version == "" || version == "Unknown" {
		return name
	}
	return name + " " + version
}
