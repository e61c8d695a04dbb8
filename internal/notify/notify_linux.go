//go:build linux

package notify

import (
	"log/slog"
	"os/exec"
)

type linuxNotifier struct {
	lookPath func(string) (string, error)
	run      func(name string, args ...string) error
}

func newPlatformNotifier() Notifier {
	return &linuxNotifier{
		lookPath: exec.LookPath,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

func (l *linuxNotifier) Send(n Notification) error {
	path, err := l.lookPath("notify-send")
	if err != nil {
		slog.Debug("notify-send not found, skipping desktop notification")
		return nil
	}
	return l.run(path, sendArgs(n)...)
}

func (l *linuxNotifier) Name() string { return "linux" }
