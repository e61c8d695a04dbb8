// Package desktop launches the running desktop's own tools and manages the
// XDG autostart entry.
package desktop

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"ro-start/internal/apperr"
)

// Action is a desktop tool the welcome screen can open.
type Action int

const (
	UpdateManager Action = iota
	SoftwareCenter
	SystemSettings
)

// Actions lists every Action in menu order.
func Actions() []Action {
	return []Action{UpdateManager, SoftwareCenter, SystemSettings}
}

func (a Action) String() string {
	switch a {
	case UpdateManager:
		return "update"
	case SoftwareCenter:
		return "software"
	case SystemSettings:
		return "settings"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction maps the CLI names update, software and settings to an Action.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions() {
		if strings.EqualFold(s, a.String()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q (want update, software or settings)", s)
}

// CommandFor returns the binary that performs action on the desktop de, where
// de is a display name as produced by sysinfo.DetectDesktop.
func CommandFor(action Action, de string) string {
	switch action {
	case UpdateManager, SoftwareCenter:
		switch de {
		case "KDE Plasma":
			return "discover"
		case "GNOME":
			return "gnome-software"
		case "Xfce":
			return "xfce4-appfinder"
		case "Cinnamon", "MATE", "Budgie":
			if action == SoftwareCenter {
				return "mintinstall"
			}
			return "mintupdate"
		default:
			return "gnome-software"
		}
	case SystemSettings:
		switch de {
		case "KDE Plasma":
			return "systemsettings5"
		case "Xfce":
			return "xfce4-settings-manager"
		case "Cinnamon":
			return "cinnamon-settings"
		case "MATE":
			return "mate-control-center"
		default:
			return "gnome-control-center"
		}
	}
	return ""
}

// StartFunc starts name without waiting for it to exit.
type StartFunc func(name string, args ...string) error

// Launcher opens desktop tools for one desktop environment.
type Launcher struct {
	Desktop string
	Start   StartFunc
	Logger  *slog.Logger
}

// NewLauncher returns a Launcher for de that spawns real processes.
func NewLauncher(de string) *Launcher {
	return &Launcher{Desktop: de, Start: startDetached}
}

// Launch starts the tool for action and returns the binary it started.
// The child runs with argv only, never through a shell.
func (l *Launcher) Launch(action Action) (string, error) {
	name := CommandFor(action, l.Desktop)
	if name == "" {
		return "", apperr.Errorf(apperr.KindCommandFailed, "no command for %s", action)
	}
	start := l.Start
	if start == nil {
		start = startDetached
	}
	if err := start(name); err != nil {
		return name, apperr.New(apperr.KindCommandFailed, name, err)
	}
	l.logger().Info("launched desktop tool", "action", action.String(), "command", name, "desktop", l.Desktop)
	return name, nil
}

func (l *Launcher) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child so it does not linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
