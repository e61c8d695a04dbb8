// Package pkgmgr detects the system package manager and counts pending updates
// by scraping its plain-text output.
//
// The counting rules are line filters tuned to each manager's human-readable
// listing. They are heuristics, not a stable contract: a manager that changes
// its output format will skew the count, never fail the check.
package pkgmgr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ro-start/internal/apperr"
)

// Manager identifies a supported package manager.
type Manager int

const (
	Apt Manager = iota
	Dnf
	Pacman
	Zypper
)

// detectOrder is the fixed detection priority.
var detectOrder = []Manager{Apt, Dnf, Pacman, Zypper}

func (m Manager) String() string {
	switch m {
	case Apt:
		return "apt"
	case Dnf:
		return "dnf"
	case Pacman:
		return "pacman"
	case Zypper:
		return "zypper"
	default:
		return fmt.Sprintf("manager(%d)", int(m))
	}
}

// MarshalText lets Manager render by name in JSON and YAML output.
func (m Manager) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseManager is the inverse of String.
func ParseManager(s string) (Manager, error) {
	for _, m := range detectOrder {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown package manager %q", s)
}

// Binary is the executable run during detection.
func (m Manager) Binary() string { return m.String() }

// CheckCommand is the argv that lists pending updates.
func (m Manager) CheckCommand() []string {
	switch m {
	case Apt:
		return []string{"apt", "list", "--upgradable"}
	case Dnf:
		return []string{"dnf", "check-update"}
	case Pacman:
		return []string{"checkupdates"}
	case Zypper:
		return []string{"zypper", "list-updates"}
	}
	return nil
}

// dnfUpdatesAvailable is the exit status dnf check-update uses to signal
// pending updates.
const dnfUpdatesAvailable = 100

// ErrNotFound is returned by Detect when no candidate responds.
var ErrNotFound = apperr.ErrPackageManagerNotFound

// Detect runs each manager with --version in priority order and returns the
// first that exits successfully.
func Detect(ctx context.Context, r Runner) (Manager, error) {
	for _, m := range detectOrder {
		res, err := r.Run(ctx, m.Binary(), "--version")
		if err != nil || res.ExitCode != 0 {
			continue
		}
		slog.Debug("detected package manager", "manager", m.String())
		return m, nil
	}
	return 0, ErrNotFound
}

// UpdateInfo is the result of one update check.
type UpdateInfo struct {
	Available bool    `json:"available" yaml:"available"`
	Count     int     `json:"count" yaml:"count"`
	Manager   Manager `json:"package_manager" yaml:"package_manager"`
}

// Message is the short English status line for the result.
func (u UpdateInfo) Message() string {
	if u.Available {
		return fmt.Sprintf("%d update(s) available", u.Count)
	}
	return "System is up to date!"
}

// CountUpdates applies m's line filter to the stdout of its CheckCommand.
func CountUpdates(m Manager, stdout string) int {
	n := 0
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimRight(line, "\r")
		if countLine(m, line) {
			n++
		}
	}
	return n
}

func countLine(m Manager, line string) bool {
	switch m {
	case Apt:
		return strings.Contains(line, "upgradable") && !strings.HasPrefix(line, "Listing")
	case Dnf, Zypper:
		return line != "" &&
			!strings.HasPrefix(line, "#") &&
			!strings.HasPrefix(line, "Last metadata") &&
			!strings.Contains(line, "Metadata cache created")
	case Pacman:
		return line != ""
	}
	return false
}

// Lister is the narrow view the UI depends on.
type Lister interface {
	ListAvailableUpdates(ctx context.Context) (int, error)
}

// Checker runs the update listing for one manager.
type Checker struct {
	Manager Manager
	Runner  Runner
	// Timeout bounds one check. Zero means no limit.
	Timeout time.Duration
	Logger  *slog.Logger
}

func (c *Checker) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// CheckUpdates runs the manager's listing command and counts pending updates.
// Only a failure to run the command is an error; non-zero exit codes are
// tolerated.
func (c *Checker) CheckUpdates(ctx context.Context) (UpdateInfo, error) {
	log := c.logger()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	argv := c.Manager.CheckCommand()
	if len(argv) == 0 {
		return UpdateInfo{}, apperr.Errorf(apperr.KindUpdateCheckFailed, "no check command for %s", c.Manager)
	}

	runner := c.Runner
	if runner == nil {
		runner = ExecRunner{}
	}
	res, err := runner.Run(ctx, argv[0], argv[1:]...)
	if err != nil {
		log.Error("update check command failed to run", "argv", argv, "err", err)
		return UpdateInfo{}, apperr.New(apperr.KindUpdateCheckFailed, "command execution failed", err)
	}

	if res.ExitCode != 0 && !(c.Manager == Dnf && res.ExitCode == dnfUpdatesAvailable) {
		log.Warn("update check command returned non-zero", "argv", argv, "exit_code", res.ExitCode)
	}

	count := CountUpdates(c.Manager, string(res.Stdout))
	log.Debug("update check finished", "manager", c.Manager.String(), "count", count)

	return UpdateInfo{
		Available: count > 0,
		Count:     count,
		Manager:   c.Manager,
	}, nil
}

// ListAvailableUpdates implements Lister.
func (c *Checker) ListAvailableUpdates(ctx context.Context) (int, error) {
	info, err := c.CheckUpdates(ctx)
	if err != nil {
		return 0, err
	}
	return info.Count, nil
}

// DetectAndCheck is the one-shot path used by the CLI and the startup
// routine: detect, then check with the detected manager.
func DetectAndCheck(ctx context.Context, r Runner, timeout time.Duration) (UpdateInfo, error) {
	m, err := Detect(ctx, r)
	if err != nil {
		return UpdateInfo{}, err
	}
	c := &Checker{Manager: m, Runner: r, Timeout: timeout}
	return c.CheckUpdates(ctx)
}

// AutoLister detects the package manager on every call and then checks it.
// It lets the UI hold a Lister before any manager is known.
type AutoLister struct {
	Runner  Runner
	Timeout time.Duration
}

// ListAvailableUpdates implements Lister.
func (a AutoLister) ListAvailableUpdates(ctx context.Context) (int, error) {
	r := a.Runner
	if r == nil {
		r = ExecRunner{}
	}
	info, err := DetectAndCheck(ctx, r, a.Timeout)
	if err != nil {
		return 0, err
	}
	return info.Count, nil
}
