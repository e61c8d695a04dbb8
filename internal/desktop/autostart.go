package desktop

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"ro-start/internal/apperr"
)

const autostartName = "ro-start.desktop"

var desktopEntry = template.Must(template.New("desktop").Parse(`[Desktop Entry]
Type=Application
Name=Ro-Start
Comment=Welcome screen for your Linux desktop
Exec={{.Exec}}
Icon=ro-start
Terminal=true
Categories=System;Utility;
StartupNotify=false
X-GNOME-Autostart-enabled=true
`))

// Autostart manages the XDG autostart entry for ro-start.
type Autostart struct {
	Dir string
}

// NewAutostart resolves $XDG_CONFIG_HOME/autostart, falling back to
// ~/.config/autostart.
func NewAutostart(getenv func(string) string) (*Autostart, error) {
	configDir := getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, apperr.New(apperr.KindIO, "resolve home directory", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return &Autostart{Dir: filepath.Join(configDir, "autostart")}, nil
}

// Path is the full path of the desktop entry.
func (a *Autostart) Path() string {
	return filepath.Join(a.Dir, autostartName)
}

// Enable writes the desktop entry pointing at execPath. An existing entry is
// replaced.
func (a *Autostart) Enable(execPath string) error {
	if execPath == "" {
		return apperr.Errorf(apperr.KindConfig, "empty executable path")
	}
	if strings.ContainsAny(execPath, "\r\n") {
		return apperr.Errorf(apperr.KindConfig, "executable path contains a line break")
	}
	var buf bytes.Buffer
	if err := desktopEntry.Execute(&buf, struct{ Exec string }{Exec: quoteExec(execPath)}); err != nil {
		return fmt.Errorf("render desktop entry: %w", err)
	}
	if err := os.MkdirAll(a.Dir, 0o755); err != nil {
		return apperr.New(apperr.KindIO, "create autostart directory", err)
	}
	if err := os.WriteFile(a.Path(), buf.Bytes(), 0o644); err != nil {
		return apperr.New(apperr.KindIO, "write autostart entry", err)
	}
	return nil
}

// Disable removes the desktop entry. A missing entry is not an error.
func (a *Autostart) Disable() error {
	if err := os.Remove(a.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperr.New(apperr.KindIO, "remove autostart entry", err)
	}
	return nil
}

// Enabled reports whether the desktop entry exists.
func (a *Autostart) Enabled() bool {
	_, err := os.Stat(a.Path())
	return err == nil
}

// Sync makes the entry match enabled.
func (a *Autostart) Sync(enabled bool, execPath string) error {
	if enabled {
		return a.Enable(execPath)
	}
	return a.Disable()
}

// Executable is the resolved path of the running binary.
func Executable() (string, error) {
	p, err := os.Executable()
	if err != nil {
		return "", apperr.New(apperr.KindIO, "locate executable", err)
	}
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	return p, nil
}

// quoteExec renders path as one quoted Exec argument. The characters " ` $ \
// are backslash-escaped inside the quotes. Desktop files unescape string
// values before splitting Exec, so each of those backslashes is written twice.
// A literal % is written as %%.
func quoteExec(path string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range path {
		switch r {
		case '\\':
			b.WriteString(`\\\\`)
		case '"', '`', '$':
			b.WriteString(`\\`)
			b.WriteRune(r)
		case '%':
			b.WriteString("%%")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
