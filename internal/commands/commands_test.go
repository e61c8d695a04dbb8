package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ro-start/internal/config"
	"ro-start/internal/notify"
	"ro-start/internal/pkgmgr"
	"ro-start/internal/sysinfo"
	"ro-start/internal/tui"
)

type stubRunner map[string]pkgmgr.Result

func (s stubRunner) Run(_ context.Context, name string, _ ...string) (pkgmgr.Result, error) {
	res, ok := s[name]
	if !ok {
		return pkgmgr.Result{}, exec.ErrNotFound
	}
	return res, nil
}

type sentNotifier struct{ sent []notify.Notification }

func (s *sentNotifier) Send(n notify.Notification) error {
	s.sent = append(s.sent, n)
	return nil
}
func (s *sentNotifier) Name() string { return "test" }

type started struct {
	name string
	args []string
}

type testEnv struct {
	app      *App
	out      *bytes.Buffer
	errOut   *bytes.Buffer
	cfgPath  string
	xdg      string
	tuiOpts  *tui.Options
	started  []started
	notifier *sentNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	env := map[string]string{
		"XDG_CONFIG_HOME":     filepath.Join(dir, "xdg"),
		"XDG_CURRENT_DESKTOP": "GNOME",
		"LANG":                "en_US.UTF-8",
	}
	te := &testEnv{
		out:      &bytes.Buffer{},
		errOut:   &bytes.Buffer{},
		cfgPath:  filepath.Join(dir, "config.toml"),
		xdg:      env["XDG_CONFIG_HOME"],
		notifier: &sentNotifier{},
	}
	te.app = &App{
		Runner: stubRunner{
			"pacman":       {},
			"checkupdates": {Stdout: []byte("linux 1 -> 2\nvim 1 -> 2\nbash 1 -> 2\n")},
		},
		Getenv: func(k string) string { return env[k] },
		Out:    te.out,
		Err:    te.errOut,
		IsTTY:  func() bool { return false },
		RunTUI: func(o tui.Options) error {
			te.tuiOpts = &o
			return nil
		},
		CollectInfo: func(context.Context) sysinfo.Info {
			return sysinfo.Info{
				OSName:             "Fedora Linux",
				OSVersion:          "40",
				DesktopEnvironment: "GNOME",
				KernelVersion:      "6.8.0",
				Hostname:           "box",
			}
		},
		StartTool: func(name string, args ...string) error {
			te.started = append(te.started, started{name: name, args: args})
			return nil
		},
		Notifier:   te.notifier,
		Executable: func() (string, error) { return "/usr/bin/ro-start", nil },
		LogDir:     func() (string, error) { return filepath.Join(dir, "logs"), nil },
	}
	return te
}

func (te *testEnv) run(args ...string) int {
	te.out.Reset()
	te.errOut.Reset()
	return Execute(te.app, append([]string{"--config", te.cfgPath}, args...))
}

func decodeResult(t *testing.T, b []byte, data any) {
	t.Helper()
	var res struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	require.NoError(t, json.Unmarshal(b, &res), string(b))
	require.True(t, res.Success, res.Error)
	if data != nil {
		require.NoError(t, json.Unmarshal(res.Data, data))
	}
}

func TestVersion(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("version"))
	assert.Contains(t, te.out.String(), "ro-start version dev")

	require.Equal(t, 0, te.run("version", "-o", "json"))
	var v versionInfo
	decodeResult(t, te.out.Bytes(), &v)
	assert.Equal(t, "dev", v.Version)
}

func TestRootWithoutTerminalPrintsInfo(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run())
	assert.Nil(t, te.tuiOpts)
	assert.Contains(t, te.out.String(), "System Information")
	assert.Contains(t, te.out.String(), "Fedora Linux 40")
	assert.Contains(t, te.out.String(), "box")
}

func TestRootWithTerminalRunsTUI(t *testing.T) {
	te := newTestEnv(t)
	te.app.IsTTY = func() bool { return true }

	require.Equal(t, 0, te.run())
	require.NotNil(t, te.tuiOpts)
	assert.True(t, te.tuiOpts.StartupCheck)
	assert.Equal(t, "en_US", te.tuiOpts.Localizer.Locale())
	assert.Equal(t, "/usr/bin/ro-start", te.tuiOpts.Controller.ExecPath)
}

func TestNoStartupDisablesStartupCheck(t *testing.T) {
	te := newTestEnv(t)
	te.app.IsTTY = func() bool { return true }

	require.Equal(t, 0, te.run("--no-startup"))
	require.NotNil(t, te.tuiOpts)
	assert.False(t, te.tuiOpts.StartupCheck)
}

func TestLocaleFlagLocalizesOutput(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("--locale", "tr", "info"))
	assert.Contains(t, te.out.String(), "Sistem Bilgisi")
}

func TestConfigLanguageSelectsLocale(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("config", "set", "language", "tr_TR"))
	require.Equal(t, 0, te.run("info"))
	assert.Contains(t, te.out.String(), "Sistem Bilgisi")
}

func TestInfoJSON(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("info", "-o", "json"))
	var info sysinfo.Info
	decodeResult(t, te.out.Bytes(), &info)
	assert.Equal(t, "box", info.Hostname)
}

func TestUpdates(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("updates"))
	assert.Contains(t, te.out.String(), "3 update(s) available (pacman)")
	assert.Empty(t, te.notifier.sent)

	require.Equal(t, 0, te.run("updates", "-o", "yaml"))
	assert.Contains(t, te.out.String(), "success: true")
	assert.Contains(t, te.out.String(), "count: 3")
}

func TestUpdatesNotify(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("updates", "--notify"))
	require.Len(t, te.notifier.sent, 1)
	assert.Contains(t, te.notifier.sent[0].Message, "3")
}

func TestUpdatesUpToDate(t *testing.T) {
	te := newTestEnv(t)
	te.app.Runner = stubRunner{"apt": {}}
	require.Equal(t, 0, te.run("updates"))
	assert.Contains(t, te.out.String(), "System is up to date! (apt)")
}

func TestUpdatesNoManager(t *testing.T) {
	te := newTestEnv(t)
	te.app.Runner = stubRunner{}
	assert.Equal(t, 1, te.run("updates", "--notify"))
	assert.Contains(t, te.errOut.String(), "package manager not found")
	require.Len(t, te.notifier.sent, 1)
	assert.Equal(t, notify.UrgencyCritical, te.notifier.sent[0].Urgency)
}

func TestStructuredError(t *testing.T) {
	te := newTestEnv(t)
	te.app.Runner = stubRunner{}
	assert.Equal(t, 1, te.run("updates", "-o", "json"))
	assert.Contains(t, te.out.String(), `"success": false`)
}

func TestDetect(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("detect", "-o", "json"))
	var res struct {
		Manager string   `json:"package_manager"`
		Check   []string `json:"check_command"`
	}
	decodeResult(t, te.out.Bytes(), &res)
	assert.Equal(t, "pacman", res.Manager)
	assert.Equal(t, []string{"checkupdates"}, res.Check)
}

func TestOpen(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("open", "settings"))
	require.Len(t, te.started, 1)
	assert.Equal(t, "gnome-control-center", te.started[0].name)
	assert.Empty(t, te.started[0].args)
	assert.Contains(t, te.out.String(), "gnome-control-center opened")
}

func TestOpenUnknownAction(t *testing.T) {
	te := newTestEnv(t)
	assert.Equal(t, 1, te.run("open", "terminal"))
	assert.Empty(t, te.started)
}

func TestConfigSetAndShow(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("config", "set", "theme", "dark"))

	require.Equal(t, 0, te.run("config", "show", "-o", "json"))
	var cfg config.AppConfig
	decodeResult(t, te.out.Bytes(), &cfg)
	assert.Equal(t, "dark", cfg.Theme)

	loaded, err := config.Load(te.cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "dark", loaded.Theme)
}

func TestConfigSetRejectsInvalid(t *testing.T) {
	te := newTestEnv(t)
	assert.Equal(t, 1, te.run("config", "set", "theme", "neon"))
	assert.Equal(t, 1, te.run("config", "set", "app_name", "x"))
	_, err := os.Stat(te.cfgPath)
	assert.True(t, os.IsNotExist(err))
}

func TestConfigPath(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("config", "path"))
	assert.Equal(t, te.cfgPath+"\n", te.out.String())
}

func TestConfigSetAutostartWritesEntry(t *testing.T) {
	te := newTestEnv(t)
	entry := filepath.Join(te.xdg, "autostart", "ro-start.desktop")

	require.Equal(t, 0, te.run("config", "set", "autostart", "true"))
	data, err := os.ReadFile(entry)
	require.NoError(t, err)
	assert.Contains(t, string(data), `Exec="/usr/bin/ro-start"`)

	require.Equal(t, 0, te.run("config", "set", "autostart", "false"))
	assert.NoFileExists(t, entry)
}

func TestAutostartCommands(t *testing.T) {
	te := newTestEnv(t)
	entry := filepath.Join(te.xdg, "autostart", "ro-start.desktop")

	require.Equal(t, 0, te.run("autostart", "enable"))
	assert.FileExists(t, entry)
	loaded, err := config.Load(te.cfgPath)
	require.NoError(t, err)
	assert.True(t, loaded.Autostart)

	require.Equal(t, 0, te.run("autostart", "status", "-o", "json"))
	var st autostartStatus
	decodeResult(t, te.out.Bytes(), &st)
	assert.True(t, st.Enabled)
	assert.Equal(t, entry, st.Path)

	require.Equal(t, 0, te.run("autostart", "disable"))
	assert.NoFileExists(t, entry)
	loaded, err = config.Load(te.cfgPath)
	require.NoError(t, err)
	assert.False(t, loaded.Autostart)
}

func TestLocales(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("--locale", "de_AT", "locales", "-o", "json"))
	var entries []localeEntry
	decodeResult(t, te.out.Bytes(), &entries)

	active := map[string]bool{}
	for _, e := range entries {
		active[e.Code] = e.Active
	}
	assert.Contains(t, active, "en_US")
	assert.Contains(t, active, "tr_TR")
	assert.True(t, active["de"])
	assert.False(t, active["en_US"])
}

func TestInvalidOutputFormat(t *testing.T) {
	te := newTestEnv(t)
	assert.Equal(t, 1, te.run("version", "-o", "xml"))
	assert.Contains(t, te.errOut.String(), "Error:")
}

func TestCompletion(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("completion", "bash"))
	assert.Contains(t, te.out.String(), "ro-start")
}

func TestAutostartEnableLeavesNoEntryWhenConfigCannotBeSaved(t *testing.T) {
	te := newTestEnv(t)
	entry := filepath.Join(te.xdg, "autostart", "ro-start.desktop")
	require.NoError(t, os.WriteFile(te.cfgPath, []byte("language = \"pt_BR\"\n"), 0o600))

	assert.Equal(t, 1, te.run("autostart", "enable"))
	assert.Contains(t, te.errOut.String(), "pt_BR")
	assert.NoFileExists(t, entry)

	loaded, err := config.Load(te.cfgPath)
	require.NoError(t, err)
	assert.False(t, loaded.Autostart)
}

func TestAutostartEnableRestoresConfigWhenEntryFails(t *testing.T) {
	te := newTestEnv(t)
	te.app.Executable = func() (string, error) { return "", errors.New("executable not found") }

	assert.Equal(t, 1, te.run("autostart", "enable"))
	assert.Contains(t, te.errOut.String(), "executable not found")

	loaded, err := config.Load(te.cfgPath)
	require.NoError(t, err)
	assert.False(t, loaded.Autostart)
}

func TestConfigSetAutostartRestoresConfigWhenEntryFails(t *testing.T) {
	te := newTestEnv(t)
	// A regular file where the autostart directory should be.
	require.NoError(t, os.MkdirAll(te.xdg, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(te.xdg, "autostart"), nil, 0o644))

	assert.Equal(t, 1, te.run("config", "set", "autostart", "true"))

	loaded, err := config.Load(te.cfgPath)
	require.NoError(t, err)
	assert.False(t, loaded.Autostart)
}

func TestConfigSetAutostartDisableKeepsFlagWhenRemovalFails(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("config", "set", "autostart", "true"))

	// Turn the entry into a non-empty directory so removing it fails.
	entry := filepath.Join(te.xdg, "autostart", "ro-start.desktop")
	require.NoError(t, os.Remove(entry))
	require.NoError(t, os.MkdirAll(filepath.Join(entry, "keep"), 0o755))

	assert.Equal(t, 1, te.run("config", "set", "autostart", "false"))
	loaded, err := config.Load(te.cfgPath)
	require.NoError(t, err)
	assert.True(t, loaded.Autostart)
}

func TestStructuredOutputLogsJSON(t *testing.T) {
	te := newTestEnv(t)
	require.NoError(t, os.WriteFile(te.cfgPath, []byte("not = [valid"), 0o600))

	require.Equal(t, 0, te.run("version", "-o", "json"))
	assert.Contains(t, te.errOut.String(), `"level":"WARN"`)
	assert.Contains(t, te.errOut.String(), `"msg":"failed to load config, using defaults"`)

	require.Equal(t, 0, te.run("version"))
	assert.Contains(t, te.errOut.String(), "level=WARN")
}

func TestNotificationsAreLogged(t *testing.T) {
	te := newTestEnv(t)
	require.Equal(t, 0, te.run("--debug", "updates", "--notify"))
	require.Len(t, te.notifier.sent, 1)
	assert.Contains(t, te.errOut.String(), "msg=notification")
	assert.Contains(t, te.errOut.String(), `title="Updates Available"`)
}
