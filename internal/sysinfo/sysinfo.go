// Package sysinfo takes one-shot snapshots of host facts shown on the welcome
// screen.
package sysinfo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Info is an immutable snapshot.
type Info struct {
	CPUName            string  `json:"cpu_name" yaml:"cpu_name"`
	CPUUsage           float64 `json:"cpu_usage" yaml:"cpu_usage"`
	CPUInfo            string  `json:"cpu_info" yaml:"cpu_info"`
	TotalMemory        uint64  `json:"total_memory" yaml:"total_memory"`
	UsedMemory         uint64  `json:"used_memory" yaml:"used_memory"`
	MemoryInfo         string  `json:"memory_info" yaml:"memory_info"`
	OSName             string  `json:"os_name" yaml:"os_name"`
	OSVersion          string  `json:"os_version" yaml:"os_version"`
	DesktopEnvironment string  `json:"desktop_environment" yaml:"desktop_environment"`
	SessionType        string  `json:"session_type" yaml:"session_type"`
	KernelVersion      string  `json:"kernel_version" yaml:"kernel_version"`
	Hostname           string  `json:"hostname" yaml:"hostname"`
	DiskTotal          uint64  `json:"disk_total" yaml:"disk_total"`
	DiskUsed           uint64  `json:"disk_used" yaml:"disk_used"`
	DiskInfo           string  `json:"disk_info" yaml:"disk_info"`
}

const (
	unknownCPU = "Unknown CPU"
	unknown    = "Unknown"
)

// Collect takes a snapshot. Individual lookup failures degrade to placeholder
// values and are logged; Collect itself never fails.
func Collect(ctx context.Context) Info {
	return collect(ctx, os.Getenv, "/etc/os-release")
}

func collect(ctx context.Context, getenv func(string) string, osReleasePath string) Info {
	info := Info{
		CPUName:       unknownCPU,
		OSName:        "Linux",
		OSVersion:     unknown,
		KernelVersion: unknown,
		Hostname:      "localhost",
	}

	if cpus, err := cpu.InfoWithContext(ctx); err != nil {
		slog.Debug("cpu info unavailable", "err", err)
	} else if len(cpus) > 0 && strings.TrimSpace(cpus[0].ModelName) != "" {
		info.CPUName = strings.TrimSpace(cpus[0].ModelName)
	}

	if pct, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		slog.Debug("cpu usage unavailable", "err", err)
	} else if len(pct) > 0 {
		info.CPUUsage = pct[0]
	}
	info.CPUInfo = fmt.Sprintf("%.1f%% (%s)", info.CPUUsage, info.CPUName)

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		slog.Warn("memory info unavailable", "err", err)
	} else {
		info.TotalMemory = vm.Total
		info.UsedMemory = vm.Used
	}
	info.MemoryInfo = FormatMemory(info.UsedMemory, info.TotalMemory)

	if h, err := host.InfoWithContext(ctx); err != nil {
		slog.Debug("host info unavailable", "err", err)
	} else {
		if h.Hostname != "" {
			info.Hostname = h.Hostname
		}
		if h.KernelVersion != "" {
			info.KernelVersion = h.KernelVersion
		}
		if h.Platform != "" {
			info.OSName = h.Platform
		}
		if h.PlatformVersion != "" {
			info.OSVersion = h.PlatformVersion
		}
	}

	if name, version := readOSRelease(osReleasePath); name != "" {
		info.OSName = name
		if version != "" {
			info.OSVersion = version
		}
	}

	if du, err := disk.UsageWithContext(ctx, "/"); err != nil {
		slog.Debug("disk usage unavailable", "err", err)
	} else {
		info.DiskTotal = du.Total
		info.DiskUsed = du.Used
	}
	info.DiskInfo = FormatMemory(info.DiskUsed, info.DiskTotal)

	info.DesktopEnvironment = DetectDesktop(getenv)
	info.SessionType = DetectSessionType(getenv)
	return info
}

// FormatMemory renders used/total byte counts. Totals under 1024 MiB render as
// whole megabytes, larger ones as gigabytes with one decimal.
func FormatMemory(usedBytes, totalBytes uint64) string {
	const mib = 1024 * 1024
	usedMB := usedBytes / mib
	totalMB := totalBytes / mib

	if totalMB >= 1024 {
		return fmt.Sprintf("%.1f GB / %.1f GB", float64(usedMB)/1024.0, float64(totalMB)/1024.0)
	}
	return fmt.Sprintf("%d MB / %d MB", usedMB, totalMB)
}

// desktopKeywords is checked in order; the first keyword found in the
// lower-cased session string wins.
var desktopKeywords = []struct {
	keyword string
	name    string
}{
	{"kde", "KDE Plasma"},
	{"plasmadesktop", "KDE Plasma"},
	{"gnome", "GNOME"},
	{"xfce", "Xfce"},
	{"lxde", "LXDE"},
	{"lxqt", "LXQt"},
	{"cinnamon", "Cinnamon"},
	{"mate", "MATE"},
	{"budgie", "Budgie"},
	{"deepin", "Deepin"},
	{"sway", "Sway"},
	{"hyprland", "Hyprland"},
	{"i3", "i3"},
	{"cosmic", "COSMIC"},
	{"pantheon", "Pantheon"},
}

// DetectDesktop infers the desktop environment from XDG_CURRENT_DESKTOP, then
// DESKTOP_SESSION. Unrecognised values are returned verbatim.
func DetectDesktop(getenv func(string) string) string {
	val := getenv("XDG_CURRENT_DESKTOP")
	if val == "" {
		val = getenv("DESKTOP_SESSION")
	}
	if val == "" {
		return unknown
	}

	lower := strings.ToLower(val)
	for _, d := range desktopKeywords {
		if strings.Contains(lower, d.keyword) {
			return d.name
		}
	}
	return val
}

// DetectSessionType reports x11, wayland or tty from XDG_SESSION_TYPE.
func DetectSessionType(getenv func(string) string) string {
	if v := strings.TrimSpace(getenv("XDG_SESSION_TYPE")); v != "" {
		return v
	}
	if getenv("WAYLAND_DISPLAY") != "" {
		return "wayland"
	}
	if getenv("DISPLAY") != "" {
		return "x11"
	}
	return unknown
}

func readOSRelease(path string) (name, version string) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", ""
	}
	for _, ln := range strings.Split(string(b), "\n") {
		if strings.HasPrefix(ln, "NAME=") && name == "" {
			name = strings.Trim(strings.TrimPrefix(ln, "NAME="), `"'`)
		}
		if strings.HasPrefix(ln, "VERSION_ID=") && version == "" {
			version = strings.Trim(strings.TrimPrefix(ln, "VERSION_ID="), `"'`)
		}
	}
	return name, version
}

// State holds the latest snapshot and can be refreshed on demand.
type State struct {
	mu      sync.RWMutex
	info    Info
	collect func(context.Context) Info
}

// NewState takes an initial snapshot.
func NewState(ctx context.Context) *State {
	return NewStateFunc(ctx, Collect)
}

// NewStateFunc is NewState with a custom collector.
func NewStateFunc(ctx context.Context, collect func(context.Context) Info) *State {
	if collect == nil {
		collect = Collect
	}
	return &State{info: collect(ctx), collect: collect}
}

// Info returns the current snapshot.
func (s *State) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.info
}

// Refresh replaces the snapshot and returns it.
func (s *State) Refresh(ctx context.Context) Info {
	collect := s.collect
	if collect == nil {
		collect = Collect
	}
	info := collect(ctx)
	s.mu.Lock()
	s.info = info
	s.mu.Unlock()
	return info
}
