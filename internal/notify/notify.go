// Package notify sends desktop notifications.
package notify

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

const (
	AppName        = "Ro-Start"
	DefaultIcon    = "ro-start"
	DefaultTimeout = 5000 // milliseconds
)

// Urgency mirrors the freedesktop notification urgency levels.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyCritical Urgency = "critical"
)

// Notification represents a notification to be sent.
type Notification struct {
	Title   string
	Message string
	Icon    string
	Urgency Urgency
	Timeout int // milliseconds, 0 means DefaultTimeout
}

// Notifier sends notifications.
type Notifier interface {
	Send(n Notification) error
	Name() string
}

// NewDesktopNotifier returns a platform-specific desktop notification sender.
func NewDesktopNotifier() Notifier {
	return newPlatformNotifier()
}

// sendArgs builds the notify-send argv for n.
func sendArgs(n Notification) []string {
	icon := n.Icon
	if icon == "" {
		icon = DefaultIcon
	}
	timeout := n.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	args := []string{"-a", AppName, "-i", icon, "-t", strconv.Itoa(timeout)}
	if n.Urgency != "" {
		args = append(args, "-u", string(n.Urgency))
	}
	return append(args, n.Title, n.Message)
}

// MultiNotifier fans one notification out to several notifiers. The
// default setup pairs the desktop backend with a LogNotifier so every
// notification is also recorded in the log.
type MultiNotifier struct {
	notifiers []Notifier
}

// NewMultiNotifier skips nil entries.
func NewMultiNotifier(ns ...Notifier) *MultiNotifier {
	m := &MultiNotifier{}
	for _, n := range ns {
		if n != nil {
			m.notifiers = append(m.notifiers, n)
		}
	}
	return m
}

// Send tries every notifier and joins their errors.
func (m *MultiNotifier) Send(n Notification) error {
	var errs []error
	for _, notifier := range m.notifiers {
		if err := notifier.Send(n); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", notifier.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (m *MultiNotifier) Name() string {
	names := make([]string, len(m.notifiers))
	for i, n := range m.notifiers {
		names[i] = n.Name()
	}
	return "multi(" + strings.Join(names, ",") + ")"
}

// LogNotifier writes each notification to a logger at info level. A nil
// Logger means the process default at send time, which is the TUI log file
// while the TUI runs.
type LogNotifier struct {
	Logger *slog.Logger
}

func (l LogNotifier) Send(n Notification) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("notification", "title", n.Title, "message", n.Message, "urgency", string(n.Urgency))
	return nil
}

func (LogNotifier) Name() string { return "log" }

// Discard drops every notification. It backs --no-startup style runs and
// tests.
type Discard struct{}

func (Discard) Send(Notification) error { return nil }
func (Discard) Name() string            { return "discard" }
