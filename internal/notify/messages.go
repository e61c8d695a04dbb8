package notify

import (
	"log/slog"

	"ro-start/internal/i18n"
)

// Messenger sends the application's localized notifications. Send failures
// are logged and never returned; a missing notification daemon must not
// break the caller.
type Messenger struct {
	Notifier  Notifier
	Localizer *i18n.Localizer
	Logger    *slog.Logger
}

// NewMessenger wraps n with localized helpers.
func NewMessenger(n Notifier, l *i18n.Localizer) *Messenger {
	return &Messenger{Notifier: n, Localizer: l}
}

// UpdatesAvailable announces count pending updates.
func (m *Messenger) UpdatesAvailable(count int) {
	if !m.ready() {
		return
	}
	t := m.Localizer.T()
	m.send(Notification{
		Title:   t.Notify.UpdatesTitle,
		Message: i18n.Count(t.Notify.UpdatesBody, count),
		Urgency: UrgencyNormal,
	})
}

// Success shows msg under the localized success title.
func (m *Messenger) Success(msg string) {
	if !m.ready() {
		return
	}
	m.send(Notification{Title: m.Localizer.T().Notify.Success, Message: msg, Urgency: UrgencyLow})
}

// Error shows msg under the localized error title.
func (m *Messenger) Error(msg string) {
	if !m.ready() {
		return
	}
	m.send(Notification{Title: m.Localizer.T().Notify.Error, Message: msg, Urgency: UrgencyCritical})
}

// WithLocalizer returns a copy of m bound to l.
func (m *Messenger) WithLocalizer(l *i18n.Localizer) *Messenger {
	if m == nil {
		return nil
	}
	cp := *m
	cp.Localizer = l
	return &cp
}

// ready reports whether m can send. A nil or partly built Messenger
// silently drops notifications.
func (m *Messenger) ready() bool {
	return m != nil && m.Notifier != nil && m.Localizer != nil
}

func (m *Messenger) send(n Notification) {
	if err := m.Notifier.Send(n); err != nil {
		logger := m.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("failed to send notification", "notifier", m.Notifier.Name(), "title", n.Title, "err", err)
	}
}
