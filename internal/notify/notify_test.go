package notify

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ro-start/internal/i18n"
)

func TestMultiNotifierSend(t *testing.T) {
	var called []string
	record := func(name string, err error) *mockNotifier {
		return &mockNotifier{name: name, sendFn: func(Notification) error {
			called = append(called, name)
			return err
		}}
	}

	m := NewMultiNotifier(record("a", nil), record("b", errors.New("daemon gone")), nil, record("c", nil))
	err := m.Send(Notification{Title: "test", Message: "hello"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "b: daemon gone")
	assert.Equal(t, []string{"a", "b", "c"}, called)
}

func TestMultiNotifierJoinsErrors(t *testing.T) {
	first, second := errors.New("one"), errors.New("two")
	m := NewMultiNotifier(
		&mockNotifier{name: "x", sendFn: func(Notification) error { return first }},
		&mockNotifier{name: "y", sendFn: func(Notification) error { return second }},
	)
	err := m.Send(Notification{})
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

func TestMultiNotifierName(t *testing.T) {
	m := NewMultiNotifier(&mockNotifier{name: "x"}, LogNotifier{})
	assert.Equal(t, "multi(x,log)", m.Name())
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	l := LogNotifier{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	require.NoError(t, l.Send(Notification{Title: "Updates Available", Message: "2 update(s)", Urgency: UrgencyNormal}))
	assert.Contains(t, buf.String(), `title="Updates Available"`)
	assert.Contains(t, buf.String(), "urgency=normal")
}

func TestSendArgs(t *testing.T) {
	tests := []struct {
		name string
		n    Notification
		want []string
	}{
		{
			name: "defaults",
			n:    Notification{Title: "Updates Available", Message: "3 update(s)"},
			want: []string{"-a", "Ro-Start", "-i", "ro-start", "-t", "5000", "Updates Available", "3 update(s)"},
		},
		{
			name: "custom icon timeout urgency",
			n:    Notification{Title: "t", Message: "m", Icon: "dialog-error", Timeout: 1500, Urgency: UrgencyCritical},
			want: []string{"-a", "Ro-Start", "-i", "dialog-error", "-t", "1500", "-u", "critical", "t", "m"},
		},
		{
			name: "leading dash in message stays a positional argument",
			n:    Notification{Title: "t", Message: "--help"},
			want: []string{"-a", "Ro-Start", "-i", "ro-start", "-t", "5000", "t", "--help"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sendArgs(tt.n))
		})
	}
}

func TestNewDesktopNotifier(t *testing.T) {
	n := NewDesktopNotifier()
	require.NotNil(t, n)
	assert.NotEmpty(t, n.Name())
}

func TestMessengerUpdatesAvailable(t *testing.T) {
	var got []Notification
	m := NewMessenger(&mockNotifier{name: "m", sendFn: func(n Notification) error {
		got = append(got, n)
		return nil
	}}, i18n.NewLocalizer(i18n.NewCatalog(), "en_US"))

	m.UpdatesAvailable(4)
	require.Len(t, got, 1)
	assert.Equal(t, "Updates Available", got[0].Title)
	assert.Equal(t, "4 update(s) are ready to install", got[0].Message)
}

func TestMessengerLocalized(t *testing.T) {
	c := i18n.NewCatalog()
	require.NoError(t, c.Add("tr_TR", []byte(`{"notify":{"error":"Hata","success":"Başarılı"}}`)))
	var got []Notification
	m := NewMessenger(&mockNotifier{name: "m", sendFn: func(n Notification) error {
		got = append(got, n)
		return nil
	}}, i18n.NewLocalizer(c, "tr_TR"))

	m.Error("boom")
	m.Success("ok")
	require.Len(t, got, 2)
	assert.Equal(t, "Hata", got[0].Title)
	assert.Equal(t, UrgencyCritical, got[0].Urgency)
	assert.Equal(t, "Başarılı", got[1].Title)
	assert.Equal(t, "ok", got[1].Message)
}

func TestMessengerSwallowsErrors(t *testing.T) {
	m := NewMessenger(&mockNotifier{name: "broken", sendFn: func(Notification) error {
		return errors.New("no dbus")
	}}, i18n.NewLocalizer(nil, ""))

	assert.NotPanics(t, func() {
		m.Error("x")
		m.UpdatesAvailable(1)
	})
}

func TestMessengerNilSafe(t *testing.T) {
	var nilMessenger *Messenger
	sent := false
	noLocalizer := &Messenger{Notifier: &mockNotifier{name: "m", sendFn: func(Notification) error {
		sent = true
		return nil
	}}}

	assert.NotPanics(t, func() {
		nilMessenger.UpdatesAvailable(3)
		nilMessenger.Success("ignored")
		nilMessenger.Error("ignored")
		noLocalizer.UpdatesAvailable(3)
		noLocalizer.Error("ignored")
	})
	assert.False(t, sent)
	assert.Nil(t, nilMessenger.WithLocalizer(i18n.NewLocalizer(nil, "")))
}

type mockNotifier struct {
	name   string
	sendFn func(Notification) error
}

func (m *mockNotifier) Send(n Notification) error {
	if m.sendFn != nil {
		return m.sendFn(n)
	}
	return nil
}

func (m *mockNotifier) Name() string { return m.name }
