// Package apperr defines the flat error taxonomy shared by ro-start packages.
//
// Every failure that reaches a user-visible surface (a dialog line in the TUI,
// a notification, or a CLI error) carries one of the Kinds below so callers can
// branch with errors.Is without string matching.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindSystemInfo classifies host lookup failures. sysinfo.Collect logs
	// them and degrades to placeholder values, so nothing returns it today.
	KindSystemInfo
	KindConfig
	KindIO
	KindCommandFailed
	KindPackageManagerNotFound
	KindUpdateCheckFailed
)

func (k Kind) String() string {
	switch k {
	case KindSystemInfo:
		return "system information error"
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "io error"
	case KindCommandFailed:
		return "command execution failed"
	case KindPackageManagerNotFound:
		return "package manager not found"
	case KindUpdateCheckFailed:
		return "update check failed"
	default:
		return "unknown error"
	}
}

// Error is a classified error with an optional detail message and cause.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

// New returns an *Error of the given kind.
func New(kind Kind, detail string, err error) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

// Errorf is New with a formatted detail. A %w verb is not interpreted; pass the
// cause through New instead.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by Kind, so sentinel values like
// ErrPackageManagerNotFound work with errors.Is regardless of detail.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Detail == "" || t.Detail == e.Detail)
}

// Sentinels for errors.Is checks.
var (
	ErrSystemInfo             = &Error{Kind: KindSystemInfo}
	ErrConfig                 = &Error{Kind: KindConfig}
	ErrIO                     = &Error{Kind: KindIO}
	ErrCommandFailed          = &Error{Kind: KindCommandFailed}
	ErrPackageManagerNotFound = &Error{Kind: KindPackageManagerNotFound}
	ErrUpdateCheckFailed      = &Error{Kind: KindUpdateCheckFailed}
)

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
