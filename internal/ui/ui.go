// Package ui has the plain-text helpers used by the non-interactive commands.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Out is where the helpers write. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

func ShowHeader(title string) {
	bar := strings.Repeat("─", utf8.RuneCountInString(title)+2)
	fmt.Fprintf(Out, " %s\n", bar)
	fmt.Fprintf(Out, " %s\n", title)
	fmt.Fprintf(Out, " %s\n", bar)
}

// ShowField prints one aligned "label: value" row.
func ShowField(width int, label, value string) {
	pad := width - utf8.RuneCountInString(label)
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(Out, "  %s%s  %s\n", label, strings.Repeat(" ", pad), value)
}

// FieldWidth is the widest label, for ShowField alignment.
func FieldWidth(labels ...string) int {
	w := 0
	for _, l := range labels {
		if n := utf8.RuneCountInString(l); n > w {
			w = n
		}
	}
	return w
}

func ShowListItem(marker, name, detail string) {
	if detail != "" {
		fmt.Fprintf(Out, "  %s %s  %s\n", marker, name, detail)
		return
	}
	fmt.Fprintf(Out, "  %s %s\n", marker, name)
}

func ShowSuccess(format string, args ...interface{}) {
	fmt.Fprintf(Out, " ✓ %s\n", fmt.Sprintf(format, args...))
}

func ShowError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(Out, " ✗ %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(Out, " ✗ %s\n", msg)
	}
}

func ShowWarning(format string, args ...interface{}) {
	fmt.Fprintf(Out, " ! %s\n", fmt.Sprintf(format, args...))
}

func ShowInfo(format string, args ...interface{}) {
	fmt.Fprintf(Out, " ℹ %s\n", fmt.Sprintf(format, args...))
}
