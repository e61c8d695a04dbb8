// Package output renders command results as text, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how results are printed.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat accepts text, json or yaml, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	case "":
		return Text, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Result represents a generic result for structured output.
type Result struct {
	Success bool        `json:"success" yaml:"success"`
	Data    interface{} `json:"data,omitempty" yaml:"data,omitempty"`
	Error   string      `json:"error,omitempty" yaml:"error,omitempty"`
}

// Printer writes results in one Format.
type Printer struct {
	Format Format
	Out    io.Writer
	Err    io.Writer
}

// New returns a Printer writing to stdout and stderr.
func New(f Format) *Printer {
	return &Printer{Format: f, Out: os.Stdout, Err: os.Stderr}
}

// Structured reports whether the printer emits JSON or YAML.
func (p *Printer) Structured() bool {
	return p.Format == JSON || p.Format == YAML
}

// Print outputs data. In structured modes data is wrapped in a Result.
// Otherwise textFn is called.
func (p *Printer) Print(data interface{}, textFn func()) error {
	if !p.Structured() {
		textFn()
		return nil
	}
	return p.encode(Result{Success: true, Data: data})
}

// PrintError outputs err. Structured modes write a failed Result to Out;
// text mode writes to Err.
func (p *Printer) PrintError(err error) {
	if p.Structured() {
		if encErr := p.encode(Result{Success: false, Error: err.Error()}); encErr == nil {
			return
		}
	}
	fmt.Fprintf(p.Err, "Error: %v\n", err)
}

func (p *Printer) encode(r Result) error {
	switch p.Format {
	case YAML:
		enc := yaml.NewEncoder(p.Out)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		out, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(p.Out, string(out))
		return err
	}
}
