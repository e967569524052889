package specfile

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/internal/ui/style"
)

// Result is the outcome of running a Program against one argument list.
type Result struct {
	Command   string         `json:"command" yaml:"command"`
	Args      []string       `json:"args" yaml:"args"`
	Outcome   domain.Outcome `json:"outcome" yaml:"outcome"`
	ErrorKind string         `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	Message   string         `json:"message,omitempty" yaml:"message,omitempty"`
	Help      bool           `json:"help" yaml:"help"`
	Flags     []string       `json:"flags" yaml:"flags"`
	Mask      uint32         `json:"mask" yaml:"mask"`
	Values    []Value        `json:"values" yaml:"values"`

	err error
}

// Value is one argument that received a value.
type Value struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

// Err returns the parse error, if any. Help requests are errors only when
// the spec does not declare -h.
func (r *Result) Err() error { return r.err }

// Lookup returns the value stored under name.
func (r *Result) Lookup(name string) (any, bool) {
	for _, v := range r.Values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

// OutputFormat selects how Write renders a Result.
type OutputFormat int

const (
	OutputText OutputFormat = iota
	OutputJSON
	OutputYAML
)

// OutputFormats lists the format tokens in OutputFormat order, for use as
// an argspec enum.
var OutputFormats = []string{"text", "json", "yaml"}

func (f OutputFormat) String() string {
	if int(f) >= 0 && int(f) < len(OutputFormats) {
		return OutputFormats[f]
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat accepts the OutputFormats tokens, ignoring case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, tok := range OutputFormats {
		if strings.EqualFold(s, tok) {
			return OutputFormat(i), nil
		}
	}
	return OutputText, fmt.Errorf("unknown output format %q (want %s)", s, strings.Join(OutputFormats, ", "))
}

// Write renders r to w.
func Write(w io.Writer, r *Result, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeText(w, r)
	}
}

func writeText(w io.Writer, r *Result) error {
	var b strings.Builder

	switch r.Outcome {
	case domain.OutcomeHelp:
		b.WriteString(r.Message)
		if !strings.HasSuffix(r.Message, "\n") {
			b.WriteByte('\n')
		}
		_, err := io.WriteString(w, b.String())
		return err
	case domain.OutcomeError:
		fmt.Fprintf(&b, "%s %s\n", style.Error("error:"), r.Message)
		fmt.Fprintf(&b, "%s %s\n", style.Muted("kind:"), r.ErrorKind)
	default:
		fmt.Fprintf(&b, "%s %s\n", style.Success("ok:"), r.Command)
	}

	if len(r.Flags) > 0 {
		fmt.Fprintf(&b, "%s %s\n", style.Muted("flags:"), strings.Join(r.Flags, " "))
	}

	width := 0
	for _, v := range r.Values {
		width = max(width, len(v.Name))
	}
	for _, v := range r.Values {
		name := fmt.Sprintf("%-*s", width, v.Name)
		fmt.Fprintf(&b, "  %s  %s %s\n", style.Option(name), style.Value(formatValue(v.Value)), style.Muted("<"+v.Type+">"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case []string:
		quoted := make([]string, len(x))
		for i, s := range x {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		return "[" + strings.Join(quoted, " ") + "]"
	}
	return fmt.Sprint(v)
}
