package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/argspec/internal/domain"
)

const bom = "\uFEFF"

// ErrUnknownKey is returned by Lines.Set for keys not in domain.ConfigKeys.
var ErrUnknownKey = errors.New("config: unknown key")

// Lines is the settings file as written, comments and blank lines included.
type Lines []string

// entry splits a setting line. ok is false for blanks, comments and lines
// without '='.
func entry(line string) (key, raw string, ok bool) {
	if blankOrComment(line) {
		return "", "", false
	}
	key, raw, ok = strings.Cut(strings.TrimSpace(strings.TrimPrefix(line, bom)), "=")
	return strings.TrimSpace(key), strings.TrimSpace(raw), ok
}

// splitValue separates a raw value from a trailing " # comment". Double
// quotes protect spaces and '#'; an unterminated quote is kept literally.
func splitValue(raw string) (value, comment string) {
	if strings.HasPrefix(raw, `"`) {
		if end := strings.Index(raw[1:], `"`); end >= 0 {
			rest := strings.TrimSpace(raw[end+2:])
			if strings.HasPrefix(rest, "#") {
				comment = rest
			}
			return raw[1 : end+1], comment
		}
		return raw, ""
	}
	if i := strings.Index(raw, " #"); i >= 0 {
		return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+1:])
	}
	return raw, ""
}

func quote(value string) string {
	if strings.ContainsAny(value, " \t#") {
		return `"` + value + `"`
	}
	return value
}

// Values maps every set key to its value; the last duplicate wins.
func (l Lines) Values() (map[string]string, error) {
	values := make(map[string]string)

	for i, line := range l {
		if blankOrComment(line) {
			continue
		}
		key, raw, ok := entry(line)
		if !ok {
			return nil, fmt.Errorf("config: line %d: missing '=' in %q", i+1, strings.TrimSpace(line))
		}
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}
		values[key], _ = splitValue(raw)
	}
	return values, nil
}

func blankOrComment(line string) bool {
	trimmed := strings.TrimSpace(strings.TrimPrefix(line, bom))
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

// Set assigns value to key in place, keeping an inline comment, or appends
// it. updated reports whether the key was already present.
func (l Lines) Set(key, value string) (out Lines, updated bool, err error) {
	if !domain.IsValidConfigKey(key) {
		return l, false, fmt.Errorf("%w %q", ErrUnknownKey, key)
	}

	out = append(Lines{}, l...)
	for i, line := range out {
		k, raw, ok := entry(line)
		if !ok || k != key {
			continue
		}
		out[i] = key + "=" + quote(value)
		if _, comment := splitValue(raw); comment != "" {
			out[i] += " " + comment
		}
		return out, true, nil
	}
	return append(out, key+"="+quote(value)), false, nil
}

// Unset drops every line setting key.
func (l Lines) Unset(key string) (out Lines, removed bool) {
	out = Lines{}
	for _, line := range l {
		if k, _, ok := entry(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}
	return out, removed
}

// defaultLines is the content of a fresh settings file: every visible key
// under its section, with its description and default.
func defaultLines() Lines {
	lines := Lines{
		"# argspec configuration",
		"# Edit values below or use: argspec config set <key> <value>",
	}

	bySection := domain.ConfigKeysBySection()
	for _, section := range domain.ConfigSections() {
		keys := bySection[section]
		if len(keys) == 0 {
			continue
		}
		lines = append(lines, "", "# "+section)
		for _, key := range keys {
			lines = append(lines, "# "+key.Description)
			if key.HideIfEmpty {
				lines = append(lines, "# "+key.Name+"=")
				continue
			}
			value, _ := DefaultValue(key.Name)
			lines = append(lines, key.Name+"="+quote(value))
		}
	}
	return lines
}
