package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLines_Values(t *testing.T) {
	tests := []struct {
		name    string
		lines   Lines
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "empty",
			lines: Lines{},
			want:  map[string]string{},
		},
		{
			name:  "blanks and comments skipped",
			lines: Lines{"# argspec", "", "   ", "help_format=markdown", "  # indented"},
			want:  map[string]string{"help_format": "markdown"},
		},
		{
			name:  "whitespace trimmed",
			lines: Lines{"  log_level  =  debug  "},
			want:  map[string]string{"log_level": "debug"},
		},
		{
			name:  "equals in value",
			lines: Lines{"display_date=a=b"},
			want:  map[string]string{"display_date": "a=b"},
		},
		{
			name:  "quoted value keeps spaces and hash",
			lines: Lines{`pager="less -R # paged"`},
			want:  map[string]string{"pager": "less -R # paged"},
		},
		{
			name:  "unterminated quote kept",
			lines: Lines{`pager="`},
			want:  map[string]string{"pager": `"`},
		},
		{
			name:  "inline comment dropped",
			lines: Lines{"theme=ocean # from a friend", `pager="more" # quoted`},
			want:  map[string]string{"theme": "ocean", "pager": "more"},
		},
		{
			name:  "hash without space is part of the value",
			lines: Lines{"color_error=#ff0000"},
			want:  map[string]string{"color_error": "#ff0000"},
		},
		{
			name:  "byte order mark stripped",
			lines: Lines{"\uFEFFtheme=mono", "log_level=info"},
			want:  map[string]string{"theme": "mono", "log_level": "info"},
		},
		{
			name:  "last duplicate wins",
			lines: Lines{"theme=mono", "theme=ocean"},
			want:  map[string]string{"theme": "ocean"},
		},
		{
			name:  "empty value",
			lines: Lines{"color_info="},
			want:  map[string]string{"color_info": ""},
		},
		{
			name:    "missing equals",
			lines:   Lines{"theme=mono", "not a pair"},
			wantErr: true,
		},
		{
			name:    "empty key",
			lines:   Lines{"=value"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.lines.Values()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLines_Set(t *testing.T) {
	tests := []struct {
		name        string
		lines       Lines
		key         string
		value       string
		want        Lines
		wantUpdated bool
	}{
		{
			name:  "append to empty",
			lines: Lines{},
			key:   "theme",
			value: "ocean",
			want:  Lines{"theme=ocean"},
		},
		{
			name:        "replace in place",
			lines:       Lines{"# header", "  theme = mono  ", "log_level=warn"},
			key:         "theme",
			value:       "ocean",
			want:        Lines{"# header", "theme=ocean", "log_level=warn"},
			wantUpdated: true,
		},
		{
			name:        "inline comment kept",
			lines:       Lines{"theme=mono # dark terminal"},
			key:         "theme",
			value:       "contrast",
			want:        Lines{"theme=contrast # dark terminal"},
			wantUpdated: true,
		},
		{
			name:  "spaces quoted",
			lines: Lines{"theme=mono"},
			key:   "pager",
			value: "less -R",
			want:  Lines{"theme=mono", `pager="less -R"`},
		},
		{
			name:  "commented default is not the key",
			lines: Lines{"# color_error="},
			key:   "color_error",
			value: "196",
			want:  Lines{"# color_error=", "color_error=196"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append(Lines{}, tt.lines...)

			got, updated, err := tt.lines.Set(tt.key, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantUpdated, updated)
			require.Equal(t, before, tt.lines)

			values, err := got.Values()
			require.NoError(t, err)
			require.Equal(t, tt.value, values[tt.key])
		})
	}
}

func TestLines_SetUnknownKey(t *testing.T) {
	lines := Lines{"theme=mono"}

	got, _, err := lines.Set("export_path", "/tmp")
	require.True(t, errors.Is(err, ErrUnknownKey))
	require.Equal(t, lines, got)
}

func TestLines_Unset(t *testing.T) {
	tests := []struct {
		name        string
		lines       Lines
		key         string
		want        Lines
		wantRemoved bool
	}{
		{"empty", Lines{}, "theme", Lines{}, false},
		{"removes every occurrence", Lines{"theme=a", "pager=more", " theme = b "}, "theme", Lines{"pager=more"}, true},
		{"missing key", Lines{"pager=more"}, "theme", Lines{"pager=more"}, false},
		{"keeps comments", Lines{"# theme=mono", "", "theme=ocean"}, "theme", Lines{"# theme=mono", ""}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, removed := tt.lines.Unset(tt.key)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantRemoved, removed)
		})
	}
}

func TestDefaultLines(t *testing.T) {
	lines := defaultLines()

	require.Contains(t, lines, "# Display")
	require.Contains(t, lines, "help_format=full")
	require.Contains(t, lines, `pager="less -FRSX"`)
	require.Contains(t, lines, "# Minimum log level: debug, info, warn, error")
	require.Contains(t, lines, "# color_option=")
	for _, l := range lines {
		require.NotContains(t, l, "history_path")
	}

	values, err := lines.Values()
	require.NoError(t, err)
	require.Equal(t, "less -FRSX", values["pager"])
	require.NotContains(t, values, "color_option")
}
