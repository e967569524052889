package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T, content string) *File {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".argspecrc")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return NewFile(path)
}

func requireMode(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFile_Read(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Lines
	}{
		{"missing file gets defaults", "", defaultLines()},
		{"lines", "theme=mono\nlog_level=info\n", Lines{"theme=mono", "log_level=info"}},
		{"no trailing newline", "theme=mono", Lines{"theme=mono"}},
		{"blank lines kept", "# a\n\ntheme=mono\n", Lines{"# a", "", "theme=mono"}},
		{"crlf", "theme=mono\r\npager=more\r\n", Lines{"theme=mono", "pager=more"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tempFile(t, tt.content)

			got, err := f.Read()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			requireMode(t, f.Path())
		})
	}
}

func TestFile_ReadSeedsFile(t *testing.T) {
	f := tempFile(t, "")

	_, err := f.Read()
	require.NoError(t, err)

	data, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	require.Contains(t, string(data), "help_format=full\n")
}

func TestFile_Write(t *testing.T) {
	f := tempFile(t, "old=1\nolder=2\n")

	require.NoError(t, f.Write(Lines{"theme=ocean", "# note"}))

	data, err := os.ReadFile(f.Path())
	require.NoError(t, err)
	require.Equal(t, "theme=ocean\n# note\n", string(data))
	requireMode(t, f.Path())

	entries, err := os.ReadDir(filepath.Dir(f.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
}

func TestFile_Update(t *testing.T) {
	f := tempFile(t, "theme=mono\n")

	err := f.Update(func(lines Lines) (Lines, error) {
		_, statErr := os.Stat(f.lockPath())
		require.NoError(t, statErr, "lock held during update")

		lines, _, err := lines.Set("pager", "more")
		return lines, err
	})
	require.NoError(t, err)

	_, err = os.Stat(f.lockPath())
	require.True(t, os.IsNotExist(err))

	got, err := f.Read()
	require.NoError(t, err)
	require.Equal(t, Lines{"theme=mono", "pager=more"}, got)
}

func TestFile_UpdateFailureLeavesFile(t *testing.T) {
	f := tempFile(t, "theme=mono\n")
	boom := errors.New("boom")

	err := f.Update(func(Lines) (Lines, error) { return Lines{}, boom })
	require.ErrorIs(t, err, boom)

	got, err := f.Read()
	require.NoError(t, err)
	require.Equal(t, Lines{"theme=mono"}, got)
}

func TestFile_UpdateBreaksStaleLock(t *testing.T) {
	f := tempFile(t, "theme=mono\n")
	require.NoError(t, os.WriteFile(f.lockPath(), []byte("1\n"), 0600))
	old := time.Now().Add(-time.Minute)
	require.NoError(t, os.Chtimes(f.lockPath(), old, old))

	require.NoError(t, f.Update(func(lines Lines) (Lines, error) { return lines, nil }))
}

func TestFile_Get(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		key       string
		wantValue string
		wantFound bool
	}{
		{"set in file", "help_format=html\n", "help_format", "html", true},
		{"default", "# nothing\n", "output_format", "text", true},
		{"quoted", "pager=\"more -R\"\n", "pager", "more -R", true},
		{"undocumented key in file", "custom_key=x\n", "custom_key", "x", true},
		{"unknown", "# nothing\n", "nonexistent_key", "", false},
		{"malformed file uses defaults", "not a pair\n", "record_history", "false", true},
		{"computed default", "# nothing\n", "history_path", defaultOf("history_path"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := tempFile(t, tt.content).Get(tt.key)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.wantValue, got)
		})
	}
}

// defaultOf returns the default of key, empty when undocumented.
func defaultOf(key string) string {
	v, _ := DefaultValue(key)
	return v
}

func TestFile_GetAll(t *testing.T) {
	all, err := tempFile(t, "theme=ocean\ncustom=value\n").GetAll()
	require.NoError(t, err)
	require.Equal(t, "ocean", all["theme"])
	require.Equal(t, "value", all["custom"])
	require.Equal(t, "full", all["help_format"])
	require.NotEmpty(t, all["history_path"])
}

func TestFile_UnresolvedPath(t *testing.T) {
	broken := &File{err: errors.New("no home")}

	_, err := broken.Read()
	require.EqualError(t, err, "no home")
	require.EqualError(t, broken.Update(func(l Lines) (Lines, error) { return l, nil }), "no home")

	v, ok := broken.Get("help_format")
	require.True(t, ok)
	require.Equal(t, "full", v)
}

func TestProvider(t *testing.T) {
	p := NewProviderFor(tempFile(t, "# empty\n"))

	require.NoError(t, p.Set("output_format", "json"))
	v, ok := p.Get("output_format")
	require.True(t, ok)
	require.Equal(t, "json", v)

	require.ErrorIs(t, p.Set("export_path", "x"), ErrUnknownKey)

	require.NoError(t, p.Unset("output_format"))
	v, _ = p.Get("output_format")
	require.Equal(t, "text", v)
}

func TestUserFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f := UserFile()
	require.Equal(t, filepath.Join(home, ".argspecrc"), f.Path())

	v, ok := Get("log_level")
	require.True(t, ok)
	require.Equal(t, "warn", v)
	require.FileExists(t, filepath.Join(home, ".argspecrc"))
}
