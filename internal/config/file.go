// Package config reads and edits ~/.argspecrc, a key=value settings file
// whose keys are described by domain.ConfigKeys.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/argspec/internal/log"
	"github.com/footprint-tools/argspec/internal/paths"
)

// File is one settings file on disk. Writers serialize through a lock file
// next to it.
type File struct {
	path string
	err  error
}

// NewFile returns the settings file at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// UserFile returns ~/.argspecrc. When the home directory cannot be
// resolved every read falls back to the defaults and every write fails.
func UserFile() *File {
	path, err := paths.ConfigFilePath()
	return &File{path: path, err: err}
}

// Path returns the file's location.
func (f *File) Path() string { return f.path }

// Read returns the file's lines. A missing or empty file is first written
// with the documented defaults.
func (f *File) Read() (Lines, error) {
	if f.err != nil {
		return nil, f.err
	}

	data, err := os.ReadFile(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if len(data) == 0 {
		lines := defaultLines()
		if err := f.Write(lines); err != nil {
			log.Warn("config: could not write defaults to %s: %v", f.path, err)
		}
		return lines, nil
	}

	if err := os.Chmod(f.path, 0600); err != nil {
		log.Warn("config: could not restrict %s: %v", f.path, err)
	}

	text := strings.TrimSuffix(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return Lines(strings.Split(text, "\n")), nil
}

// Write replaces the file through a temporary file and a rename, so readers
// never see a partial file.
func (f *File) Write(lines Lines) error {
	if f.err != nil {
		return f.err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmp.Chmod(0600); err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		return err
	}

	committed = true
	return nil
}

// Update reads the file under its lock, applies fn and writes the result.
// Nothing is written when fn fails.
func (f *File) Update(fn func(Lines) (Lines, error)) error {
	if f.err != nil {
		return f.err
	}

	unlock, err := f.lock()
	if err != nil {
		return err
	}
	defer unlock()

	lines, err := f.Read()
	if err != nil {
		return err
	}

	lines, err = fn(lines)
	if err != nil {
		return err
	}
	return f.Write(lines)
}

// Get returns the file's value for key, else its default. found is false
// for keys that are neither set nor documented.
func (f *File) Get(key string) (value string, found bool) {
	if v, ok := f.values()[key]; ok {
		return v, true
	}
	return DefaultValue(key)
}

// GetAll returns the defaults overlaid with the file's values.
func (f *File) GetAll() (map[string]string, error) {
	all := Defaults()
	for k, v := range f.values() {
		all[k] = v
	}
	return all, nil
}

// values parses the file, treating an unreadable or malformed file as empty.
func (f *File) values() map[string]string {
	lines, err := f.Read()
	if err != nil {
		return nil
	}
	values, err := lines.Values()
	if err != nil {
		log.Warn("config: %s: %v, using defaults", f.path, err)
		return nil
	}
	return values
}

// Get reads key from ~/.argspecrc.
func Get(key string) (string, bool) {
	return UserFile().Get(key)
}

// GetAll reads every setting from ~/.argspecrc.
func GetAll() (map[string]string, error) {
	return UserFile().GetAll()
}
