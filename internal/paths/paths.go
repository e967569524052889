package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "argspec"

// AppDataDir returns the application directory for the log file.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory, where the
// check history database lives.
//   - macOS: ~/Library/Application Support/argspec
//   - Linux: $XDG_DATA_HOME/argspec or ~/.local/share/argspec
//   - Windows: %LOCALAPPDATA%\argspec
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns ~/.argspecrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".argspecrc"), nil
}

// LogFilePath returns the path to the rotating application log.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "argspec.log")
}

// HistoryDBPath returns the default location of the check history database.
func HistoryDBPath() string {
	return filepath.Join(AppLocalDataDir(), "history.db")
}
