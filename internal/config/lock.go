package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/footprint-tools/argspec/internal/log"
)

const (
	lockTimeout  = 5 * time.Second
	lockStaleAge = 30 * time.Second
	lockRetry    = 50 * time.Millisecond
)

// ErrLockTimeout means another writer held the lock for the whole timeout.
var ErrLockTimeout = errors.New("config: timed out waiting for lock")

func (f *File) lockPath() string { return f.path + ".lock" }

// lock creates the lock file exclusively, breaking locks older than
// lockStaleAge. The returned func removes it.
func (f *File) lock() (unlock func(), err error) {
	path := f.lockPath()
	deadline := time.Now().Add(lockTimeout)

	for {
		lf, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			_, _ = fmt.Fprintf(lf, "%d\n", os.Getpid())
			_ = lf.Close()
			return func() { _ = os.Remove(path) }, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("config: lock %s: %w", path, err)
		}

		if info, statErr := os.Stat(path); statErr == nil && time.Since(info.ModTime()) > lockStaleAge {
			log.Warn("config: removing stale lock %s", path)
			_ = os.Remove(path)
			continue
		}

		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(lockRetry)
	}
}
