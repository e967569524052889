package history

import (
	"sync"

	"github.com/footprint-tools/argspec/internal/domain"
)

// Lazy opens the store at path on first use, so commands that never touch
// history never create the database.
type Lazy struct {
	path string
	open func(path string) (*Store, error)

	once  sync.Once
	store *Store
	err   error
}

// NewLazy returns a Lazy store for path.
func NewLazy(path string) *Lazy {
	return &Lazy{path: path, open: New}
}

func (l *Lazy) get() (*Store, error) {
	l.once.Do(func() {
		l.store, l.err = l.open(l.path)
	})
	return l.store, l.err
}

// Opened reports whether the database has been opened.
func (l *Lazy) Opened() bool { return l.store != nil }

func (l *Lazy) Insert(rec domain.CheckRecord) error {
	s, err := l.get()
	if err != nil {
		return err
	}
	return s.Insert(rec)
}

func (l *Lazy) List(filter domain.CheckFilter) ([]domain.CheckRecord, error) {
	s, err := l.get()
	if err != nil {
		return nil, err
	}
	return s.List(filter)
}

func (l *Lazy) Count() (int64, error) {
	s, err := l.get()
	if err != nil {
		return 0, err
	}
	return s.Count()
}

func (l *Lazy) Clear() (int64, error) {
	s, err := l.get()
	if err != nil {
		return 0, err
	}
	return s.Clear()
}

// Close closes the database if it was opened.
func (l *Lazy) Close() error {
	if l.store == nil {
		return nil
	}
	return l.store.Close()
}

var _ domain.HistoryStore = (*Lazy)(nil)
