package config

import (
	"github.com/footprint-tools/argspec/internal/config"
	"github.com/footprint-tools/argspec/internal/ui"
)

type Deps struct {
	// Update edits the settings file under its lock.
	Update  func(func(config.Lines) (config.Lines, error)) error
	Get     func(string) (string, bool)
	GetAll  func() (map[string]string, error)
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
	Pager   func(string)
}

func DefaultDeps() Deps {
	f := config.UserFile()
	return Deps{
		Update:  f.Update,
		Get:     f.Get,
		GetAll:  f.GetAll,
		Printf:  ui.Printf,
		Println: ui.Println,
		Pager:   ui.Pager,
	}
}
