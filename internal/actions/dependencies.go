package actions

import (
	"io"
	"time"

	"github.com/footprint-tools/argspec/internal/actions/browse"
	"github.com/footprint-tools/argspec/internal/app"
	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/internal/log"
	"github.com/footprint-tools/argspec/internal/specfile"
	"github.com/footprint-tools/argspec/internal/ui"
	"github.com/footprint-tools/argspec/pkg/argspec"
)

type actionDependencies struct {
	Stdout     io.Writer
	Printf     func(format string, a ...any) (n int, err error)
	Pager      func(content string)
	Version    func() string
	Config     func(key string) (string, bool)
	History    domain.HistoryStore
	Logger     domain.Logger
	Styler     domain.Styler
	LoadSpec   func(path string) (*specfile.Document, error)
	Browse     func(spec *argspec.Spec, command string) error
	IsTerminal func() bool
	Now        func() time.Time
}

func newDeps(a *domain.Application) actionDependencies {
	return actionDependencies{
		Stdout:     a.Output,
		Printf:     a.Output.Printf,
		Pager:      a.Output.Pager,
		Version:    func() string { return app.Version },
		Config:     a.Config.Get,
		History:    a.History,
		Logger:     a.Logger,
		Styler:     a.Styler,
		LoadSpec:   specfile.Load,
		Browse:     browse.Run,
		IsTerminal: ui.StdoutIsTerminal,
		Now:        time.Now,
	}
}

func (d actionDependencies) logger() domain.Logger {
	if d.Logger == nil {
		return log.NopLogger{}
	}
	return d.Logger
}

// configBool reads a true/false setting, defaulting to false.
func (d actionDependencies) configBool(key string) bool {
	if d.Config == nil {
		return false
	}
	v, _ := d.Config(key)
	return v == "true"
}

func (d actionDependencies) configString(key string) string {
	if d.Config == nil {
		return ""
	}
	v, _ := d.Config(key)
	return v
}
