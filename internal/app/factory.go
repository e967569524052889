package app

import (
	"github.com/footprint-tools/argspec/internal/config"
	"github.com/footprint-tools/argspec/internal/domain"
	"github.com/footprint-tools/argspec/internal/history"
	"github.com/footprint-tools/argspec/internal/log"
	"github.com/footprint-tools/argspec/internal/paths"
	"github.com/footprint-tools/argspec/internal/ui"
	"github.com/footprint-tools/argspec/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// HistoryPath is the check history database; empty means the default.
	HistoryPath string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string
}

// DefaultOptions reads the options from the user's config file.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()

	return Options{
		LogEnabled:   cfg["enable_log"] == "true",
		LogLevel:     log.ParseLevel(cfg["log_level"]),
		HistoryPath:  cfg["history_path"],
		StyleEnabled: true,
		StyleConfig:  cfg,
	}
}

// New creates a new Application with all dependencies wired up.
// The history database is opened on first use.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}
		if l, err := log.New(logPath, opts.LogLevel); err == nil {
			log.SetDefault(l)
			logger = l
		}
	}

	historyPath := opts.HistoryPath
	if historyPath == "" {
		historyPath = paths.HistoryDBPath()
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	return &domain.Application{
		History: history.NewLazy(historyPath),
		Config:  config.NewProvider(),
		Logger:  logger,
		Output:  ui.NewWriter(writerOpts...),
		Styler:  style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application with an unopened in-memory history,
// a NopLogger and no styling.
func NewForTesting() *domain.Application {
	return &domain.Application{
		History: history.NewLazy(":memory:"),
		Config:  config.NewProvider(),
		Logger:  log.NopLogger{},
		Output:  ui.NewWriter(ui.WithPagerDisabled()),
		Styler:  style.NopStyler{},
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.History != nil {
		_ = app.History.Close()
	}
	return nil
}
