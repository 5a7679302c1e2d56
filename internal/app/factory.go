package app

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/footprint-tools/cmdtree/internal/actions/sessions"
	"github.com/footprint-tools/cmdtree/internal/cli"
	"github.com/footprint-tools/cmdtree/internal/config"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/paths"
	"github.com/footprint-tools/cmdtree/internal/shell"
	"github.com/footprint-tools/cmdtree/internal/store"
	"github.com/footprint-tools/cmdtree/internal/ui"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// DBPath is the session database; ":memory:" keeps it in memory.
	DBPath string

	// SeedDemo fills an empty database with the demo directory.
	SeedDemo bool

	// Config defaults to the rc file provider.
	Config domain.ConfigProvider

	// Out defaults to stdout.
	Out io.Writer
}

// DefaultOptions reads the options from the rc file.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()

	level := log.LevelWarn
	if v, ok := cfg["log_level"]; ok {
		level = log.ParseLevel(v)
	}

	return Options{
		LogEnabled:   config.GetBool("enable_log"),
		LogLevel:     level,
		LogPath:      paths.LogFilePath(),
		StyleEnabled: style.IsTerminal(os.Stdout),
		StyleConfig:  cfg,
		DBPath:       cfg["db_path"],
		SeedDemo:     true,
	}
}

// App is the wired application: the shared domain context plus the
// concrete pieces the front ends drive.
type App struct {
	domain.Application

	Store      *store.Store
	Dispatcher *dispatchers.Dispatcher
	Shell      *shell.Shell

	loginEnabled atomic.Bool
}

// EnableLogin lets the login and logout commands switch the shell's sender.
// Front ends call it before handing the terminal to the shell; in one-shot
// mode the commands fail.
func (a *App) EnableLogin() {
	a.loginEnabled.Store(true)
}

// New creates an App with all dependencies wired up.
func New(opts Options) (*App, error) {
	logger := newLogger(opts)

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = paths.DatabasePath()
	}
	st, err := store.New(dbPath, store.WithLogger(named(logger, "store")))
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	if opts.SeedDemo {
		if seeded, err := st.SeedDemo(); err != nil {
			logger.Warn("seed demo directory: %v", err)
		} else if seeded {
			logger.Info("seeded demo directory in %s", dbPath)
		}
	}

	a, err := assemble(st, logger, style.NewStyler(), opts)
	if err != nil {
		_ = st.Close()
		_ = logger.Close()
		return nil, err
	}
	return a, nil
}

// NewForTesting wires an App around an existing store with no logging and
// no styling.
func NewForTesting(st *store.Store, opts Options) (*App, error) {
	return assemble(st, log.NopLogger{}, style.NopStyler{}, opts)
}

func assemble(st *store.Store, logger domain.Logger, styler domain.Styler, opts Options) (*App, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewProvider()
	}

	host := &domain.Host{Sessions: st, Namespaces: st}
	d := dispatchers.New(host, dispatchers.WithLogger(named(logger, "dispatch")))
	cli.LoadPolicy(d, cfg)

	var shellOpts []shell.Option
	shellOpts = append(shellOpts,
		shell.WithLogger(named(logger, "shell")),
		shell.WithSessions(st),
	)
	if prompt, ok := cfg.Get("prompt"); ok {
		shellOpts = append(shellOpts, shell.WithPrompt(prompt))
	}
	sh := shell.New(d, st, out, shellOpts...)

	a := &App{
		Application: domain.Application{
			Host:   host,
			Config: cfg,
			Logger: logger,
			Output: ui.NewWriterTo(out),
			Styler: styler,
		},
		Store:      st,
		Dispatcher: d,
		Shell:      sh,
	}

	login := func(sess domain.Session) error {
		if !a.loginEnabled.Load() {
			return sessions.ErrNoShell
		}
		return sh.Login(sess)
	}
	if err := cli.Install(cli.Env{
		Store:      st,
		Config:     cfg,
		Dispatcher: d,
		Login:      login,
	}); err != nil {
		return nil, err
	}
	return a, nil
}

func newLogger(opts Options) domain.Logger {
	if !opts.LogEnabled {
		return log.NopLogger{}
	}
	path := opts.LogPath
	if path == "" {
		path = paths.LogFilePath()
	}
	l, err := log.New(path, opts.LogLevel)
	if err != nil {
		// Logging is best effort.
		return log.NopLogger{}
	}
	return l
}

// named scopes logger to a component when it supports it.
func named(logger domain.Logger, component string) domain.Logger {
	if l, ok := logger.(*log.Logger); ok {
		return l.Named(component)
	}
	return logger
}

// Close cleans up application resources.
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	if a.Logger != nil {
		_ = a.Logger.Close()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
