package cli

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roach88/fourword/internal/config"
	"github.com/roach88/fourword/internal/loader"
	"github.com/roach88/fourword/internal/logging"
	"github.com/roach88/fourword/internal/store"
)

// environment is the per-command runtime: resolved config, the logger and
// the output formatter. close must be called when the command ends.
type environment struct {
	cfg       config.Config
	logger    *slog.Logger
	formatter *OutputFormatter
	closeLog  func() error
}

func newEnvironment(opts *RootOptions, cmd *cobra.Command) (*environment, error) {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeConfig, "invalid configuration", err)
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeConfig, "invalid configuration", err)
	}

	logger, closeLog, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeConfig, "invalid logging configuration", err)
	}

	return &environment{
		cfg:       cfg,
		logger:    logger,
		formatter: formatter,
		closeLog:  closeLog,
	}, nil
}

// apply overlays flag values on cfg.
func (o *RootOptions) apply(cfg *config.Config) {
	if o.DBPath != "" {
		cfg.Database.Dir = filepath.Dir(o.DBPath)
		cfg.Database.File = filepath.Base(o.DBPath)
	}
	if o.WordsPath != "" {
		cfg.Words.Path = o.WordsPath
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}
	if o.LogOutput != "" {
		cfg.Log.Output = o.LogOutput
	}
	if o.Verbose {
		cfg.Log.Level = "debug"
	}
}

func (e *environment) close() {
	if err := e.closeLog(); err != nil {
		e.formatter.VerboseLog("error closing log output: %v", err)
	}
}

// openStore opens the configured database, optionally recreating the word
// tables. Any failure here is a startup failure.
func (e *environment) openStore(ctx context.Context, reset bool) (*store.Store, error) {
	path := e.cfg.Database.Path()
	e.formatter.VerboseLog("Opening database %s", path)

	st, err := store.Open(ctx, path,
		store.WithLogger(e.logger),
		store.WithOpenTimeout(e.cfg.Database.OpenTimeout),
	)
	if err != nil {
		return nil, e.formatter.Fail(ExitCommandError, ErrCodeConnection, "not able to connect to the word database", err)
	}

	if reset {
		if err := st.ResetSchema(ctx); err != nil {
			st.Close()
			return nil, e.formatter.Fail(ExitCommandError, ErrCodeSchema, "not able to create word tables", err)
		}
	}
	return st, nil
}

// prepareStore runs the startup sequence: open, reset, load.
func (e *environment) prepareStore(ctx context.Context) (*store.Store, loader.Result, error) {
	st, err := e.openStore(ctx, true)
	if err != nil {
		return nil, loader.Result{}, err
	}

	e.formatter.VerboseLog("Loading words from %s", e.cfg.Words.Path)
	res, err := loader.New(st, e.logger).LoadFile(ctx, e.cfg.Words.Path)
	if err != nil {
		st.Close()
		return nil, loader.Result{}, e.formatter.Fail(ExitCommandError, ErrCodeSource, "not able to load words", err)
	}

	return st, res, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
