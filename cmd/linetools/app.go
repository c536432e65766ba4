// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/invowk/linetools/internal/config"
	"github.com/invowk/linetools/internal/issue"
	"github.com/invowk/linetools/internal/shell"
	"github.com/invowk/linetools/internal/textutil"
	"github.com/invowk/linetools/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer: every Cobra handler receives an App and reads
	// its configuration, streams and logger from it.
	App struct {
		Config config.Provider

		stdin     io.Reader
		stdout    io.Writer
		stderr    io.Writer
		dir       string
		configDir string

		// Set by the root command's persistent flags.
		verbose bool
		cfgFile string

		// Resolved once per invocation by prepare.
		cfg       *config.Config
		configErr error
		logger    *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config config.Provider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		// Dir is the directory relative file names resolve against.
		// Empty means the process working directory.
		Dir string
		// ConfigDir overrides the platform config directory.
		ConfigDir string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config:    deps.Config,
		stdin:     deps.Stdin,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		dir:       deps.Dir,
		configDir: deps.ConfigDir,
		cfg:       config.DefaultConfig(),
		logger:    newLogger(deps.Stderr, false),
	}
}

// newLogger builds the CLI logger. Verbose mode lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// loadOptions returns the config loading inputs of this invocation.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: a.cfgFile,
		ConfigDirPath:  a.configDir,
	}
}

// prepare loads the configuration and builds the logger. A configuration
// that fails to load is reported as a warning and the defaults are used;
// commands that show configuration surface the stored error instead.
func (a *App) prepare(ctx context.Context) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		a.configErr = err
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg

	if !a.verbose {
		a.verbose = cfg.UI.Verbose
	}
	applyColorScheme(cfg.UI.ColorScheme)
	a.logger = newLogger(a.stderr, a.verbose)

	if err != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
		if a.verbose {
			a.renderIssue(issue.ConfigLoadFailedId)
		}
		return
	}
	a.logger.Debug("configuration loaded", "file", a.Config.LoadedFrom(), "head_lines", cfg.Head.Lines)
}

// handlerContext returns the utility I/O environment of this invocation.
func (a *App) handlerContext() *textutil.HandlerContext {
	return &textutil.HandlerContext{
		Stdin:     a.stdin,
		Stdout:    a.stdout,
		Stderr:    a.stderr,
		Dir:       a.dir,
		LookupEnv: os.LookupEnv,
		Logger:    a.logger,
	}
}

// registry returns the builtins configured for this invocation.
func (a *App) registry() *textutil.Registry {
	return textutil.NewBuiltinRegistry(textutil.Defaults{HeadLines: a.cfg.Head.Lines})
}

// newShell builds the embedded shell for this invocation.
func (a *App) newShell() *shell.Runner {
	opts := shell.Options{
		AllowHostCommands: a.cfg.Shell.AllowHostCommands,
		Dir:               a.dir,
		Env:               os.Environ(),
		Stdin:             a.stdin,
		Stdout:            a.stdout,
		Stderr:            a.stderr,
		Logger:            a.logger,
	}
	if a.cfg.Shell.EnableBuiltins {
		opts.Registry = a.registry()
	}
	return shell.New(opts)
}

// runUtility runs one line utility and converts its error to an exit status.
// The diagnostic is printed here so the error handler stays silent.
func (a *App) runUtility(fn func(hc *textutil.HandlerContext) error) error {
	err := fn(a.handlerContext())
	if err == nil {
		return nil
	}

	fmt.Fprintln(a.stderr, err)
	if a.verbose {
		a.renderIssue(issueFor(err))
	}

	if errors.Is(err, textutil.ErrUsage) {
		return &ExitError{Code: types.ExitUsage}
	}
	return &ExitError{Code: types.ExitFailure}
}
