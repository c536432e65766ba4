// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/invowk/linetools/internal/textutil"
	"github.com/invowk/linetools/pkg/types"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

const (
	// statusUsage is returned by builtins that rejected their arguments.
	statusUsage = 2
	// statusNotFound is the conventional status for unknown commands.
	statusNotFound = 127
)

var (
	// ErrParse is the sentinel error wrapped when a script does not parse.
	ErrParse = errors.New("cannot parse script")
	// ErrExec is the sentinel error wrapped when the interpreter itself fails.
	ErrExec = errors.New("script execution failed")
)

type (
	// Options configures a Runner. Nil streams default to empty input and
	// discarded output.
	Options struct {
		// Registry provides the builtins. Nil disables them.
		Registry *textutil.Registry
		// AllowHostCommands lets unknown commands run as host binaries.
		AllowHostCommands bool
		// Dir is the initial working directory. Empty means the process directory.
		Dir string
		// Env is the initial environment as KEY=VALUE pairs.
		Env []string
		// Stdin, Stdout and Stderr are the script's standard streams.
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
		// Logger receives debug records. Nil discards them.
		Logger *log.Logger
	}

	// Runner interprets scripts with the configured builtins.
	Runner struct {
		opts Options

		mu       sync.Mutex
		notFound []string
	}
)

// New creates a Runner.
func New(opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	return &Runner{opts: opts}
}

// Run parses src and executes it. args become the positional parameters
// $1, $2, ... The returned exit code is the script's exit status; err is
// non-nil only when the script could not be parsed or the interpreter failed.
func (r *Runner) Run(ctx context.Context, src io.Reader, name string, args []string) (types.ExitCode, error) {
	r.mu.Lock()
	r.notFound = nil
	r.mu.Unlock()

	prog, err := syntax.NewParser().Parse(src, name)
	if err != nil {
		return types.ExitUsage, fmt.Errorf("%w: %w", ErrParse, err)
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(r.opts.Env...)),
		interp.StdIO(r.opts.Stdin, r.opts.Stdout, r.opts.Stderr),
		interp.ExecHandlers(r.execHandler),
	}
	if r.opts.Dir != "" {
		opts = append(opts, interp.Dir(r.opts.Dir))
	}

	// "--" keeps arguments such as "-v" from being read as shell options.
	if len(args) > 0 {
		params := append([]string{"--"}, args...)
		opts = append(opts, interp.Params(params...))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return types.ExitFailure, fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return types.ExitCode(exitStatus), nil
		}
		return types.ExitFailure, fmt.Errorf("%w: %w", ErrExec, err)
	}
	return types.ExitSuccess, nil
}

// RunString is Run for inline scripts such as "sh -c".
func (r *Runner) RunString(ctx context.Context, script string, args []string) (types.ExitCode, error) {
	return r.Run(ctx, strings.NewReader(script), "-c", args)
}

// NotFound returns the commands of the last Run that were rejected with
// status 127, in the order they were called.
func (r *Runner) NotFound() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.notFound...)
}

// execHandler dispatches external commands to the registry before falling
// back to the host.
func (r *Runner) execHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		err := r.runBuiltin(ctx, args)
		if !errors.Is(err, textutil.ErrCommandNotFound) {
			return err
		}

		if r.opts.AllowHostCommands {
			r.opts.Logger.Debug("running host command", "name", args[0])
			return next(ctx, args)
		}

		hc := interp.HandlerCtx(ctx)
		fmt.Fprintln(hc.Stderr, err)
		r.mu.Lock()
		r.notFound = append(r.notFound, args[0])
		r.mu.Unlock()
		return interp.ExitStatus(statusNotFound)
	}
}

// runBuiltin runs args as a registry command.
//
// Return semantics:
//   - nil: the builtin ran and succeeded
//   - interp.ExitStatus: the builtin failed; its error was printed to the
//     script's stderr and there is no fallback to a host binary
//   - an error wrapping textutil.ErrCommandNotFound: the name is not a builtin
func (r *Runner) runBuiltin(ctx context.Context, args []string) error {
	if r.opts.Registry == nil {
		return fmt.Errorf("%s: %w", args[0], textutil.ErrCommandNotFound)
	}

	hc := textutil.ExtractHandlerContext(ctx)
	hc.Logger = r.opts.Logger

	err := r.opts.Registry.Run(textutil.WithHandlerContext(ctx, hc), args[0], args)
	switch {
	case err == nil:
		r.opts.Logger.Debug("ran builtin", "name", args[0], "args", args[1:])
		return nil
	case errors.Is(err, textutil.ErrCommandNotFound):
		return err
	}

	fmt.Fprintln(hc.Stderr, err)
	if errors.Is(err, textutil.ErrUsage) {
		return interp.ExitStatus(statusUsage)
	}
	return interp.ExitStatus(types.ExitFailure)
}
