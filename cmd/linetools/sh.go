// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io"

	"github.com/invowk/linetools/internal/issue"
	"github.com/invowk/linetools/internal/shell"
	"github.com/invowk/linetools/internal/textio"
	"github.com/invowk/linetools/pkg/types"

	"github.com/spf13/cobra"
)

func newShCommand(app *App) *cobra.Command {
	var script string

	cmd := &cobra.Command{
		Use:   "sh [-c SCRIPT | FILE] [ARGS...]",
		Short: "Run a POSIX shell script with the utilities as builtins",
		Long: `Run a POSIX shell script in an embedded interpreter. Inside the script,
wc, cat, head and uniq resolve to the bundled utilities before any host
binary. echo, printf, cd and the other shell builtins are provided by the
interpreter.

The script comes from -c, from FILE, or from standard input. ARGS become
the positional parameters $1, $2, ... The exit status is the script's.

Host commands can be disabled with shell.allow_host_commands: false; an
unknown command then fails with status 127.`,
		Example: `  linetools sh -c 'echo foo bar | wc -w'
  linetools sh count.sh *.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := app.newShell()
			ctx := cmd.Context()

			var (
				code types.ExitCode
				err  error
			)
			switch {
			case cmd.Flags().Changed("command"):
				code, err = runner.RunString(ctx, script, args)
			case len(args) > 0 && args[0] != textio.StdinName:
				code, err = runScriptFile(app, runner, cmd, args[0], args[1:])
			default:
				if len(args) > 0 {
					args = args[1:]
				}
				code, err = runner.Run(ctx, app.stdin, "stdin", args)
			}

			if err != nil {
				if errors.Is(err, shell.ErrParse) {
					return usageError(err)
				}
				return &ExitError{Code: code.Clamp(), Err: err}
			}
			if !code.IsSuccess() {
				app.logger.Debug("script exited", "status", code, "not_found", runner.NotFound())
				if app.verbose {
					app.renderIssue(scriptIssue(runner))
				}
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	// Everything after the script file belongs to the script.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&script, "command", "c", "", "read the script from SCRIPT")

	return cmd
}

// runScriptFile runs the script stored at name, opened like any other
// utility input.
func runScriptFile(app *App, runner *shell.Runner, cmd *cobra.Command, name string, args []string) (types.ExitCode, error) {
	f, err := textio.Opener{Dir: app.dir}.Open(name)
	if err != nil {
		return types.ExitFailure, issue.NewErrorContext().
			WithOperation("read script").
			WithSuggestion("Check that the script file exists and is readable").
			WithSuggestion("Use 'linetools sh -c SCRIPT' for inline scripts").
			Wrap(err).
			BuildError()
	}
	defer closeQuietly(app, f)

	return runner.Run(cmd.Context(), f, name, args)
}

// scriptIssue picks the guidance for a script that exited non-zero.
func scriptIssue(runner *shell.Runner) issue.Id {
	if len(runner.NotFound()) > 0 {
		return issue.CommandNotFoundId
	}
	return issue.ScriptExecutionFailedId
}

func closeQuietly(app *App, c io.Closer) {
	if err := c.Close(); err != nil {
		app.logger.Debug("close failed", "err", err)
	}
}
