// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/invowk/linetools/internal/issue"
	"github.com/invowk/linetools/internal/shell"
	"github.com/invowk/linetools/internal/textio"
	"github.com/invowk/linetools/internal/textutil"

	"github.com/charmbracelet/fang"
)

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// issueFor maps an error to its issue catalog entry, or 0 when none applies.
func issueFor(err error) issue.Id {
	var ae *issue.ActionableError
	switch {
	case errors.Is(err, textutil.ErrUsage):
		return issue.InvalidUsageId
	case errors.Is(err, shell.ErrParse):
		return issue.ScriptParseErrorId
	case errors.Is(err, shell.ErrExec):
		return issue.ScriptExecutionFailedId
	case errors.Is(err, textutil.ErrCommandNotFound):
		return issue.CommandNotFoundId
	case errors.Is(err, textio.ErrIsDirectory):
		return issue.IsDirectoryId
	case errors.Is(err, fs.ErrNotExist):
		return issue.FileNotFoundId
	case errors.Is(err, fs.ErrPermission):
		return issue.PermissionDeniedId
	case errors.Is(err, textio.ErrRead):
		return issue.ReadFailedId
	case errors.As(err, &ae) && strings.HasSuffix(ae.Operation, "configuration"):
		return issue.ConfigLoadFailedId
	default:
		return 0
	}
}

// renderIssue prints the catalog guidance for id using the configured
// color scheme.
func (a *App) renderIssue(id issue.Id) {
	if id == 0 {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}

	rendered, err := entry.Render(a.cfg.UI.ColorScheme.String())
	if err != nil {
		a.logger.Warn("failed to render issue catalog entry", "issueID", id, "err", err)
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// handleError is the fang error handler. Errors whose diagnostic was already
// printed stay silent; the rest use fang's styled output.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err == nil {
			return
		}
		fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(exitErr.Err, a.verbose))
		if a.verbose {
			a.renderIssue(issueFor(exitErr.Err))
		}
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}
