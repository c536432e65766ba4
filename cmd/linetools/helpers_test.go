// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/invowk/linetools/pkg/types"

	"github.com/charmbracelet/fang"
)

type (
	// cliEnv describes the environment of one in-process CLI run.
	cliEnv struct {
		dir       string
		configDir string
		stdin     string
	}

	cliResult struct {
		code   types.ExitCode
		stdout string
		stderr string
	}
)

// runCLI executes the command tree in-process the way Execute does, minus
// fang's help styling and os.Exit.
func runCLI(t *testing.T, env cliEnv, args ...string) cliResult {
	t.Helper()

	if env.dir == "" {
		env.dir = t.TempDir()
	}
	if env.configDir == "" {
		env.configDir = t.TempDir()
	}

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Stdin:     strings.NewReader(env.stdin),
		Stdout:    &stdout,
		Stderr:    &stderr,
		Dir:       env.dir,
		ConfigDir: env.configDir,
	})

	root := NewRootCommand(app)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())

	var exitErr *ExitError
	if err != nil && errors.As(err, &exitErr) {
		app.handleError(&stderr, fang.Styles{}, err)
	} else if err != nil {
		stderr.WriteString(err.Error() + "\n")
	}

	return cliResult{
		code:   exitCodeFor(err),
		stdout: stdout.String(),
		stderr: stderr.String(),
	}
}
