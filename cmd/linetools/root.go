// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linetools",
		Short: "Line-oriented text utilities",
		Long: TitleStyle.Render("linetools") + SubtitleStyle.Render(" - line-oriented text utilities") + `

linetools bundles small text utilities: a multi-metric counter (wc),
cat with line numbering, head, uniq and echo. The same utilities are
available as builtins of an embedded POSIX shell (sh).

` + SubtitleStyle.Render("Examples:") + `
  linetools wc notes.txt            Count lines, words and bytes
  linetools wc -l *.go              Count lines with a total row
  linetools cat -n main.go          Print with line numbers
  linetools sh -c 'cat *.txt | uniq -c'
  linetools config show             Show current configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			app.prepare(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/.config/linetools/config.cue)")

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	rootCmd.AddCommand(
		newWcCommand(app),
		newCatCommand(app),
		newHeadCommand(app),
		newUniqCommand(app),
		newEchoCommand(app),
		newShCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// usageArgs wraps a positional argument validator so its failures exit
// with the usage status.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// getVersionString returns a formatted version string for display.
// Priority: ldflags version, then the module version recorded by
// `go install`, then a development fallback.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute runs the CLI and exits with the resulting status.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	)
	if err != nil {
		os.Exit(int(exitCodeFor(err)))
	}
}
