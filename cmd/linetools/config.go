// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strconv"

	"github.com/invowk/linetools/internal/config"
	"github.com/invowk/linetools/internal/issue"
	"github.com/invowk/linetools/pkg/types"

	"github.com/spf13/cobra"
)

const (
	dumpFormatCUE  = "cue"
	dumpFormatTOML = "toml"
)

// newConfigCommand creates the `linetools config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage linetools configuration",
		Long: `Manage linetools configuration.

Configuration is stored in:
  - Linux: ~/.config/linetools/config.cue
  - macOS: ~/Library/Application Support/linetools/config.cue
  - Windows: %APPDATA%\linetools\config.cue

Every key can be overridden with a LINETOOLS_* environment variable,
for example LINETOOLS_HEAD_LINES=20.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			return showConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.FilePath(app.loadOptions())
			if err != nil {
				return &ExitError{Code: types.ExitFailure, Err: err}
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			path, created, err := config.CreateDefaultConfig(app.loadOptions())
			if err != nil {
				return &ExitError{Code: types.ExitFailure, Err: err}
			}
			if !created {
				fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", SubtitleStyle.Render("•"), path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
			return nil
		},
	})

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE or TOML",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(_ *cobra.Command, _ []string) error {
			if app.configErr != nil {
				return &ExitError{Code: types.ExitFailure}
			}
			switch format {
			case dumpFormatCUE:
				fmt.Fprint(app.stdout, config.GenerateCUE(app.cfg))
			case dumpFormatTOML:
				data, err := config.GenerateTOML(app.cfg)
				if err != nil {
					return &ExitError{Code: types.ExitFailure, Err: err}
				}
				fmt.Fprint(app.stdout, string(data))
			default:
				return usageError(fmt.Errorf("unknown format %q (valid: %s, %s)", format, dumpFormatCUE, dumpFormatTOML))
			}
			return nil
		},
	}
	dumpCmd.Flags().StringVar(&format, "format", dumpFormatCUE, "output format: cue or toml")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

func showConfig(app *App) error {
	// prepare already printed the warning for a broken configuration.
	if app.configErr != nil {
		if !app.verbose {
			app.renderIssue(issue.ConfigLoadFailedId)
		}
		return &ExitError{Code: types.ExitFailure}
	}

	cfg := app.cfg
	out := app.stdout
	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if from := app.Config.LoadedFrom(); from != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), from)
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(out, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(out, "  verbose: %s\n", valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("head"))
	fmt.Fprintf(out, "  lines: %s\n", valueStyle.Render(strconv.FormatInt(cfg.Head.Lines, 10)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("shell"))
	fmt.Fprintf(out, "  enable_builtins: %s\n", valueStyle.Render(strconv.FormatBool(cfg.Shell.EnableBuiltins)))
	fmt.Fprintf(out, "  allow_host_commands: %s\n", valueStyle.Render(strconv.FormatBool(cfg.Shell.AllowHostCommands)))

	return nil
}
