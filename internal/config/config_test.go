// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/invowk/linetools/internal/issue"
	"github.com/invowk/linetools/internal/testutil"

	"github.com/google/go-cmp/cmp"
)

// writeConfig writes content to dir/config.cue and returns the path.
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	want := &Config{
		UI:    UIConfig{ColorScheme: ColorSchemeAuto},
		Head:  HeadConfig{Lines: 10},
		Shell: ShellConfig{EnableBuiltins: true, AllowHostCommands: true},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("DefaultConfig() mismatch (-want +got):\n%s", diff)
	}
	if valid, errs := cfg.IsValid(); !valid {
		t.Errorf("DefaultConfig() is invalid: %v", errs)
	}
}

func TestConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}

	home := testutil.IsolateConfig(t)
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if want := filepath.Join(home, ".config", AppName); dir != want {
		t.Errorf("ConfigDir() = %q, want %q", dir, want)
	}
}

func TestConfigDir_Override(t *testing.T) {
	SetConfigDirOverride("/custom/dir")
	t.Cleanup(Reset)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir() error: %v", err)
	}
	if dir != "/custom/dir" {
		t.Errorf("ConfigDir() = %q, want /custom/dir", dir)
	}
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Parallel()

	p := NewProvider()
	cfg, err := p.Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if p.LoadedFrom() != "" {
		t.Errorf("LoadedFrom() = %q, want empty", p.LoadedFrom())
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `
ui: color_scheme: "dark"
head: lines: 3
shell: allow_host_commands: false
`)

	p := NewProvider()
	cfg, err := p.Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := &Config{
		UI:    UIConfig{ColorScheme: ColorSchemeDark},
		Head:  HeadConfig{Lines: 3},
		Shell: ShellConfig{EnableBuiltins: true, AllowHostCommands: false},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if p.LoadedFrom() != path {
		t.Errorf("LoadedFrom() = %q, want %q", p.LoadedFrom(), path)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), `ui: verbose: true`)

	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.UI.Verbose {
		t.Error("expected ui.verbose to be true")
	}
	if cfg.Head.Lines != DefaultHeadLines {
		t.Errorf("head.lines = %d, want default %d", cfg.Head.Lines, DefaultHeadLines)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.cue")
	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: missing})

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("Load() error = %v, want *issue.ActionableError", err)
	}
	if ae.Resource != missing {
		t.Errorf("Resource = %q, want %q", ae.Resource, missing)
	}
	if !ae.HasSuggestions() {
		t.Error("expected suggestions")
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "unknown color scheme",
			content: `ui: color_scheme: "blue"`,
			wantMsg: "ui.color_scheme",
		},
		{
			name:    "zero head lines",
			content: `head: lines: 0`,
			wantMsg: "head.lines",
		},
		{
			name:    "wrong type",
			content: `shell: enable_builtins: "yes"`,
			wantMsg: "shell.enable_builtins",
		},
		{
			name:    "unknown key",
			content: `colour: "dark"`,
			wantMsg: "colour",
		},
		{
			name:    "syntax error",
			content: `ui: {`,
			wantMsg: "config.cue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: path})
			if err == nil {
				t.Fatal("Load() should fail")
			}

			var ae *issue.ActionableError
			if !errors.As(err, &ae) {
				t.Fatalf("Load() error = %T, want *issue.ActionableError", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `head: lines: 3`)

	testutil.IsolateConfig(t)
	t.Setenv("LINETOOLS_HEAD_LINES", "7")
	t.Setenv("LINETOOLS_UI_VERBOSE", "true")
	t.Setenv("LINETOOLS_SHELL_ENABLE_BUILTINS", "false")

	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Head.Lines != 7 {
		t.Errorf("head.lines = %d, want 7", cfg.Head.Lines)
	}
	if !cfg.UI.Verbose {
		t.Error("expected ui.verbose from environment")
	}
	if cfg.Shell.EnableBuiltins {
		t.Error("expected shell.enable_builtins=false from environment")
	}
}

func TestLoad_InvalidEnvOverride(t *testing.T) {
	testutil.IsolateConfig(t)
	t.Setenv("LINETOOLS_UI_COLOR_SCHEME", "neon")

	_, err := NewProvider().Load(t.Context(), LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Fatalf("Load() error = %v, want ErrInvalidColorScheme", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestFilePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	want := filepath.Join(dir, "config.cue")

	got, err := FilePath(LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("FilePath() error: %v", err)
	}
	if got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}

	got, err = FilePath(LoadOptions{ConfigFilePath: "/etc/lt.cue", ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("FilePath() error: %v", err)
	}
	if got != "/etc/lt.cue" {
		t.Errorf("FilePath() = %q, want the explicit file", got)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")

	path, created, err := CreateDefaultConfig(LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error: %v", err)
	}
	if !created {
		t.Error("expected the file to be created")
	}

	// The generated file must load back to the defaults.
	cfg, err := NewProvider().Load(t.Context(), LoadOptions{ConfigFilePath: path})
	if err != nil {
		t.Fatalf("Load() of generated config error: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	_, created, err = CreateDefaultConfig(LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("second CreateDefaultConfig() error: %v", err)
	}
	if created {
		t.Error("an existing file must not be overwritten")
	}
}

func TestGenerateTOML(t *testing.T) {
	t.Parallel()

	data, err := GenerateTOML(DefaultConfig())
	if err != nil {
		t.Fatalf("GenerateTOML() error: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, "auto") {
		t.Errorf("GenerateTOML() missing the color scheme value:\n%s", out)
	}
	for _, want := range []string{
		"[ui]",
		"color_scheme = ",
		"[head]",
		"lines = 10",
		"[shell]",
		"allow_host_commands = true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("GenerateTOML() missing %q:\n%s", want, out)
		}
	}
}
