// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/invowk/linetools/internal/testutil"
	"github.com/invowk/linetools/pkg/types"

	"github.com/google/go-cmp/cmp"
)

func TestUtilityCommands(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"a.txt":     "foo bar\nbaz\n",
		"b.txt":     "one\n\ntwo\n",
		"dups.txt":  "a\na\nb\n",
		"words.txt": "alpha beta gamma\n",
	})

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  cliResult
	}{
		{
			name: "wc single file",
			args: []string{"wc", "a.txt"},
			want: cliResult{stdout: " 2  3 12 a.txt\n"},
		},
		{
			name: "wc selected metrics keep fixed order",
			args: []string{"wc", "-cl", "a.txt"},
			want: cliResult{stdout: " 2 12 a.txt\n"},
		},
		{
			name: "wc multiple files with total",
			args: []string{"wc", "-l", "a.txt", "b.txt"},
			want: cliResult{stdout: " 2 a.txt\n 3 b.txt\n 5 total\n"},
		},
		{
			name: "wc missing file is skipped",
			args: []string{"wc", "-w", "missing.txt", "words.txt"},
			want: cliResult{
				stdout: " 3 words.txt\n 3 total\n",
				stderr: "missing.txt: no such file or directory\n",
			},
		},
		{
			name:  "wc standard input",
			args:  []string{"wc"},
			stdin: "x y\n",
			want:  cliResult{stdout: "1 2 4\n"},
		},
		{
			name: "wc unknown flag",
			args: []string{"wc", "--bogus"},
			want: cliResult{code: types.ExitUsage},
		},
		{
			name: "cat numbering continues across files",
			args: []string{"cat", "-n", "a.txt", "b.txt"},
			want: cliResult{stdout: "     1\tfoo bar\n     2\tbaz\n     3\tone\n     4\t\n     5\ttwo\n"},
		},
		{
			name: "cat nonblank numbering",
			args: []string{"cat", "-b", "b.txt"},
			want: cliResult{stdout: "     1\tone\n\n     2\ttwo\n"},
		},
		{
			name: "head lines",
			args: []string{"head", "-n", "1", "a.txt", "b.txt"},
			want: cliResult{stdout: "==> a.txt <==\nfoo bar\n\n==> b.txt <==\none\n"},
		},
		{
			name: "head bytes",
			args: []string{"head", "-c", "3", "a.txt"},
			want: cliResult{stdout: "foo"},
		},
		{
			name: "uniq counts",
			args: []string{"uniq", "-c", "dups.txt"},
			want: cliResult{stdout: "      2 a\n      1 b\n"},
		},
		{
			name:  "uniq standard input",
			args:  []string{"uniq"},
			stdin: "x\nx\ny\nx\n",
			want:  cliResult{stdout: "x\ny\nx\n"},
		},
		{
			name: "uniq missing input is fatal",
			args: []string{"uniq", "missing.txt"},
			want: cliResult{
				code:   types.ExitFailure,
				stderr: "missing.txt: no such file or directory\n",
			},
		},
		{
			name: "echo joins arguments",
			args: []string{"echo", "hello", "world"},
			want: cliResult{stdout: "hello world\n"},
		},
		{
			name: "echo without newline",
			args: []string{"echo", "-n", "hi"},
			want: cliResult{stdout: "hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := runCLI(t, cliEnv{dir: dir, stdin: tt.stdin}, tt.args...)

			// Usage failures carry cobra's message; only the status is pinned.
			if tt.want.code == types.ExitUsage {
				got.stderr = ""
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(cliResult{})); diff != "" {
				t.Errorf("linetools %v mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func TestUsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"head conflicting flags", []string{"head", "-n", "1", "-c", "1"}, "cannot be used together"},
		{"head negative count", []string{"head", "-n", "-1"}, "invalid count"},
		{"uniq extra operand", []string{"uniq", "a", "b", "c"}, "accepts at most 2 arg(s)"},
		{"echo without text", []string{"echo"}, "requires at least 1 arg(s)"},
		{"unknown flag", []string{"cat", "--frobnicate"}, "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := runCLI(t, cliEnv{}, tt.args...)
			if got.code != types.ExitUsage {
				t.Errorf("exit code = %d, want %d", got.code, types.ExitUsage)
			}
			if !strings.Contains(got.stderr, tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", got.stderr, tt.wantErr)
			}
		})
	}
}

func TestHead_DefaultFromConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	configDir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{"n.txt": "1\n2\n3\n4\n"})
	testutil.MustWriteFile(t, filepath.Join(configDir, "config.cue"), "head: lines: 2\n")

	got := runCLI(t, cliEnv{dir: dir, configDir: configDir}, "head", "n.txt")
	if got.stdout != "1\n2\n" {
		t.Errorf("stdout = %q, want %q", got.stdout, "1\n2\n")
	}

	// An explicit -n still wins over the configured default.
	got = runCLI(t, cliEnv{dir: dir, configDir: configDir}, "head", "-n", "3", "n.txt")
	if got.stdout != "1\n2\n3\n" {
		t.Errorf("stdout = %q, want %q", got.stdout, "1\n2\n3\n")
	}
}

func TestVerboseRendersGuidance(t *testing.T) {
	t.Parallel()

	got := runCLI(t, cliEnv{}, "--verbose", "uniq", "missing.txt")
	if got.code != types.ExitFailure {
		t.Fatalf("exit code = %d, want 1", got.code)
	}
	if !strings.Contains(got.stderr, "missing.txt: no such file or directory") {
		t.Errorf("stderr should keep the diagnostic, got %q", got.stderr)
	}
	if !strings.Contains(got.stderr, "Input file not found") {
		t.Errorf("verbose stderr should include the issue guidance, got %q", got.stderr)
	}
}
