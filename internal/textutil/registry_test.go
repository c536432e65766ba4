// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"context"
	"errors"
	"slices"
	"testing"
)

type mockCommand struct {
	name   string
	called bool
	args   []string
}

func (m *mockCommand) Name() string { return m.name }

func (m *mockCommand) SupportedFlags() []FlagInfo { return nil }

func (m *mockCommand) Run(_ context.Context, args []string) error {
	m.called = true
	m.args = args
	return nil
}

func TestRegistry_RegisterAndRun(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	cmd := &mockCommand{name: "rev"}
	r.Register(cmd)

	if _, ok := r.Lookup("rev"); !ok {
		t.Fatal("Lookup() did not find registered command")
	}
	if err := r.Run(t.Context(), "rev", []string{"rev", "x"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !cmd.called || !slices.Equal(cmd.args, []string{"rev", "x"}) {
		t.Errorf("command called=%v args=%v", cmd.called, cmd.args)
	}
}

func TestRegistry_RunUnknown(t *testing.T) {
	t.Parallel()

	err := NewRegistry().Run(t.Context(), "nope", []string{"nope"})
	if !errors.Is(err, ErrCommandNotFound) {
		t.Errorf("Run() error = %v, want ErrCommandNotFound", err)
	}
}

func TestRegistry_RegisterDuplicatePanics(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(&mockCommand{name: "dup"})

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on duplicate name")
		}
	}()
	r.Register(&mockCommand{name: "dup"})
}

func TestRegistry_RegisterEmptyNamePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on empty name")
		}
	}()
	NewRegistry().Register(&mockCommand{})
}

func TestNewBuiltinRegistry(t *testing.T) {
	t.Parallel()

	want := []string{"cat", "echo", "head", "uniq", "wc"}
	r := NewBuiltinRegistry(Defaults{})
	if got := r.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	for _, name := range want {
		cmd, _ := r.Lookup(name)
		if cmd.Name() != name {
			t.Errorf("Lookup(%q).Name() = %q", name, cmd.Name())
		}
		if len(cmd.SupportedFlags()) == 0 {
			t.Errorf("%s has no documented flags", name)
		}
	}
}
