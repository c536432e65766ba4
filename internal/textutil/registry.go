// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrCommandNotFound is returned by Registry.Run for unregistered names.
var ErrCommandNotFound = errors.New("command not found")

// Defaults holds the configurable defaults of the builtins.
// Zero fields fall back to the stock values.
type Defaults struct {
	// HeadLines is the line count head uses without -n.
	HeadLines int64
}

// Registry manages the mapping of command names to their implementations.
// It is safe for concurrent use; shell pipelines look commands up from
// several goroutines.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Panics if a command with the same name is already registered.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := cmd.Name()
	if name == "" {
		panic("textutil: cannot register command with empty name")
	}
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("textutil: command %q already registered", name))
	}
	r.commands[name] = cmd
}

// Lookup retrieves a command by name.
// Returns nil, false if the command is not registered.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the names of all registered commands in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes a command by name. args should include the command name as args[0].
func (r *Registry) Run(ctx context.Context, name string, args []string) error {
	cmd, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrCommandNotFound)
	}
	return cmd.Run(ctx, args)
}

// NewBuiltinRegistry creates a Registry holding every utility of the suite.
func NewBuiltinRegistry(d Defaults) *Registry {
	if d.HeadLines <= 0 {
		d.HeadLines = DefaultHeadLines
	}

	r := NewRegistry()
	r.Register(newWcCommand())
	r.Register(newCatCommand())
	r.Register(newHeadCommand(d.HeadLines))
	r.Register(newUniqCommand())
	r.Register(newEchoCommand())
	return r
}
