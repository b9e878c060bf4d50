package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

const (
	defaultBaseURL = "http://localhost:8080"
	envBaseURL     = "LOOT_RARITY_URL"
)

// Command is one devtool subcommand.
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry dispatches subcommands by name.
type Registry struct {
	commands map[string]Command
}

func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, cmd := range cmds {
		r.commands[cmd.Name()] = cmd
	}
	return r
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the registered command names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// WriteHelp prints usage with descriptions aligned on the longest name.
func (r *Registry) WriteHelp(w io.Writer) {
	names := r.Names()
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}

	var b strings.Builder
	b.WriteString("Usage: devtool <command> [args...]\n\nAvailable Commands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, name, r.commands[name].Description())
	}
	_, _ = io.WriteString(w, b.String())
}
