package cmd

import (
	"fmt"
	"sort"
	"strings"
)

// Registry stores commands by name and alias. It is filled once at startup
// and read-only afterwards, so concurrent dispatch needs no locking. It does
// not perform dispatch itself; a Dispatcher (or any other adapter) looks
// commands up and invokes them with its own context.
type Registry struct {
	commands []*Command
	byName   map[string]*Command
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Command)}
}

// Register validates and adds a command. Names and aliases must be unique
// across the whole registry; lookups are case-insensitive.
func (r *Registry) Register(c *Command) error {
	if err := c.CheckValid(); err != nil {
		return err
	}
	for _, name := range c.Names {
		key := strings.ToLower(name)
		if prev, clash := r.byName[key]; clash {
			return fmt.Errorf("command name '%s' already taken by /%s", name, prev.Name())
		}
	}
	for _, name := range c.Names {
		r.byName[strings.ToLower(name)] = c
	}
	r.commands = append(r.commands, c)
	return nil
}

// MustRegister registers all given commands and panics on the first invalid
// one. Meant for startup wiring, where a bad descriptor is a programming
// error.
func (r *Registry) MustRegister(cmds ...*Command) {
	for _, c := range cmds {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

// Get returns the command registered under the given name or alias, or nil.
func (r *Registry) Get(name string) *Command {
	return r.byName[strings.ToLower(name)]
}

// All returns the registered commands sorted by canonical name.
func (r *Registry) All() []*Command {
	list := make([]*Command, len(r.commands))
	copy(list, r.commands)
	sort.Slice(list, func(i, j int) bool {
		a, b := strings.ToLower(list[i].Name()), strings.ToLower(list[j].Name())
		if a == b {
			return len(list[i].Arguments) < len(list[j].Arguments)
		}
		return a < b
	})
	return list
}
