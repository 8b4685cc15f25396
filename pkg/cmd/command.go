// Package cmd provides the command core: a command is a set of names, an
// argument specification list, a permission tree, and a handler. A Registry
// collects commands at startup; a Dispatcher runs the per-message pipeline
// (target filter, permission gate, tokenize, bind, invoke) against it.
package cmd

import (
	"fmt"
	"strings"

	"github.com/keshon/tgclick/pkg/argparse"
	"github.com/keshon/tgclick/pkg/chat"
	"github.com/keshon/tgclick/pkg/permission"
)

// Target selects which "@botname"-suffixed invocations a command reacts to.
type Target uint8

const (
	// TargetUnspecified accepts commands without an @suffix.
	TargetUnspecified Target = 1 << iota
	// TargetSelf accepts commands addressed to this bot.
	TargetSelf
	// TargetOther accepts commands addressed to another bot.
	TargetOther

	// TargetAny accepts all of them.
	TargetAny = TargetUnspecified | TargetSelf | TargetOther
	// TargetDefault is used when a command leaves Target unset.
	TargetDefault = TargetUnspecified | TargetSelf
)

// HandlerFunc is a command callback. It receives the actor context and the
// bound argument values; returning an error routes through the execution
// error path, never past it.
type HandlerFunc func(ctx chat.Context, args argparse.Values) error

// Command binds names, arguments, permission, target filter and handler into
// one registrable descriptor. Built once at startup, validated by
// Registry.Register, never mutated afterwards.
type Command struct {
	// Names the command answers to; the first is canonical.
	Names       []string
	Description string
	Arguments   []argparse.Argument

	// Permission gates execution and listing; nil means anybody.
	Permission permission.Permission

	// Target filters @botname-suffixed invocations; zero means
	// TargetDefault.
	Target Target

	// Hidden removes the command from generated listings for matching
	// actors without affecting execution; nil means always visible.
	Hidden func(ctx chat.Context) bool

	// ErrorHandler is consulted before the dispatcher's handlers.
	ErrorHandler ErrorHandler

	Handler HandlerFunc
}

// Name returns the canonical command name.
func (c *Command) Name() string {
	return c.Names[0]
}

// CheckValid verifies the descriptor: at least one name, a handler, valid
// argument specs with unique names, and no required argument declared after
// an optional one.
func (c *Command) CheckValid() error {
	if len(c.Names) == 0 {
		return fmt.Errorf("command needs at least one name")
	}
	if c.Handler == nil {
		return fmt.Errorf("command /%s has no handler", c.Name())
	}

	seen := make(map[string]string)
	optionalSeen := false
	for _, arg := range c.Arguments {
		if err := arg.CheckValid(); err != nil {
			return fmt.Errorf("command /%s: %w", c.Name(), err)
		}
		for _, n := range arg.Names {
			// Binding is case-insensitive, so clash detection must be too.
			key := strings.ToLower(n)
			if prev, dup := seen[key]; dup {
				return fmt.Errorf("command /%s: argument name '%s' clashes with '%s'", c.Name(), n, prev)
			}
			seen[key] = arg.Name()
		}
		if arg.Flag {
			continue
		}
		if isOptional(arg) {
			optionalSeen = true
		} else if optionalSeen {
			return fmt.Errorf("command /%s: required argument '%s' after optional one", c.Name(), arg.Name())
		}
	}
	return nil
}

func isOptional(arg argparse.Argument) bool {
	return arg.Optional || arg.Default != nil
}

// allowed evaluates the command's permission tree for the actor.
func (c *Command) allowed(ctx chat.Context) bool {
	if c.Permission == nil {
		return true
	}
	return c.Permission.Evaluate(ctx)
}

// target returns the effective target filter.
func (c *Command) target() Target {
	if c.Target == 0 {
		return TargetDefault
	}
	return c.Target
}

// visible reports whether the command shows up in a listing for the actor.
func (c *Command) visible(ctx chat.Context) bool {
	if !c.allowed(ctx) {
		return false
	}
	return c.Hidden == nil || !c.Hidden(ctx)
}
