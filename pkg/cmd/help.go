package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/keshon/tgclick/pkg/argparse"
	"github.com/keshon/tgclick/pkg/chat"
)

// EscapeMarkdown escapes the characters Telegram's markdown mode would
// otherwise swallow from plain text.
func EscapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "*", "\\*")
	return strings.ReplaceAll(s, "_", "\\_")
}

// HelpMessage renders the usage block for one command: synopsis,
// description, flags, arguments and an example invocation.
func HelpMessage(c *Command) string {
	var flags, args []argparse.Argument
	for _, arg := range c.Arguments {
		if arg.Flag {
			flags = append(flags, arg)
		} else {
			args = append(args, arg)
		}
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i].Name() < flags[j].Name() })

	lines := []string{
		synopsis(c, len(flags) > 0, len(args) > 0),
		"  " + EscapeMarkdown(c.Description),
	}
	if len(flags) > 0 {
		lines = append(lines, "Flags:")
		for _, f := range flags {
			lines = append(lines, argumentLine(f))
		}
	}
	if len(args) > 0 {
		lines = append(lines, "Arguments:")
		for _, a := range args {
			lines = append(lines, argumentLine(a))
		}
	}
	if len(flags) > 0 || len(args) > 0 {
		lines = append(lines, "Example:", "  `"+example(c, flags, args)+"`")
	}
	return strings.Join(lines, "\n")
}

func synopsis(c *Command, hasFlags, hasArgs bool) string {
	s := "/" + EscapeMarkdown(c.Name())
	if len(c.Names) > 1 {
		aliases := make([]string, 0, len(c.Names)-1)
		for _, n := range c.Names[1:] {
			aliases = append(aliases, "/"+EscapeMarkdown(n))
		}
		s += " (" + strings.Join(aliases, ", ") + ")"
	}
	if hasFlags {
		s += " [[FLAGS]]"
	}
	if hasArgs {
		s += " [[ARGS]]"
	}
	return s
}

func argumentLine(arg argparse.Argument) string {
	names := make([]string, 0, len(arg.Names))
	for _, n := range arg.Names {
		names = append(names, "`--"+n+"`")
	}
	line := "  " + strings.Join(names, ", ")
	if !arg.Flag {
		line += "  `" + strings.ToUpper(arg.Type.String()) + "`"
	}
	line += "  " + EscapeMarkdown(arg.Description)
	if !arg.Flag && arg.Default != nil {
		line += "  (default: `" + EscapeMarkdown(fmt.Sprint(arg.Default)) + "`)"
	}
	return line
}

func example(c *Command, flags, args []argparse.Argument) string {
	parts := []string{"/" + c.Name()}
	for _, f := range flags {
		parts = append(parts, "--"+f.Name())
	}
	for _, a := range args {
		if a.Example != "" {
			parts = append(parts, a.Example)
		}
	}
	return strings.Join(parts, " ")
}

// CommandList renders the help blocks of every command the actor is allowed
// to see, sorted by name. Commands whose permission denies the actor, or
// whose Hidden predicate matches, are left out.
func CommandList(reg *Registry, ctx chat.Context) string {
	all := reg.All()
	if len(all) == 0 {
		return "This bot does not have any commands."
	}

	var blocks []string
	for _, c := range all {
		if c.visible(ctx) {
			blocks = append(blocks, HelpMessage(c))
		}
	}
	if len(blocks) == 0 {
		return "You do not have permission to use commands."
	}
	return strings.Join(blocks, "\n\n")
}
