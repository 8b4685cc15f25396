package cmd

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/keshon/tgclick/pkg/argparse"
	"github.com/keshon/tgclick/pkg/chat"
)

// Dispatcher runs the per-message pipeline against a registry. It holds no
// per-message state; one Dispatcher serves concurrent dispatches.
type Dispatcher struct {
	Registry *Registry

	// BotName is this bot's username without the leading '@', used to
	// classify "/command@target" suffixes.
	BotName string

	// ErrorHandler is consulted after a command's own override and before
	// the default handler.
	ErrorHandler ErrorHandler

	// CatchAll runs for well-formed commands no descriptor matches. Nil
	// means unknown commands are silently ignored.
	CatchAll HandlerFunc

	// Log receives dispatch decisions at debug level.
	Log zerolog.Logger
}

// defaultHandler terminates every error-handler chain.
var defaultHandler = NewDefaultErrorHandler()

// NewDispatcher returns a dispatcher over the given registry with a silent
// logger and the default error handling.
func NewDispatcher(reg *Registry, botName string) *Dispatcher {
	return &Dispatcher{
		Registry: reg,
		BotName:  strings.TrimPrefix(botName, "@"),
		Log:      zerolog.Nop(),
	}
}

// SplitCommand splits a message into command name, "@target" suffix and the
// remaining argument text. ok is false when the text is not a command at
// all (no leading '/').
func SplitCommand(text string) (name, target, rest string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", "", "", false
	}
	word := text[1:]
	if cut := strings.IndexFunc(word, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }); cut >= 0 {
		word, rest = word[:cut], strings.TrimSpace(word[cut+1:])
	}
	if at := strings.Index(word, "@"); at >= 0 {
		word, target = word[:at], word[at+1:]
	}
	if word == "" {
		return "", "", "", false
	}
	return word, target, rest, true
}

// targetAccepted implements the audience filter: the suffix classifies as
// unspecified, self or other, and must be contained in the allowed mask.
func targetAccepted(allowed Target, target, botName string) bool {
	var class Target
	switch {
	case target == "":
		class = TargetUnspecified
	case strings.EqualFold(target, botName):
		class = TargetSelf
	default:
		class = TargetOther
	}
	return class&allowed == class
}

// Dispatch runs one message through the pipeline. Failure paths resolve to
// at most a reply in the originating chat. The returned error is a handler
// error every error handler in the chain refused; the terminal default
// handler claims everything, so custom chains are the only way to see one.
func (d *Dispatcher) Dispatch(ctx chat.Context) error {
	name, target, rest, ok := SplitCommand(ctx.Text())
	if !ok {
		return nil
	}

	log := d.Log.With().
		Str("command", name).
		Int64("chat", ctx.ChatID()).
		Int64("user", ctx.UserID()).
		Logger()

	c := d.Registry.Get(name)
	if c == nil {
		if target != "" && !strings.EqualFold(target, d.BotName) {
			return nil
		}
		if d.CatchAll != nil {
			return d.CatchAll(ctx, nil)
		}
		log.Debug().Msg("unknown command ignored")
		return nil
	}

	if !targetAccepted(c.target(), target, d.BotName) {
		log.Debug().Str("target", target).Msg("command target not accepted")
		return nil
	}

	if !c.allowed(ctx) {
		log.Debug().Msg("permission denied")
		for _, h := range d.chain(c) {
			if h.OnPermissionDenied(ctx, c) {
				break
			}
		}
		return nil
	}

	values, err := parseArgs(c, rest)
	if err != nil {
		log.Debug().Err(err).Msg("argument validation failed")
		for _, h := range d.chain(c) {
			if h.OnValidationError(ctx, c, err) {
				break
			}
		}
		return nil
	}

	if err := c.Handler(ctx, values); err != nil {
		log.Error().Err(err).Msg("command handler failed")
		for _, h := range d.chain(c) {
			if h.OnExecutionError(ctx, c, err) {
				return nil
			}
		}
		return err
	}
	return nil
}

func parseArgs(c *Command, rest string) (argparse.Values, error) {
	tokens, err := argparse.Tokenize(rest)
	if err != nil {
		return nil, err
	}
	return argparse.Bind(c.Arguments, tokens)
}

// chain orders the error handlers: command override, dispatcher handler,
// default. The default always handles, so every chain terminates.
func (d *Dispatcher) chain(c *Command) []ErrorHandler {
	handlers := make([]ErrorHandler, 0, 3)
	if c != nil && c.ErrorHandler != nil {
		handlers = append(handlers, c.ErrorHandler)
	}
	if d.ErrorHandler != nil {
		handlers = append(handlers, d.ErrorHandler)
	}
	return append(handlers, defaultHandler)
}
