package cmd

import (
	"github.com/keshon/tgclick/pkg/chat"
)

// ErrorHandler reacts to the three failure paths of a dispatch. Each hook
// returns true when it handled the failure; false falls through to the next
// handler in the chain (command override first, dispatcher handler next,
// the default last).
type ErrorHandler interface {
	// OnPermissionDenied runs when the permission tree denied the actor.
	OnPermissionDenied(ctx chat.Context, c *Command) bool
	// OnValidationError runs when tokenizing or binding failed; the
	// handler was not invoked.
	OnValidationError(ctx chat.Context, c *Command, err error) bool
	// OnExecutionError runs when the handler itself returned an error.
	OnExecutionError(ctx chat.Context, c *Command, err error) bool
}

const (
	deniedText    = "🛑 You do not have permission to use this command."
	executionText = "💥 There was an error executing your command."
)

// DefaultErrorHandler is the terminal handler of every chain: permission
// denials stay silent, validation errors reply with the message and the
// command's help block, execution errors reply with a generic notice.
type DefaultErrorHandler struct {
	// SilentDenial suppresses the permission-denied reply.
	SilentDenial bool
	// PrintError replies with the raw handler error instead of the
	// generic notice.
	PrintError bool
}

// NewDefaultErrorHandler returns the stock configuration: silent denials,
// no error internals in replies.
func NewDefaultErrorHandler() *DefaultErrorHandler {
	return &DefaultErrorHandler{SilentDenial: true}
}

func (h *DefaultErrorHandler) OnPermissionDenied(ctx chat.Context, c *Command) bool {
	if h.SilentDenial {
		return true
	}
	_ = ctx.Reply(deniedText)
	return true
}

func (h *DefaultErrorHandler) OnValidationError(ctx chat.Context, c *Command, err error) bool {
	_ = ctx.Reply("❗ " + err.Error() + "\n\n" + HelpMessage(c))
	return true
}

func (h *DefaultErrorHandler) OnExecutionError(ctx chat.Context, c *Command, err error) bool {
	if h.PrintError {
		_ = ctx.Reply("💥 " + err.Error())
		return true
	}
	_ = ctx.Reply(executionText)
	return true
}
