package command

import (
	"fmt"

	"github.com/keshon/tgclick/pkg/argparse"
	"github.com/keshon/tgclick/pkg/chat"
	"github.com/keshon/tgclick/pkg/cmd"
	"github.com/keshon/tgclick/pkg/permission"
)

// grumpyErrorHandler shows an error-handler override: loud denials,
// validation falls through to the default reply, execution errors are
// swallowed.
type grumpyErrorHandler struct{}

func (grumpyErrorHandler) OnPermissionDenied(ctx chat.Context, _ *cmd.Command) bool {
	_ = ctx.Reply("YOU SHALL NOT PASS! 🧙")
	return true
}

func (grumpyErrorHandler) OnValidationError(chat.Context, *cmd.Command, error) bool {
	return false
}

func (grumpyErrorHandler) OnExecutionError(chat.Context, *cmd.Command, error) bool {
	return true
}

func (d *Demo) childrenCommand() *cmd.Command {
	return &cmd.Command{
		Names:       []string{"children", "c"},
		Description: "Set children amount",
		Arguments: []argparse.Argument{
			{
				Names:       []string{"amount", "a"},
				Type:        argparse.TypeFloat,
				Description: "The new amount",
				Example:     "1.57",
				Optional:    true,
				Validator: func(v any) bool {
					f, ok := v.(float64)
					return ok && f >= 0
				},
			},
		},
		Permission:   permission.Nobody,
		ErrorHandler: grumpyErrorHandler{},
		Handler: d.logged("children", func(ctx chat.Context, args argparse.Values) error {
			d.mu.Lock()
			defer d.mu.Unlock()
			if !args.Has("amount") {
				return ctx.Reply(fmt.Sprintf("Current: %v", d.children))
			}
			d.children = args.Float("amount")
			return ctx.Reply(fmt.Sprintf("New: %v", d.children))
		}),
	}
}
