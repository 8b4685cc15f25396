package command

import (
	"fmt"
	"strings"

	"github.com/keshon/tgclick/pkg/argparse"
	"github.com/keshon/tgclick/pkg/chat"
	"github.com/keshon/tgclick/pkg/cmd"
)

func (d *Demo) nameCommand() *cmd.Command {
	return &cmd.Command{
		Names:       []string{"name", "n"},
		Description: "Get/Set a name",
		Arguments: []argparse.Argument{
			{
				Names:       []string{"name"},
				Description: "The new name",
				Example:     "Markus",
				Optional:    true,
				Validator: func(v any) bool {
					s, ok := v.(string)
					return ok && strings.TrimSpace(s) != ""
				},
			},
			argparse.NewFlag([]string{"flag", "f"}, "Some flag that changes the command behaviour."),
			argparse.NewFlag([]string{"flag2"}, "Some other flag."),
		},
		Handler: d.logged("name", func(ctx chat.Context, args argparse.Values) error {
			d.mu.Lock()
			var message string
			if !args.Has("name") {
				message = fmt.Sprintf("Current: %s", d.name)
			} else {
				d.name = args.String("name")
				message = fmt.Sprintf("New: %s", d.name)
			}
			d.mu.Unlock()

			message += fmt.Sprintf("\nFlag is: %v", args.Bool("flag"))
			message += fmt.Sprintf("\nFlag2 is: %v", args.Bool("flag2"))
			return ctx.Reply(message)
		}),
	}
}
