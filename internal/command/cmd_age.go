package command

import (
	"fmt"

	"github.com/keshon/tgclick/pkg/argparse"
	"github.com/keshon/tgclick/pkg/chat"
	"github.com/keshon/tgclick/pkg/cmd"
	"github.com/keshon/tgclick/pkg/permission"
)

func (d *Demo) ageCommand() *cmd.Command {
	return &cmd.Command{
		Names:       []string{"age", "a"},
		Description: "Set age",
		Arguments: []argparse.Argument{
			{
				Names:       []string{"age", "a"},
				Type:        argparse.TypeInt,
				Description: "The new age",
				Example:     "25",
				Validator: func(v any) bool {
					n, ok := v.(int)
					return ok && n > 0
				},
			},
		},
		// Only a non-admin who is either the named user or on the id
		// list may change the age.
		Permission: permission.And(
			permission.Not(permission.GroupAdmin),
			permission.Or(
				permission.Username("markusressel"),
				permission.UserID(123456),
			),
		),
		Handler: d.logged("age", func(ctx chat.Context, args argparse.Values) error {
			return ctx.Reply(fmt.Sprintf("New age: %d", args.Int("age")))
		}),
	}
}
