package command

import (
	"fmt"
	"strings"

	"github.com/keshon/tgclick/pkg/argparse"
	"github.com/keshon/tgclick/pkg/chat"
	"github.com/keshon/tgclick/pkg/cmd"
	"github.com/keshon/tgclick/pkg/permission"
)

func (d *Demo) historyCommand() *cmd.Command {
	return &cmd.Command{
		Names:       []string{"history"},
		Description: "Show recent command usage in this chat",
		Arguments: []argparse.Argument{
			{
				Names:       []string{"count", "n"},
				Type:        argparse.TypeInt,
				Description: "How many entries to show",
				Example:     "5",
				Default:     10,
				Validator: func(v any) bool {
					n, ok := v.(int)
					return ok && n > 0
				},
			},
		},
		Permission: permission.ChatAdmin,
		Handler: func(ctx chat.Context, args argparse.Values) error {
			records, err := d.store.FetchCommandHistory(ctx.ChatID())
			if err != nil {
				return fmt.Errorf("fetch command history: %w", err)
			}
			if len(records) == 0 {
				return ctx.Reply("No commands logged in this chat yet.")
			}

			count := args.Int("count")
			if count < len(records) {
				records = records[len(records)-count:]
			}

			var b strings.Builder
			for _, rec := range records {
				fmt.Fprintf(&b, "%s  /%s by %s\n",
					rec.Datetime.Format("2006-01-02 15:04"), rec.Command, rec.Username)
			}
			return ctx.Reply(b.String())
		},
	}
}
