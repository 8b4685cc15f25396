package command

import (
	"github.com/keshon/tgclick/pkg/argparse"
	"github.com/keshon/tgclick/pkg/chat"
	"github.com/keshon/tgclick/pkg/cmd"
)

func (d *Demo) helpCommand(reg *cmd.Registry) *cmd.Command {
	return &cmd.Command{
		Names:       []string{"help", "h"},
		Description: "List commands supported by this bot.",
		Handler: d.logged("help", func(ctx chat.Context, _ argparse.Values) error {
			return ctx.Reply(cmd.CommandList(reg, ctx))
		}),
	}
}

func (d *Demo) startCommand(reg *cmd.Registry) *cmd.Command {
	return &cmd.Command{
		Names:       []string{"start"},
		Description: "Start bot interaction",
		Handler: d.logged("start", func(ctx chat.Context, _ argparse.Values) error {
			return ctx.Reply(cmd.CommandList(reg, ctx))
		}),
	}
}
