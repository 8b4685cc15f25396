package command

import (
	"fmt"
	"slices"

	"github.com/keshon/tgclick/pkg/argparse"
	"github.com/keshon/tgclick/pkg/chat"
	"github.com/keshon/tgclick/pkg/cmd"
)

// hiddenFromIDs hides the easter egg from the listed user ids; everyone can
// still run it.
var hiddenFromIDs = []int64{123456}

func (d *Demo) whoisCommand() *cmd.Command {
	return &cmd.Command{
		Names:       []string{"whois"},
		Description: "Some easter-egg",
		Hidden: func(ctx chat.Context) bool {
			return slices.Contains(hiddenFromIDs, ctx.UserID())
		},
		Handler: d.logged("whois", func(ctx chat.Context, _ argparse.Values) error {
			return ctx.Reply(fmt.Sprintf("%d", ctx.UserID()))
		}),
	}
}
