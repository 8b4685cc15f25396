// Package middleware carries handler wrappers the demo bot stacks on top of
// its commands.
package middleware

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/keshon/tgclick/internal/storage"
	"github.com/keshon/tgclick/pkg/argparse"
	"github.com/keshon/tgclick/pkg/chat"
	"github.com/keshon/tgclick/pkg/cmd"
)

// WithCommandLogger records every successful execution in the chat's
// command history. Logging failures never fail the command.
func WithCommandLogger(store *storage.Storage, log zerolog.Logger, name string) cmd.Middleware {
	return func(next cmd.HandlerFunc) cmd.HandlerFunc {
		return func(ctx chat.Context, args argparse.Values) error {
			if err := next(ctx, args); err != nil {
				return err
			}

			rec := storage.CommandRecord{
				UserID:   ctx.UserID(),
				Username: ctx.Username(),
				Command:  name,
				Datetime: time.Now(),
			}
			if err := store.AppendCommandToHistory(ctx.ChatID(), rec); err != nil {
				log.Warn().Err(err).Str("command", name).Msg("failed to log command")
			}
			return nil
		}
	}
}
