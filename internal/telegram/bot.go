// Package telegram is the platform glue: it long-polls the Telegram API and
// feeds every text message through the command dispatcher. Everything the
// toolkit needs from the platform goes through chat.Context, so the library
// packages never see tgbotapi types.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/keshon/tgclick/pkg/cmd"
)

// Bot is a Telegram bot running one dispatcher over a long-poll loop.
type Bot struct {
	api        *tgbotapi.BotAPI
	dispatcher *cmd.Dispatcher
	log        zerolog.Logger
}

// NewBot connects to the Telegram API and binds the dispatcher to this
// bot's username.
func NewBot(token string, reg *cmd.Registry, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram session: %w", err)
	}

	dispatcher := cmd.NewDispatcher(reg, api.Self.UserName)
	dispatcher.Log = log

	return &Bot{api: api, dispatcher: dispatcher, log: log}, nil
}

// Username returns the bot's own username without the leading '@'.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// Dispatcher exposes the dispatcher for host-level tweaks (catch-all
// handler, error-handler override) before Run.
func (b *Bot) Dispatcher() *cmd.Dispatcher {
	return b.dispatcher
}

// Run polls for updates until the context is canceled. Each message is
// dispatched on its own goroutine; dispatches share no mutable state.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	b.log.Info().Str("username", b.api.Self.UserName).Msg("telegram bot connected")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.Info().Msg("shutdown signal received, stopping updates")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			msg := update.Message
			if msg == nil || msg.Text == "" {
				continue
			}
			go func() {
				mctx := newMessageContext(b.api, msg)
				if err := b.dispatcher.Dispatch(mctx); err != nil {
					b.log.Error().Err(err).Int64("chat", msg.Chat.ID).Msg("dispatch failed")
				}
			}()
		}
	}
}
