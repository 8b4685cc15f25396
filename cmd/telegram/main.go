package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/keshon/tgclick/internal/command"
	"github.com/keshon/tgclick/internal/config"
	"github.com/keshon/tgclick/internal/logging"
	"github.com/keshon/tgclick/internal/storage"
	"github.com/keshon/tgclick/internal/telegram"
	"github.com/keshon/tgclick/pkg/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		println("config error:", err.Error())
		os.Exit(1)
	}

	log := logging.New(cfg.LogFile, cfg.Debug)
	log.Info().Msg("starting tgclick example bot...")

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage")
	}
	defer store.Close()

	reg := cmd.NewRegistry()
	if err := command.RegisterAll(reg, store, log); err != nil {
		log.Fatal().Err(err).Msg("failed to register commands")
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, reg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start Telegram bot")
	}

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("shutting down...")
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("telegram bot error")
		}
		cancel()
	case <-ctx.Done():
	}

	log.Info().Msg("telegram bot exited cleanly")
}
