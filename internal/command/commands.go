// Package command holds the demo bot's commands, one file per command the
// way the rest of keshon bots lay theirs out. The interesting parts are the
// argument specifications and permission trees each descriptor carries.
package command

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/keshon/tgclick/internal/middleware"
	"github.com/keshon/tgclick/internal/storage"
	"github.com/keshon/tgclick/pkg/cmd"
)

// Demo carries the toy state the example commands read and write. Dispatch
// is concurrent, so the fields hide behind a mutex.
type Demo struct {
	mu       sync.Mutex
	name     string
	children float64

	store *storage.Storage
	log   zerolog.Logger
}

// RegisterAll builds every demo command and registers it. Called once at
// startup; a registration error is a programming error in a descriptor.
func RegisterAll(reg *cmd.Registry, store *storage.Storage, log zerolog.Logger) error {
	d := &Demo{store: store, log: log}

	for _, c := range []*cmd.Command{
		d.helpCommand(reg),
		d.startCommand(reg),
		d.whoisCommand(),
		d.nameCommand(),
		d.ageCommand(),
		d.childrenCommand(),
		d.historyCommand(),
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// logged wraps a handler with the command-usage logger.
func (d *Demo) logged(name string, h cmd.HandlerFunc) cmd.HandlerFunc {
	return cmd.Chain(h, middleware.WithCommandLogger(d.store, d.log, name))
}
