package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/keshon/tgclick/internal/command"
	"github.com/keshon/tgclick/internal/docs"
	"github.com/keshon/tgclick/internal/storage"
	"github.com/keshon/tgclick/pkg/cmd"
)

func main() {
	// The history command needs a store; a scratch one is enough here.
	store, err := storage.New(filepath.Join(os.TempDir(), "tgclick-readme.json"))
	if err != nil {
		log.Fatalf("open scratch storage: %v", err)
	}
	defer store.Close()

	reg := cmd.NewRegistry()
	if err := command.RegisterAll(reg, store, zerolog.Nop()); err != nil {
		log.Fatalf("register commands: %v", err)
	}

	if err := docs.UpdateReadme(reg); err != nil {
		log.Fatalf("update readme: %v", err)
	}
	log.Println("[INFO] README.md updated with current commands")
}
