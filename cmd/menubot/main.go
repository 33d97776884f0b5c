package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"mensahub/internal/additive"
	"mensahub/internal/bot"
	"mensahub/internal/config"
	"mensahub/internal/docstore"
	"mensahub/internal/icons"
	"mensahub/internal/menu"
	"mensahub/internal/provider"
	"mensahub/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found")
	}

	logging.Setup()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("❌ Missing env var: TELEGRAM_BOT_TOKEN")
	}

	location := os.Getenv("BOT_LOCATION")
	if location == "" {
		log.Fatal("❌ Missing env var: BOT_LOCATION")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid config: %v", err)
	}

	zone, err := cfg.Timezone()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	cache, err := docstore.OpenCache(cfg.CachePath)
	if err != nil {
		log.Fatalf("❌ Cache init failed: %v", err)
	}
	defer cache.Close()

	server := docstore.NewServerSource(cfg.DocstoreBaseURL)

	var source docstore.Source
	if cfg.DocstorePrimary == "server" {
		source = docstore.NewFallbackSource(server, cache)
	} else {
		source = docstore.NewFallbackSource(cache, server)
	}

	// The bot only displays additive names; like state stays in the API's
	// database, so an in-memory store is enough here.
	additiveService := additive.NewService(additive.NewInMemoryStore(), nil)

	providerService := provider.NewService(provider.NewDocumentRepository(source), nil, icons.Default(), nil)
	menuService := menu.NewService(menu.NewDocumentRepository(source), additiveService, zone, cfg.LookaheadDays)

	b, err := bot.New(token, providerService, menuService, location)
	if err != nil {
		log.Fatalf("❌ Bot init failed: %v", err)
	}

	log.Printf("🤖 Menu bot serving %s", location)
	if err := b.Start(context.Background()); err != nil {
		log.Fatalf("❌ Bot stopped: %v", err)
	}
}
