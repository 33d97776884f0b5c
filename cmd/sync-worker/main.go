package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"mensahub/internal/config"
	"mensahub/internal/docstore"
	"mensahub/internal/mirror"
	"mensahub/pkg/logging"
)

// Standalone mirror worker for deployments that keep syncing out of the API
// process. The API's /admin/sync trigger keeps working either way.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found")
	}

	logging.Setup()

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
	syncService := mirror.NewService(server, cache, nil, cfg.SyncInterval, cfg.LookaheadDays, zone)

	log.Printf("🔄 Sync worker mirroring %s every %s", cfg.DocstoreBaseURL, cfg.SyncInterval)
	syncService.Run(context.Background())
}
