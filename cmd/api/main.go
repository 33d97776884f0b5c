package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"mensahub/internal/additive"
	"mensahub/internal/auth"
	"mensahub/internal/config"
	"mensahub/internal/db"
	"mensahub/internal/docstore"
	"mensahub/internal/icons"
	"mensahub/internal/menu"
	"mensahub/internal/mirror"
	"mensahub/internal/provider"
	"mensahub/internal/realtime"
	"mensahub/internal/router"
	"mensahub/internal/storage"
	"mensahub/pkg/logging"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	logging.Setup()

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"DOCSTORE_BASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid config: %v", err)
	}

	zone, err := cfg.Timezone()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx := context.Background()

	// ───────────────────────── DB ─────────────────────────
	pgDB, err := db.ConnectPostgres(ctx)
	if err != nil {
		log.Fatalf("❌ Postgres init failed: %v", err)
	}
	defer pgDB.Close()

	cache, err := docstore.OpenCache(cfg.CachePath)
	if err != nil {
		log.Fatalf("❌ Cache init failed: %v", err)
	}
	defer cache.Close()

	// ───────────────────────── DOCSTORE ─────────────────────────
	server := docstore.NewServerSource(cfg.DocstoreBaseURL)

	var source docstore.Source
	if cfg.DocstorePrimary == "server" {
		source = docstore.NewFallbackSource(server, cache)
	} else {
		source = docstore.NewFallbackSource(cache, server)
	}

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(ctx)
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	hub := realtime.NewHub()

	additiveService := additive.NewService(additive.NewPostgresStore(pgDB), hub)

	providerService := provider.NewService(
		provider.NewDocumentRepository(source),
		provider.NewPostgresPhotoStore(pgDB),
		icons.Default(),
		r2Client,
	)

	menuService := menu.NewService(
		menu.NewDocumentRepository(source),
		additiveService,
		zone,
		cfg.LookaheadDays,
	)

	syncService := mirror.NewService(server, cache, hub, cfg.SyncInterval, cfg.LookaheadDays, zone)

	authService := auth.NewService(auth.NewPostgresUserRepository(pgDB))

	// ───────────────────────── SYNC WORKER ─────────────────────────
	go syncService.Run(ctx)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Deps{
		Auth:      auth.NewHandler(authService),
		Additives: additive.NewHandler(additiveService),
		Providers: provider.NewHandler(providerService),
		Menus:     menu.NewHandler(menuService),
		Sync:      mirror.NewHandler(syncService),
		Realtime:  realtime.NewHandler(hub),
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
