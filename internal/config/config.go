// Package config holds the environment-driven service configuration.
// Secrets (JWT_SECRET, DATABASE_URL, R2 credentials) are read directly
// from the environment by the packages that own them; this struct covers
// the tunable knobs.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

type Config struct {
	Addr string `env:"API_ADDR,default=:8080"`

	DocstoreBaseURL string `env:"DOCSTORE_BASE_URL,required"`
	// Which source the fallback policy tries first: "cache" or "server".
	DocstorePrimary string `env:"DOCSTORE_PRIMARY,default=cache"`
	CachePath       string `env:"DOCSTORE_CACHE_PATH,default=./data/docstore.db"`

	SyncInterval  time.Duration `env:"SYNC_INTERVAL,default=30m"`
	LookaheadDays int           `env:"SYNC_LOOKAHEAD_DAYS,default=7"`

	// IANA zone name used to bucket meals into calendar dates.
	MenuTimezone string `env:"MENU_TIMEZONE,default=Local"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DocstorePrimary != "cache" && cfg.DocstorePrimary != "server" {
		return nil, fmt.Errorf("DOCSTORE_PRIMARY must be %q or %q, got %q", "cache", "server", cfg.DocstorePrimary)
	}
	if cfg.LookaheadDays < 1 {
		return nil, fmt.Errorf("SYNC_LOOKAHEAD_DAYS must be at least 1, got %d", cfg.LookaheadDays)
	}
	return &cfg, nil
}

// Timezone resolves MenuTimezone into a *time.Location.
func (c *Config) Timezone() (*time.Location, error) {
	loc, err := time.LoadLocation(c.MenuTimezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.MenuTimezone, err)
	}
	return loc, nil
}
