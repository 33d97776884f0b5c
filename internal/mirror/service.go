// Package mirror keeps the local document cache in step with the remote
// document API and publishes change events when mirrored data moves.
package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mensahub/internal/docstore"
	"mensahub/internal/menu"
	"mensahub/internal/metrics"
	"mensahub/internal/provider"
)

// Cache is the writable side of the local mirror.
type Cache interface {
	Fetch(ctx context.Context, q docstore.Query) ([]docstore.Document, error)
	Put(ctx context.Context, collection string, docs []docstore.Document) error
	ReplaceCollection(ctx context.Context, collection string, docs []docstore.Document) error
	DeleteStale(ctx context.Context, collection string, cutoff time.Time) error
}

// Events receives notifications about mirrored data changing. The realtime
// hub implements it; a nil Events disables publishing.
type Events interface {
	ProviderUpdated(p *provider.FoodProvider)
	MenusRefreshed()
}

// Service copies the provider and meal collections from the remote source
// into the local cache: providers wholesale, meals for a rolling window of
// upcoming days.
type Service struct {
	server    docstore.Source
	cache     Cache
	events    Events
	interval  time.Duration
	lookahead int
	zone      *time.Location
	now       func() time.Time
}

func NewService(
	server docstore.Source,
	cache Cache,
	events Events,
	interval time.Duration,
	lookaheadDays int,
	zone *time.Location,
) *Service {
	if zone == nil {
		zone = time.Local
	}
	return &Service{
		server:    server,
		cache:     cache,
		events:    events,
		interval:  interval,
		lookahead: lookaheadDays,
		zone:      zone,
		now:       time.Now,
	}
}

// --------------------------------------------------
// Sync
// --------------------------------------------------

// SyncOnce runs a single full sync. Providers are replaced wholesale; meals
// are upserted for the lookahead window and rows the server stopped
// returning are pruned afterwards.
func (s *Service) SyncOnce(ctx context.Context) error {
	runStart := s.now()

	prev, err := s.cachedProviders(ctx, runStart)
	if err != nil {
		// An unreadable cache only degrades change detection, not the sync.
		slog.Warn("could not load cached providers for change detection", "error", err)
		prev = nil
	}

	providerDocs, err := s.server.Fetch(ctx, docstore.Query{Collection: provider.Collection})
	if err != nil {
		metrics.SyncRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("fetch providers: %w", err)
	}
	if err := s.cache.ReplaceCollection(ctx, provider.Collection, providerDocs); err != nil {
		metrics.SyncRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("cache providers: %w", err)
	}
	metrics.SyncDocuments.WithLabelValues(provider.Collection).Add(float64(len(providerDocs)))

	s.publishProviderChanges(providerDocs, prev, runStart)

	local := runStart.In(s.zone)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.zone)
	mealDocs, err := s.server.Fetch(ctx, docstore.Query{
		Collection: menu.Collection,
		TimeField:  "date",
		From:       from,
		To:         from.AddDate(0, 0, s.lookahead),
	})
	if err != nil {
		metrics.SyncRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("fetch meals: %w", err)
	}
	if err := s.cache.Put(ctx, menu.Collection, mealDocs); err != nil {
		metrics.SyncRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("cache meals: %w", err)
	}
	// Rows this run did not refresh are gone upstream.
	if err := s.cache.DeleteStale(ctx, menu.Collection, runStart); err != nil {
		metrics.SyncRuns.WithLabelValues("error").Inc()
		return fmt.Errorf("prune meals: %w", err)
	}
	metrics.SyncDocuments.WithLabelValues(menu.Collection).Add(float64(len(mealDocs)))

	if s.events != nil {
		s.events.MenusRefreshed()
	}

	metrics.SyncRuns.WithLabelValues("ok").Inc()
	slog.Info("sync completed",
		"providers", len(providerDocs),
		"meals", len(mealDocs),
	)
	return nil
}

// Run syncs immediately and then keeps syncing on the configured interval
// until the context is cancelled. Failed runs are logged and the loop keeps
// going.
func (s *Service) Run(ctx context.Context) {
	if err := s.SyncOnce(ctx); err != nil {
		slog.Error("sync failed", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.SyncOnce(ctx); err != nil {
				slog.Error("sync failed", "error", err)
			}
		}
	}
}

// --------------------------------------------------
// Change detection
// --------------------------------------------------

// cachedProviders decodes the provider documents of the previous run, keyed
// by document id. The reference time must match the one used for the fresh
// decode so status texts do not differ on the clock alone.
func (s *Service) cachedProviders(ctx context.Context, ref time.Time) (map[string]*provider.FoodProvider, error) {
	docs, err := s.cache.Fetch(ctx, docstore.Query{Collection: provider.Collection})
	if err != nil {
		return nil, err
	}

	prev := make(map[string]*provider.FoodProvider, len(docs))
	for _, doc := range docs {
		p, err := provider.DecodeProvider(doc)
		if err != nil {
			continue // an undecodable cached row cannot be diffed
		}
		p.OpeningHoursText = provider.OpeningStatus(p.OpeningHours, ref)
		prev[p.ID] = p
	}
	return prev, nil
}

// publishProviderChanges emits provider.updated for every provider whose
// display data differs from the previously cached version. New providers and
// first runs stay silent; clients pick those up through listing.
func (s *Service) publishProviderChanges(
	docs []docstore.Document,
	prev map[string]*provider.FoodProvider,
	ref time.Time,
) {
	if s.events == nil || len(prev) == 0 {
		return
	}

	for _, doc := range docs {
		next, err := provider.DecodeProvider(doc)
		if err != nil {
			slog.Warn("skipping undecodable provider document", "id", doc.ID, "error", err)
			continue
		}
		next.OpeningHoursText = provider.OpeningStatus(next.OpeningHours, ref)

		before, ok := prev[next.ID]
		if !ok {
			continue
		}
		if !next.DisplayEqual(before) {
			s.events.ProviderUpdated(next)
		}
	}
}
