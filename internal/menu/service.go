package menu

import (
	"context"
	"time"

	"mensahub/internal/additive"
)

type Service struct {
	repo      Repository
	grouper   *Grouper
	zone      *time.Location
	lookahead int
	now       func() time.Time
}

func NewService(
	repo Repository,
	resolver *additive.Service,
	zone *time.Location,
	lookaheadDays int,
) *Service {
	return &Service{
		repo:      repo,
		grouper:   NewGrouper(resolver, zone),
		zone:      zone,
		lookahead: lookaheadDays,
		now:       time.Now,
	}
}

// --------------------------------------------------
// Menus for a provider and date range
// --------------------------------------------------
// MenusForProvider fetches the provider's meals with dates in [from, to]
// (inclusive calendar dates) and groups them into per-date menus.
func (s *Service) MenusForProvider(
	ctx context.Context,
	providerID string,
	from time.Time,
	to time.Time,
) ([]Menu, error) {

	docs, err := s.repo.ListForProvider(ctx, providerID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return s.grouper.Group(ctx, docs)
}

// DefaultRange is today through today+lookahead-1 in the menu zone.
func (s *Service) DefaultRange() (time.Time, time.Time) {
	local := s.now().In(s.zone)
	from := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.zone)
	return from, from.AddDate(0, 0, s.lookahead-1)
}

// ParseDate parses a YYYY-MM-DD query parameter in the menu zone.
func (s *Service) ParseDate(raw string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", raw, s.zone)
}
