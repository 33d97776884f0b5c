package additive

import (
	"context"
	"strings"
)

// Events receives a notification whenever a user changes an additive's like
// state. The realtime hub implements it.
type Events interface {
	AdditiveUpdated(a *Additive)
}

type Service struct {
	store  Store
	events Events
}

func NewService(store Store, events Events) *Service {
	return &Service{store: store, events: events}
}

// --------------------------------------------------
// Resolve (get-or-insert by name)
// --------------------------------------------------

// Resolve returns the persistent record for the trimmed name, creating it
// with the liked default on first encounter. A blank name yields a transient
// record that is never persisted, so malformed source data cannot pollute
// the store.
func (s *Service) Resolve(ctx context.Context, rawName string, typ Type) (*Additive, error) {
	name := strings.TrimSpace(rawName)
	if name == "" {
		return &Additive{Name: name, Type: typ, Liked: true, Icon: defaultIcon}, nil
	}

	exists, err := s.store.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		// keeps the user's prior like/dislike state
		return s.store.Get(ctx, name)
	}

	a := &Additive{Name: name, Type: typ, Liked: true, Icon: defaultIcon}
	if err := s.store.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// ResolveAll splits the comma-separated list and resolves every token
// independently. Order follows the input; duplicate tokens are each resolved
// on their own, not collapsed.
func (s *Service) ResolveAll(ctx context.Context, rawCsv string, typ Type) ([]*Additive, error) {
	if strings.TrimSpace(rawCsv) == "" {
		return nil, nil
	}

	tokens := strings.Split(rawCsv, ",")
	resolved := make([]*Additive, 0, len(tokens))
	for _, token := range tokens {
		a, err := s.Resolve(ctx, token, typ)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, a)
	}
	return resolved, nil
}

// --------------------------------------------------
// Preference updates
// --------------------------------------------------

func (s *Service) UpdateLike(ctx context.Context, name string, disliked bool) (*Additive, error) {
	name = strings.TrimSpace(name)

	if err := s.store.UpdateLike(ctx, name, disliked); err != nil {
		return nil, err
	}

	a, err := s.store.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.AdditiveUpdated(a)
	}
	return a, nil
}

func (s *Service) ListByType(ctx context.Context, typ Type) ([]*Additive, error) {
	return s.store.ListByType(ctx, typ)
}
