package additive

import (
	"context"
	"sort"
	"sync"
)

// InMemoryStore backs tests and the Telegram bot, which runs without a
// database. The mutex serializes writes per name, matching the contract the
// resolver relies on.
type InMemoryStore struct {
	mu        sync.Mutex
	additives map[string]Additive
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		additives: make(map[string]Additive),
	}
}

func (s *InMemoryStore) Exists(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.additives[name]
	return exists, nil
}

func (s *InMemoryStore) Get(ctx context.Context, name string) (*Additive, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.additives[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *InMemoryStore) Insert(ctx context.Context, a *Additive) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// first writer wins, like the ON CONFLICT DO NOTHING in Postgres
	if _, exists := s.additives[a.Name]; exists {
		return nil
	}
	s.additives[a.Name] = *a
	return nil
}

func (s *InMemoryStore) UpdateLike(ctx context.Context, name string, disliked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.additives[name]
	if !ok {
		return ErrNotFound
	}
	a.Liked = !disliked
	s.additives[name] = a
	return nil
}

func (s *InMemoryStore) ListByType(ctx context.Context, typ Type) ([]*Additive, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var additives []*Additive
	for _, a := range s.additives {
		if a.Type == typ {
			a := a
			additives = append(additives, &a)
		}
	}
	sort.Slice(additives, func(i, j int) bool {
		return additives[i].Name < additives[j].Name
	})
	return additives, nil
}
