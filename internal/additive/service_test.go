package additive

import (
	"context"
	"errors"
	"testing"
)

type capturedEvents struct {
	updated []*Additive
}

func (e *capturedEvents) AdditiveUpdated(a *Additive) {
	e.updated = append(e.updated, a)
}

func TestResolveIsIdempotent(t *testing.T) {
	store := NewInMemoryStore()
	service := NewService(store, nil)
	ctx := context.Background()

	first, err := service.Resolve(ctx, "Gluten", TypeAllergen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Liked {
		t.Fatal("new additives must default to liked")
	}

	second, err := service.Resolve(ctx, "Gluten", TypeAllergen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Name != second.Name {
		t.Fatalf("expected same identity, got %q and %q", first.Name, second.Name)
	}
	if len(store.additives) != 1 {
		t.Fatalf("expected exactly one persisted record, got %d", len(store.additives))
	}
}

func TestResolvePreservesLikeState(t *testing.T) {
	store := NewInMemoryStore()
	service := NewService(store, nil)
	ctx := context.Background()

	if _, err := service.Resolve(ctx, "Soja", TypeAllergen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.UpdateLike(ctx, "Soja", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again, err := service.Resolve(ctx, "Soja", TypeAllergen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Liked {
		t.Fatal("resolving again must not reset the user's dislike")
	}
}

func TestResolveBlankNameIsTransient(t *testing.T) {
	store := NewInMemoryStore()
	service := NewService(store, nil)

	a, err := service.Resolve(context.Background(), "   ", TypeIngredient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a == nil || a.Name != "" || !a.Liked {
		t.Fatalf("expected transient liked record, got %+v", a)
	}
	if len(store.additives) != 0 {
		t.Fatalf("blank names must not be persisted, got %d records", len(store.additives))
	}
}

func TestResolveAllDuplicatesResolvedIndependently(t *testing.T) {
	store := NewInMemoryStore()
	service := NewService(store, nil)

	resolved, err := service.ResolveAll(context.Background(), "a,b,b", TypeIngredient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resolved) != 3 {
		t.Fatalf("expected 3 resolved entries, got %d", len(resolved))
	}
	if resolved[0].Name != "a" || resolved[1].Name != "b" || resolved[2].Name != "b" {
		t.Fatalf("expected input order preserved, got %v", resolved)
	}
	if len(store.additives) != 2 {
		t.Fatalf("expected 2 persisted records, got %d", len(store.additives))
	}
}

func TestResolveAllTrimsTokens(t *testing.T) {
	store := NewInMemoryStore()
	service := NewService(store, nil)

	resolved, err := service.ResolveAll(context.Background(), " Gluten , Lupinen ", TypeAllergen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resolved) != 2 || resolved[0].Name != "Gluten" || resolved[1].Name != "Lupinen" {
		t.Fatalf("expected trimmed names in order, got %v", resolved)
	}
}

func TestResolveAllEmptyInput(t *testing.T) {
	service := NewService(NewInMemoryStore(), nil)

	resolved, err := service.ResolveAll(context.Background(), "", TypeAllergen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("expected empty list, got %v", resolved)
	}
}

func TestUpdateLikeUnknownAdditive(t *testing.T) {
	service := NewService(NewInMemoryStore(), nil)

	_, err := service.UpdateLike(context.Background(), "Niemand", true)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateLikePublishesEvent(t *testing.T) {
	store := NewInMemoryStore()
	events := &capturedEvents{}
	service := NewService(store, events)
	ctx := context.Background()

	if _, err := service.Resolve(ctx, "Sellerie", TypeAllergen); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := service.UpdateLike(ctx, "Sellerie", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Liked {
		t.Fatal("expected additive to be disliked")
	}

	if len(events.updated) != 1 || events.updated[0].Name != "Sellerie" {
		t.Fatalf("expected one update event for Sellerie, got %v", events.updated)
	}
}
