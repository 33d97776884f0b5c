package provider

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("food provider not found")

type Repository interface {
	// ListByLocation filters by location, and by category when non-empty.
	ListByLocation(ctx context.Context, location, category string) ([]*FoodProvider, error)
	GetByID(ctx context.Context, id string) (*FoodProvider, error)
}
