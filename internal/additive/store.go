package additive

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("additive not found")

// Store is the persistent additive record set, unique by name.
// Implementations must serialize writes per name so concurrent resolution
// cannot create duplicate records.
type Store interface {
	Exists(ctx context.Context, name string) (bool, error)
	Get(ctx context.Context, name string) (*Additive, error)
	Insert(ctx context.Context, a *Additive) error
	UpdateLike(ctx context.Context, name string, disliked bool) error
	ListByType(ctx context.Context, typ Type) ([]*Additive, error)
}
