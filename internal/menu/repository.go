package menu

import (
	"context"
	"time"

	"mensahub/internal/docstore"
)

type Repository interface {
	// ListForProvider returns the provider's meal documents with a date
	// in [from, to).
	ListForProvider(
		ctx context.Context,
		providerID string,
		from time.Time,
		to time.Time,
	) ([]docstore.Document, error)
}
