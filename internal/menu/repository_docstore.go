package menu

import (
	"context"
	"time"

	"mensahub/internal/docstore"
)

// DocumentRepository reads meal documents through a document source,
// normally the cache/server fallback pair.
type DocumentRepository struct {
	source docstore.Source
}

func NewDocumentRepository(source docstore.Source) *DocumentRepository {
	return &DocumentRepository{source: source}
}

func (r *DocumentRepository) ListForProvider(
	ctx context.Context,
	providerID string,
	from time.Time,
	to time.Time,
) ([]docstore.Document, error) {

	return r.source.Fetch(ctx, docstore.Query{
		Collection: Collection,
		Filters:    map[string]string{"foodProviderId": providerID},
		TimeField:  "date",
		From:       from,
		To:         to,
	})
}
