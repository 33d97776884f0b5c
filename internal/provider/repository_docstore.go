package provider

import (
	"context"

	"mensahub/internal/docstore"
)

// DocumentRepository reads providers through a document source, normally the
// cache/server fallback pair. Decoding is all-or-nothing: one undecodable
// document fails the whole fetch.
type DocumentRepository struct {
	source docstore.Source
}

func NewDocumentRepository(source docstore.Source) *DocumentRepository {
	return &DocumentRepository{source: source}
}

func (r *DocumentRepository) ListByLocation(
	ctx context.Context,
	location string,
	category string,
) ([]*FoodProvider, error) {

	filters := map[string]string{"location": location}
	if category != "" {
		filters["category"] = category
	}

	docs, err := r.source.Fetch(ctx, docstore.Query{
		Collection: Collection,
		Filters:    filters,
	})
	if err != nil {
		return nil, err
	}

	providers := make([]*FoodProvider, 0, len(docs))
	for _, doc := range docs {
		p, err := DecodeProvider(doc)
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}

	return providers, nil
}

func (r *DocumentRepository) GetByID(
	ctx context.Context,
	id string,
) (*FoodProvider, error) {

	docs, err := r.source.Fetch(ctx, docstore.Query{
		Collection: Collection,
		ID:         id,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	return DecodeProvider(docs[0])
}
