package docstore

import (
	"context"
	"fmt"

	"mensahub/internal/metrics"
)

// Source is a queryable document collection: the remote API, the local cache,
// or the fallback combination of the two.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]Document, error)
}

// FetchError is the typed failure surfaced by the fallback policy. It names
// the source the failed attempt ran against.
type FetchError struct {
	Source     string
	Collection string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %q from %s: %v", e.Collection, e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// --------------------------------------------------
// Cache/server fallback policy
// --------------------------------------------------

// FallbackSource queries the primary source first and, only when that
// succeeds with an empty result, retries the identical query against the
// secondary source exactly once. An error from either side ends the fetch;
// an error on the primary never triggers the fallback, and there are no
// further retries.
type FallbackSource struct {
	primary   Source
	secondary Source
}

func NewFallbackSource(primary, secondary Source) *FallbackSource {
	return &FallbackSource{primary: primary, secondary: secondary}
}

func (f *FallbackSource) Name() string {
	return f.primary.Name() + "-first"
}

func (f *FallbackSource) Fetch(ctx context.Context, q Query) ([]Document, error) {
	docs, err := f.primary.Fetch(ctx, q)
	if err != nil {
		metrics.DocstoreFetches.WithLabelValues(f.primary.Name(), "error").Inc()
		return nil, &FetchError{Source: f.primary.Name(), Collection: q.Collection, Err: err}
	}
	metrics.DocstoreFetches.WithLabelValues(f.primary.Name(), "ok").Inc()

	if len(docs) > 0 {
		return docs, nil
	}

	metrics.DocstoreFallbacks.Inc()
	docs, err = f.secondary.Fetch(ctx, q)
	if err != nil {
		metrics.DocstoreFetches.WithLabelValues(f.secondary.Name(), "error").Inc()
		return nil, &FetchError{Source: f.secondary.Name(), Collection: q.Collection, Err: err}
	}
	metrics.DocstoreFetches.WithLabelValues(f.secondary.Name(), "ok").Inc()

	return docs, nil
}
