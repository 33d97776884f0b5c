// Package metrics defines the Prometheus collectors shared across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DocstoreFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mensahub_docstore_fetches_total",
		Help: "Document fetches by source and outcome.",
	}, []string{"source", "outcome"})

	DocstoreFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mensahub_docstore_fallbacks_total",
		Help: "Fetches where the primary source came back empty and the secondary was tried.",
	})

	SyncRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mensahub_sync_runs_total",
		Help: "Mirror sync runs by outcome.",
	}, []string{"outcome"})

	SyncDocuments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mensahub_sync_documents_total",
		Help: "Documents mirrored into the local cache, per collection.",
	}, []string{"collection"})
)
