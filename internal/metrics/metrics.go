// Package metrics exposes prometheus counters for the chatbot service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ChatRequests counts chat messages by classified intent.
	ChatRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "askcart_chat_requests_total",
		Help: "Chat messages handled, labelled by classified intent.",
	}, []string{"intent"})

	// CatalogRefreshes counts provider fetch attempts by outcome
	// (success, stale, failure).
	CatalogRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "askcart_catalog_refreshes_total",
		Help: "Catalog refresh attempts, labelled by outcome.",
	}, []string{"outcome"})

	// CompletionFailures counts completion calls that failed, timed out
	// or returned an empty completion.
	CompletionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "askcart_completion_failures_total",
		Help: "Completion calls that ended in the fallback apology.",
	})
)
