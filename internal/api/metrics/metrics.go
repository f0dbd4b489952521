// Package metrics defines and registers all custom Prometheus metrics for the
// showcase API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// router exposes them through the echoprometheus middleware and GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "showcase"

// ── Identity metrics ──────────────────────────────────────────────────────────

// IdentityLookupsTotal counts identity resolutions.
// Label:
//   - outcome: "session" (principal resolved) or "none" (missing/invalid credential)
var IdentityLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_lookups_total",
		Help:      "Total number of identity provider lookups, labelled by outcome.",
	},
	[]string{"outcome"},
)

// ── Sitemap metrics ───────────────────────────────────────────────────────────

// SitemapPagesBuiltTotal counts sitemap page assemblies.
// Label:
//   - result: "ok" or "error" (upstream fetch failed, empty document emitted)
var SitemapPagesBuiltTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sitemap_pages_built_total",
		Help:      "Total number of sitemap page builds, labelled by result.",
	},
	[]string{"result"},
)

// SitemapEntriesPerPage measures the entry count of successfully built pages.
var SitemapEntriesPerPage = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sitemap_entries_per_page",
		Help:      "Number of url entries per generated sitemap page.",
		Buckets:   []float64{0, 10, 100, 1000, 5000, 10000, 25000, 50000},
	},
)

// SitemapCacheTotal counts cache lookups for serialized sitemap documents.
// Label:
//   - result: "hit" or "miss"
var SitemapCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sitemap_cache_total",
		Help:      "Total number of sitemap cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Giveaway metrics ──────────────────────────────────────────────────────────

// GiveawaysCreatedTotal counts newly created giveaways.
var GiveawaysCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "giveaways_created_total",
		Help:      "Total number of giveaways created.",
	},
)

// GiveawayEntriesTotal counts giveaway entry attempts.
// Label:
//   - result: "accepted" or "duplicate"
var GiveawayEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "giveaway_entries_total",
		Help:      "Total number of giveaway entry attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Favorites metrics ─────────────────────────────────────────────────────────

// FavoriteMutationsTotal counts favorite add/remove operations.
// Label:
//   - op: "add" or "remove"
var FavoriteMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "favorite_mutations_total",
		Help:      "Total number of favorite mutations, labelled by operation.",
	},
	[]string{"op"},
)
