// Package observability holds Prometheus metrics and OpenTelemetry tracing
// plumbing shared by the rest of the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quill_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// PageCacheHits counts landing page cache hits by key.
	PageCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_page_cache_hits_total",
		Help: "Total number of rendered page cache hits",
	}, []string{"page"})

	// PageCacheMisses counts landing page cache misses by key.
	PageCacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_page_cache_misses_total",
		Help: "Total number of rendered page cache misses",
	}, []string{"page"})

	// PostsCreated counts posts created, labelled by whether a group was set.
	PostsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_posts_created_total",
		Help: "Total number of posts created",
	}, []string{"grouped"})

	// CommentsCreated counts comments created.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quill_comments_created_total",
		Help: "Total number of comments created",
	})

	// FollowEdgeChanges counts follow graph mutations by action (follow, unfollow).
	FollowEdgeChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quill_follow_edge_changes_total",
		Help: "Total number of follow graph changes by action",
	}, []string{"action"})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
