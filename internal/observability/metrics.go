package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ripple_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// AuthAttempts counts authentication attempts by outcome.
	AuthAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_auth_attempts_total",
		Help: "Total authentication attempts by operation and outcome",
	}, []string{"operation", "outcome"})

	// PostsCreated counts posts created.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_posts_created_total",
		Help: "Total number of posts created",
	})

	// PostsDeleted counts posts deleted, including their cascaded children.
	PostsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_posts_deleted_total",
		Help: "Total number of posts deleted",
	})

	// CommentsCreated counts comments created.
	CommentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_comments_created_total",
		Help: "Total number of comments created",
	})

	// ReactionsRecorded counts reaction upserts by kind.
	ReactionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_reactions_recorded_total",
		Help: "Total number of reactions recorded by kind",
	}, []string{"kind"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct {
	db *gorm.DB
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(db *gorm.DB) *DatabaseMetrics {
	return &DatabaseMetrics{db: db}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}

// RecordReaction increments the reaction counter for the given kind.
func RecordReaction(like bool) {
	kind := "dislike"
	if like {
		kind = "like"
	}
	ReactionsRecorded.WithLabelValues(kind).Inc()
}
