package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var (
	// AuthAttemptsTotal counts authentication attempts by operation and outcome.
	AuthAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_auth_attempts_total",
		Help: "Total number of authentication attempts by operation and outcome",
	}, []string{"operation", "outcome"})

	// FollowTogglesTotal counts follow toggle operations by resulting action.
	FollowTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_follow_toggles_total",
		Help: "Total number of follow toggles by resulting action",
	}, []string{"action"})

	// LikeTransitionsTotal counts like and unlike requests by operation and outcome.
	LikeTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ripple_like_transitions_total",
		Help: "Total number of like state transitions by operation and outcome",
	}, []string{"operation", "outcome"})

	// PostsCreatedTotal counts created posts.
	PostsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_posts_created_total",
		Help: "Total number of posts created",
	})

	// CommentsCreatedTotal counts created comments.
	CommentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ripple_comments_created_total",
		Help: "Total number of comments created",
	})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ripple_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
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

// RecordAuthAttempt increments the auth attempts counter.
func RecordAuthAttempt(operation, outcome string) {
	AuthAttemptsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordFollowToggle increments the follow toggles counter for the action.
func RecordFollowToggle(action string) {
	FollowTogglesTotal.WithLabelValues(action).Inc()
}

// RecordLikeTransition increments the like transitions counter.
func RecordLikeTransition(operation, outcome string) {
	LikeTransitionsTotal.WithLabelValues(operation, outcome).Inc()
}
