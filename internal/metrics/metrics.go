// Package metrics exposes Prometheus instrumentation for the compliance
// evaluation pipeline.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// EvaluationsTotal counts full catalog evaluations.
	EvaluationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lintel_compliance_evaluations_total",
		Help: "Number of full requirement-catalog evaluations performed.",
	})

	// RequirementsByStatus counts requirement results by resulting status.
	RequirementsByStatus = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lintel_requirements_total",
		Help: "Requirement results produced, labeled by status.",
	}, []string{"status"})

	// ViolationsClassified counts severity classifications by level.
	ViolationsClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lintel_violations_classified_total",
		Help: "Violations classified, labeled by severity level.",
	}, []string{"level"})

	// ViolationsSuppressed counts violations hidden by the aging filter.
	ViolationsSuppressed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lintel_violations_suppressed_total",
		Help: "Open violations suppressed from active counts by the aging filter.",
	})
)

// Handler returns a gin handler serving the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
