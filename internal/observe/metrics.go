// Package observe provides application-wide observability primitives for
// the Solfege service: OpenTelemetry metrics, tracing, structured logging,
// and HTTP middleware that ties them together.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can be
// scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all Solfege metrics.
const meterName = "github.com/solfege-app/solfege"

// Metrics holds all OpenTelemetry metric instruments for the service.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// OptimizeDuration tracks audio normalization pipeline latency.
	OptimizeDuration metric.Float64Histogram

	// ScoreDuration tracks pronunciation scoring latency.
	ScoreDuration metric.Float64Histogram

	// OptimizeRequests counts optimization requests. Use with attribute:
	//   attribute.String("status", "ok"|"malformed"|"unsupported"|"error")
	OptimizeRequests metric.Int64Counter

	// ValidationFailures counts clips that failed format validation.
	ValidationFailures metric.Int64Counter

	// BytesSaved accumulates the bytes removed by optimization across all
	// clips.
	BytesSaved metric.Int64Counter

	// ActivePracticeSessions tracks the number of live practice sessions.
	ActivePracticeSessions metric.Int64UpDownCounter

	// HTTPRequestDuration tracks HTTP request processing time. Use with
	// attributes:
	//   attribute.String("method", ...), attribute.String("path", ...)
	HTTPRequestDuration metric.Float64Histogram
}

// latencyBuckets defines histogram bucket boundaries (in seconds). The
// pipelines are CPU-bound over short buffers, so the buckets skew small.
var latencyBuckets = []float64{
	0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.OptimizeDuration, err = m.Float64Histogram("solfege.audio.optimize.duration",
		metric.WithDescription("Latency of the audio normalization pipeline."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ScoreDuration, err = m.Float64Histogram("solfege.score.duration",
		metric.WithDescription("Latency of pronunciation scoring."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	if met.OptimizeRequests, err = m.Int64Counter("solfege.audio.optimize.requests",
		metric.WithDescription("Total optimization requests by status."),
	); err != nil {
		return nil, err
	}
	if met.ValidationFailures, err = m.Int64Counter("solfege.audio.validation.failures",
		metric.WithDescription("Total clips rejected by format validation."),
	); err != nil {
		return nil, err
	}
	if met.BytesSaved, err = m.Int64Counter("solfege.audio.bytes_saved",
		metric.WithDescription("Cumulative bytes removed by optimization."),
		metric.WithUnit("By"),
	); err != nil {
		return nil, err
	}

	if met.ActivePracticeSessions, err = m.Int64UpDownCounter("solfege.practice.active_sessions",
		metric.WithDescription("Number of live practice sessions."),
	); err != nil {
		return nil, err
	}

	if met.HTTPRequestDuration, err = m.Float64Histogram("solfege.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordOptimize records one optimization request: its latency, a status
// label, and the bytes the pipeline shaved off.
func (m *Metrics) RecordOptimize(ctx context.Context, seconds float64, status string, bytesSaved int) {
	m.OptimizeDuration.Record(ctx, seconds)
	m.OptimizeRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	if bytesSaved > 0 {
		m.BytesSaved.Add(ctx, int64(bytesSaved))
	}
}
