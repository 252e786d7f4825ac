package observe

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestMetrics returns a Metrics instance backed by a ManualReader for
// programmatic metric inspection.
func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	return m, reader
}

// collect gathers all metric data from the reader.
func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return rm
}

// findMetric searches for a metric by name across all scope metrics.
func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestNewMetrics_CreatesWithoutError(t *testing.T) {
	m, _ := newTestMetrics(t)
	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}
}

func TestRecordOptimize(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordOptimize(ctx, 0.012, "ok", 2048)
	m.RecordOptimize(ctx, 0.034, "malformed", 0)

	rm := collect(t, reader)

	if md := findMetric(rm, "solfege.audio.optimize.duration"); md == nil {
		t.Error("optimize duration histogram not recorded")
	}

	md := findMetric(rm, "solfege.audio.optimize.requests")
	if md == nil {
		t.Fatal("optimize requests counter not recorded")
	}
	sum, ok := md.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("requests data type = %T, want Sum[int64]", md.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	if total != 2 {
		t.Errorf("requests total = %d, want 2", total)
	}

	md = findMetric(rm, "solfege.audio.bytes_saved")
	if md == nil {
		t.Fatal("bytes saved counter not recorded")
	}
	sum, ok = md.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("bytes saved data type = %T, want Sum[int64]", md.Data)
	}
	if len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 2048 {
		t.Errorf("bytes saved = %+v, want single data point of 2048", sum.DataPoints)
	}
}

func TestActivePracticeSessionsGauge(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.ActivePracticeSessions.Add(ctx, 1)
	m.ActivePracticeSessions.Add(ctx, 1)
	m.ActivePracticeSessions.Add(ctx, -1)

	rm := collect(t, reader)
	md := findMetric(rm, "solfege.practice.active_sessions")
	if md == nil {
		t.Fatal("active sessions gauge not recorded")
	}
	sum, ok := md.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("gauge data type = %T, want Sum[int64]", md.Data)
	}
	if len(sum.DataPoints) != 1 || sum.DataPoints[0].Value != 1 {
		t.Errorf("active sessions = %+v, want single data point of 1", sum.DataPoints)
	}
}
