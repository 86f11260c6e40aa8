package metrics

import (
	"sync/atomic"
	"time"
)

// MetricID identifies one counter or histogram slot.
type MetricID uint16

const (
	MetricLoginSuccess MetricID = iota
	MetricLoginFailure
	MetricRegisterSuccess
	MetricRegisterFailure
	MetricLogout
	MetricForcedLogout
	MetricSessionExpiredLocal
	MetricSessionExpiredUpstream
	MetricHydrationRestored
	MetricHydrationDiscarded
	MetricHydrationEmpty
	MetricCitySelected
	MetricStaleResultDiscarded
	MetricGuardAllow
	MetricGuardPending
	MetricGuardRedirectLogin
	MetricGuardRedirectCity
	MetricGuardRedirectHome
	MetricRequestSuccess
	MetricRequestFailure
	MetricUpstreamError
	MetricRequestLatency

	MetricIDCount
)

// HistogramBucketCount is the fixed bucket count of every histogram.
const HistogramBucketCount = 8

// bucket upper bounds in milliseconds; the last slot is +Inf.
var bucketBoundsMillis = [HistogramBucketCount - 1]int64{5, 10, 25, 50, 100, 250, 1000}

// histogramIDs lists the MetricIDs that record durations rather than
// counts.
var histogramIDs = [...]MetricID{MetricRequestLatency}

// Config controls metric collection.
type Config struct {
	Enabled       bool
	EnableLatency bool
}

type paddedCounter struct {
	value atomic.Uint64
	_     [56]byte
}

// Metrics holds atomic counters and optional latency histograms. A nil
// *Metrics, and a Metrics built with Enabled=false, is a no-op on every
// method.
type Metrics struct {
	enabled       bool
	enableLatency bool
	counters      []paddedCounter
	histograms    map[MetricID]*[HistogramBucketCount]paddedCounter
}

// Snapshot is a point-in-time deep copy of all metrics.
type Snapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// New creates a Metrics instance. When cfg.Enabled is false, all
// operations are no-ops.
func New(cfg Config) *Metrics {
	m := &Metrics{
		enabled:       cfg.Enabled,
		enableLatency: cfg.Enabled && cfg.EnableLatency,
	}
	if !m.enabled {
		return m
	}

	m.counters = make([]paddedCounter, MetricIDCount)
	m.histograms = make(map[MetricID]*[HistogramBucketCount]paddedCounter, len(histogramIDs))
	for _, id := range histogramIDs {
		m.histograms[id] = &[HistogramBucketCount]paddedCounter{}
	}
	return m
}

// Inc atomically increments a counter. Out-of-range IDs are ignored.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= MetricIDCount {
		return
	}
	m.counters[id].value.Add(1)
}

// Observe records a duration into a histogram slot. No-op unless latency
// histograms are enabled and id is a histogram metric.
func (m *Metrics) Observe(id MetricID, elapsed time.Duration) {
	if m == nil || !m.enableLatency {
		return
	}
	h, ok := m.histograms[id]
	if !ok {
		return
	}
	h[bucketFor(elapsed)].value.Add(1)
}

func bucketFor(elapsed time.Duration) int {
	millis := elapsed.Milliseconds()
	for i, bound := range bucketBoundsMillis {
		if millis <= bound {
			return i
		}
	}
	return HistogramBucketCount - 1
}

// Snapshot returns a deep copy of all counters and histogram buckets. The
// maps are always non-nil so exporters can range without nil checks.
func (m *Metrics) Snapshot() Snapshot {
	snap := Snapshot{
		Counters:   map[MetricID]uint64{},
		Histograms: map[MetricID][]uint64{},
	}
	if m == nil || !m.enabled {
		return snap
	}

	for id := MetricID(0); id < MetricIDCount; id++ {
		if v := m.counters[id].value.Load(); v > 0 {
			snap.Counters[id] = v
		}
	}
	for id, h := range m.histograms {
		buckets := make([]uint64, HistogramBucketCount)
		for i := range h {
			buckets[i] = h[i].value.Load()
		}
		snap.Histograms[id] = buckets
	}
	return snap
}
