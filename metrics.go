package bookmyshow

import (
	internalmetrics "github.com/jaydeepparmar2244/BookMyShow-FE/internal/metrics"
)

// MetricID identifies a specific counter or histogram bucket in the
// in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	// MetricLoginSuccess is an exported constant or variable used by the booking client.
	MetricLoginSuccess = MetricID(internalmetrics.MetricLoginSuccess)
	// MetricLoginFailure is an exported constant or variable used by the booking client.
	MetricLoginFailure = MetricID(internalmetrics.MetricLoginFailure)
	// MetricRegisterSuccess is an exported constant or variable used by the booking client.
	MetricRegisterSuccess = MetricID(internalmetrics.MetricRegisterSuccess)
	// MetricRegisterFailure is an exported constant or variable used by the booking client.
	MetricRegisterFailure = MetricID(internalmetrics.MetricRegisterFailure)
	// MetricLogout is an exported constant or variable used by the booking client.
	MetricLogout = MetricID(internalmetrics.MetricLogout)
	// MetricForcedLogout is an exported constant or variable used by the booking client.
	MetricForcedLogout = MetricID(internalmetrics.MetricForcedLogout)
	// MetricSessionExpiredLocal is an exported constant or variable used by the booking client.
	MetricSessionExpiredLocal = MetricID(internalmetrics.MetricSessionExpiredLocal)
	// MetricSessionExpiredUpstream is an exported constant or variable used by the booking client.
	MetricSessionExpiredUpstream = MetricID(internalmetrics.MetricSessionExpiredUpstream)
	// MetricHydrationRestored is an exported constant or variable used by the booking client.
	MetricHydrationRestored = MetricID(internalmetrics.MetricHydrationRestored)
	// MetricHydrationDiscarded is an exported constant or variable used by the booking client.
	MetricHydrationDiscarded = MetricID(internalmetrics.MetricHydrationDiscarded)
	// MetricHydrationEmpty is an exported constant or variable used by the booking client.
	MetricHydrationEmpty = MetricID(internalmetrics.MetricHydrationEmpty)
	// MetricCitySelected is an exported constant or variable used by the booking client.
	MetricCitySelected = MetricID(internalmetrics.MetricCitySelected)
	// MetricStaleResultDiscarded is an exported constant or variable used by the booking client.
	MetricStaleResultDiscarded = MetricID(internalmetrics.MetricStaleResultDiscarded)
	// MetricGuardAllow is an exported constant or variable used by the booking client.
	MetricGuardAllow = MetricID(internalmetrics.MetricGuardAllow)
	// MetricGuardPending is an exported constant or variable used by the booking client.
	MetricGuardPending = MetricID(internalmetrics.MetricGuardPending)
	// MetricGuardRedirectLogin is an exported constant or variable used by the booking client.
	MetricGuardRedirectLogin = MetricID(internalmetrics.MetricGuardRedirectLogin)
	// MetricGuardRedirectCity is an exported constant or variable used by the booking client.
	MetricGuardRedirectCity = MetricID(internalmetrics.MetricGuardRedirectCity)
	// MetricGuardRedirectHome is an exported constant or variable used by the booking client.
	MetricGuardRedirectHome = MetricID(internalmetrics.MetricGuardRedirectHome)
	// MetricRequestSuccess is an exported constant or variable used by the booking client.
	MetricRequestSuccess = MetricID(internalmetrics.MetricRequestSuccess)
	// MetricRequestFailure is an exported constant or variable used by the booking client.
	MetricRequestFailure = MetricID(internalmetrics.MetricRequestFailure)
	// MetricUpstreamError is an exported constant or variable used by the booking client.
	MetricUpstreamError = MetricID(internalmetrics.MetricUpstreamError)
	// MetricRequestLatency is an exported constant or variable used by the booking client.
	MetricRequestLatency = MetricID(internalmetrics.MetricRequestLatency)
)

// Metrics holds atomic counters and optional latency histograms.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a new [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled:       cfg.Enabled,
		EnableLatency: cfg.EnableLatencyHistograms,
	})
}
