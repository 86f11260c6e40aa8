package internaldefs

import (
	bookmyshow "github.com/jaydeepparmar2244/BookMyShow-FE"
)

// CounterDef defines a public type used by the booking client APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   bookmyshow.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by the booking client APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   bookmyshow.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the booking client.
var CounterDefs = []CounterDef{
	{ID: bookmyshow.MetricLoginSuccess, Name: "bmsfe_login_success_total", Help: "Successful login attempts."},
	{ID: bookmyshow.MetricLoginFailure, Name: "bmsfe_login_failure_total", Help: "Failed login attempts."},
	{ID: bookmyshow.MetricRegisterSuccess, Name: "bmsfe_register_success_total", Help: "Successful registrations."},
	{ID: bookmyshow.MetricRegisterFailure, Name: "bmsfe_register_failure_total", Help: "Failed registrations."},
	{ID: bookmyshow.MetricLogout, Name: "bmsfe_logout_total", Help: "User-initiated logouts."},
	{ID: bookmyshow.MetricForcedLogout, Name: "bmsfe_forced_logout_total", Help: "Logouts forced by credential expiry or upstream rejection."},
	{ID: bookmyshow.MetricSessionExpiredLocal, Name: "bmsfe_session_expired_local_total", Help: "Requests rejected locally on a dead credential."},
	{ID: bookmyshow.MetricSessionExpiredUpstream, Name: "bmsfe_session_expired_upstream_total", Help: "Requests rejected upstream as authentication failures."},
	{ID: bookmyshow.MetricHydrationRestored, Name: "bmsfe_hydration_restored_total", Help: "Startups that restored a persisted session."},
	{ID: bookmyshow.MetricHydrationDiscarded, Name: "bmsfe_hydration_discarded_total", Help: "Startups that discarded a dead persisted credential."},
	{ID: bookmyshow.MetricHydrationEmpty, Name: "bmsfe_hydration_empty_total", Help: "Startups with no persisted session."},
	{ID: bookmyshow.MetricCitySelected, Name: "bmsfe_city_selected_total", Help: "Operating-city selections."},
	{ID: bookmyshow.MetricStaleResultDiscarded, Name: "bmsfe_stale_result_discarded_total", Help: "In-flight auth results discarded after logout."},
	{ID: bookmyshow.MetricGuardAllow, Name: "bmsfe_guard_allow_total", Help: "Navigation attempts allowed by the guard chain."},
	{ID: bookmyshow.MetricGuardPending, Name: "bmsfe_guard_pending_total", Help: "Navigation attempts deferred during hydration."},
	{ID: bookmyshow.MetricGuardRedirectLogin, Name: "bmsfe_guard_redirect_login_total", Help: "Navigation attempts redirected to login."},
	{ID: bookmyshow.MetricGuardRedirectCity, Name: "bmsfe_guard_redirect_city_total", Help: "Navigation attempts redirected to the city selector."},
	{ID: bookmyshow.MetricGuardRedirectHome, Name: "bmsfe_guard_redirect_home_total", Help: "Navigation attempts redirected home."},
	{ID: bookmyshow.MetricRequestSuccess, Name: "bmsfe_request_success_total", Help: "Successful gateway requests."},
	{ID: bookmyshow.MetricRequestFailure, Name: "bmsfe_request_failure_total", Help: "Failed gateway requests."},
	{ID: bookmyshow.MetricUpstreamError, Name: "bmsfe_upstream_error_total", Help: "Non-auth backend rejections."},
}

// HistogramDefs is an exported constant or variable used by the booking client.
var HistogramDefs = []HistogramDef{
	{ID: bookmyshow.MetricRequestLatency, Name: "bmsfe_request_latency_seconds", Help: "Gateway request latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the booking client.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"1",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the booking client.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"1",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
