// Package otel provides OpenTelemetry metric exporter bindings for booking-client
// counters and histograms.
//
// [NewOTelExporter] registers Int64ObservableCounter instruments for each client metric
// and Int64ObservableGauge per histogram bucket. A single callback reads
// [bookmyshow.Client.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate client state.
package otel
