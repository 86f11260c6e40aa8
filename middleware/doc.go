// Package middleware exposes an HTTP adapter for the booking client's route
// guard chain, for terminals that render views behind a local HTTP server.
//
// [Guard] evaluates each request path through [bookmyshow.Client.Evaluate]
// and translates the decision: allow proceeds, redirect becomes a 303 with
// the saved origin in the "from" query parameter, and pending hydration
// answers 503.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into client calls. It does NOT
// implement authorization logic itself — all decisions are delegated to the
// guard chain.
//
// # What this package must NOT do
//
//   - Inspect or attach credentials (the gateway owns bearer handling).
//   - Make authorization decisions beyond what Evaluate returns.
package middleware
