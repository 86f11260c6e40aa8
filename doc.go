// Package bookmyshow provides the session and authorization core of a
// movie-ticket booking terminal: a hydrating session store, unverified
// credential liveness checks, a route guard chain, and a typed gateway to
// the booking backend.
//
// The package is designed for concurrent client workloads: Client methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// bookmyshow is the public surface. It exposes [Client], [Builder],
// [Config], and value types (SessionSnapshot, UserProfile, MetricsSnapshot,
// etc.). Token decoding lives in token/, guard evaluation in guard/,
// persistence contracts in storage/, backend transport in api/, and
// observability plumbing under internal/.
//
// # What this package must NOT do
//
//   - Verify credential signatures. The backend owns authenticity; this
//     client only reads claims to schedule liveness.
//   - Expose the raw credential string through snapshots or audit events.
//   - Import any sub-package that re-imports bookmyshow (no import cycles).
//
// # Trust model
//
// Every authorization decision made here is a UX optimization. The backend
// re-checks everything; a tampered client can at most render views whose
// data requests will be rejected upstream.
package bookmyshow
