// Package audit provides asynchronous dispatch of session lifecycle events
// (logins, logouts, forced expiries, city changes, guard redirects) to a
// pluggable sink.
//
// # Architecture boundaries
//
// This package owns the event model, the dispatcher goroutine, and the
// bundled sinks. It does NOT decide which events are emitted — the client
// does — and it never blocks a session operation: with DropIfFull set,
// backpressure drops events and counts them instead.
//
// # What this package must NOT do
//
//   - Import the root package or any sibling package.
//   - Perform network I/O itself (sinks may; the dispatcher does not).
//   - Carry credentials or passwords in event fields.
package audit
