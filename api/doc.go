// Package api is the authenticated HTTP adapter between the booking client
// and the REST backend, plus the typed service groups the views consume
// (movies, theatres, screens, shows, bookings, users, cities).
//
// # Gateway contract
//
// Every request passes through [Gateway]: a credential known to be dead is
// rejected locally with [ErrSessionExpired] and a forced logout before any
// network I/O; a live credential is attached as a bearer header; a response
// the backend rejects as unauthenticated (401, 403, or an auth-failure
// message) forces a logout and surfaces [ErrSessionExpired] instead of the
// raw response. Every other backend error passes through unchanged as an
// [*UpstreamError] for the calling view to display.
//
// Login, register, and the city directory are public: those requests skip
// the pre-flight, carry no bearer header, and their rejections are never
// reinterpreted as session expiry — a stale credential in memory must not
// block the user from obtaining a fresh one.
//
// # Architecture boundaries
//
// This is the ONLY component allowed to trigger a logout as the side
// effect of a network call. It holds no session state of its own — it
// reads the credential through [CredentialSource] on every request.
//
// # What this package must NOT do
//
//   - Cache credentials or any authentication fact between requests.
//   - Import the root package, guard, or storage.
//   - Trigger logout for non-authentication errors.
package api
