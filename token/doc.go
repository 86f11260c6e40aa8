// Package token implements client-side bearer credential inspection: payload
// decoding and expiry checks without signature verification or network calls.
//
// # Why unverified
//
// The backend is the sole authority on token validity; the client only needs
// to read embedded claims (subject, role, expiry) to drive local session and
// guard decisions. A token that passes [IsLive] can still be rejected
// upstream, and the API gateway handles that rejection.
//
// # Architecture boundaries
//
// This package owns credential parsing and the liveness predicate. It does
// NOT hold session state, persist anything, or decide authorization.
//
// # What this package must NOT do
//
//   - Perform I/O of any kind.
//   - Import the root package, guard, storage, or api.
//   - Treat a decodable token as proof of authenticity.
package token
