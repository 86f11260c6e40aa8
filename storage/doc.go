// Package storage provides durable persistence backends for the two session
// keys (credential and serialized profile) owned by the session store.
//
// # Backends
//
//   - [Memory] — process-local, for tests and ephemeral embeds.
//   - [File] — single JSON document with atomic rename writes, the default
//     for desktop/CLI deployments.
//   - [Redis] — go-redis backed, for kiosk fleets that keep terminal
//     sessions on a shared instance.
//
// # Architecture boundaries
//
// This package moves opaque bytes. It does NOT interpret credentials,
// decode profiles, or enforce session invariants — the session store is the
// single writer and owns all semantics.
//
// # What this package must NOT do
//
//   - Inspect or validate the credential string.
//   - Import the root package, token, guard, or api.
//   - Write session keys on behalf of any caller other than the session
//     store.
package storage
