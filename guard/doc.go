// Package guard implements the pure route-guard chain: given a session view
// and a requested path, it produces a tagged [Decision] — allow, redirect
// with a saved origin, or pending while the session is still hydrating.
//
// # Route classes
//
//   - [ClassAlwaysPublic] — no gating (FAQ, terms).
//   - [ClassPublicOnly] — login/signup; authenticated users are bounced home.
//   - [ClassCityGated] — content routes; requires authentication and a
//     selected city. The city-selector path itself is always allowed so the
//     chain can never redirect-loop between "needs city" and "is on the
//     selector".
//   - [ClassRoleGated] — admin routes; requires authentication and an
//     allowed role, and is deliberately exempt from city gating.
//
// # Architecture boundaries
//
// Guards are decision functions only. They never mutate session state,
// never perform I/O, and never panic: any internal inconsistency is
// resolved as "not authenticated" (fail closed).
//
// # What this package must NOT do
//
//   - Call logout or any other session mutation.
//   - Import storage, api, or the root package.
//   - Throw: every path through [Chain.Evaluate] returns a Decision.
package guard
