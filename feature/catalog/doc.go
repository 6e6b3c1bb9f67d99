// Package catalog resolves card names against the external authoritative
// catalog and caches the outcomes.
//
// # Components
//
//   - Client: the two catalog calls the engine depends on — a bulk lookup
//     of up to 70 exact names, and a single lookup in exact or fuzzy mode.
//   - Cache: canonical name to resolved record or tombstone, persisted under
//     a versioned store key. A tombstone records "looked up, authoritatively
//     not found" and suppresses re-lookup for the process lifetime.
//   - Resolver: the batch pipeline with tiered fallback. Bulk responses are
//     indexed by record name and first-face name case-insensitively; names
//     the bulk call misses go through exact, fuzzy, prefix-exact and
//     prefix-fuzzy single lookups in order, short-circuiting on the first
//     hit.
//
// Failure tolerance is the design center: a failed call is a miss for that
// tier, never an abort. The only hard error surfaced is a pass in which
// every bulk call failed. The user-visible failure mode is individual cards
// staying unresolved.
package catalog
