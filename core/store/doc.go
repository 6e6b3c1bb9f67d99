// Package store provides the persistent key-value store backing the catalog
// cache and the merge-choice map.
//
// The Store interface is deliberately small: Get returns a string value or
// absence, Set overwrites. Values are flat JSON objects serialized by the
// owning feature; the store never interprets them.
//
// # Backends
//
//   - GORM-backed (sqlite for local use, mysql for shared deployments),
//     a single kv_entries table with upsert semantics.
//   - In-memory, used in tests and as the degraded mode when the database
//     connection fails at startup.
//
// Store failures are treated as soft by every consumer: a failed read
// degrades to an empty object, a failed write is logged and skipped.
package store
