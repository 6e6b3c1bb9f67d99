// Package deck implements the deck reconciliation engine: decklist parsing,
// multiset diff/union/merge algebra and the session-facing service.
//
// # Data model
//
// A Deck is a multiset of canonical names (see core/naming) to quantities,
// rebuilt in full from source text on every call. Quantities of zero can
// exist right after parsing (a "0 Foo" line inserts the key for output
// fidelity) and are filtered at every consumption site, so downstream they
// are indistinguishable from absence.
//
// # Components
//
//   - Parse: total text-to-multiset conversion. Malformed lines are skipped,
//     sideboard content is discarded from its marker on.
//   - UnionNames / Status / Delta: pure multiset algebra over two decks.
//   - ComputeMerge: resolves per-name source choices (left, right, both)
//     with stale-choice protection and selection-driven opt-in of
//     exclusive-side names.
//   - Service: orchestrates the above with the catalog resolver, owns the
//     process-lifetime cache and the persisted merge-choice map, and
//     deduplicates overlapping resolution passes.
//   - Handler: exposes the engine over HTTP.
//
// # HTTP Endpoints
//
//   - POST /deck/diff : per-name diff of two decklist texts.
//   - POST /deck/merge : interactive merge with persisted choices.
//   - POST /deck/resolve : batch name resolution against the catalog.
//   - POST /deck/stats : cost-curve and color aggregation.
package deck
