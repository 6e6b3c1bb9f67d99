package catalog

import (
	"context"
	"errors"
	"fmt"

	"deck-reconciler/core/naming"
	"deck-reconciler/core/store"

	"go.uber.org/zap"
)

// Result summarizes one resolution pass. Resolution degrades rather than
// aborts: transport failures count into Errors and the affected names fall
// through to the next fallback tier or a tombstone.
type Result struct {
	// Requested is the number of distinct uncached names this pass worked on.
	Requested int `json:"requested"`
	// Resolved counts names that ended with a non-nil record.
	Resolved int `json:"resolved"`
	// Tombstoned counts names that exhausted every fallback without a match.
	Tombstoned int `json:"tombstoned"`
	// Errors counts failed or malformed catalog calls across the pass.
	Errors int `json:"errors"`
}

// Resolver resolves card names against the external catalog, filling a
// Cache. It owns all fallback policy and error tolerance.
type Resolver struct {
	client Client
	logger *zap.Logger
}

// NewResolver creates a resolver over the given catalog client.
func NewResolver(client Client, logger *zap.Logger) *Resolver {
	return &Resolver{client: client, logger: logger}
}

// Resolve looks up every name lacking a cache entry and records an outcome
// (record or tombstone) for each, then persists the cache to the store
// exactly once. Already-cached names, tombstones included, are never
// re-queried. The returned error is non-nil only when every bulk call
// failed, i.e. the catalog was unreachable for the whole pass; partial
// failures are reported through Result.Errors.
func (r *Resolver) Resolve(ctx context.Context, names []string, cache *Cache, st store.Store) (Result, error) {
	missing := cache.Missing(names)
	result := Result{Requested: len(missing)}

	batches := 0
	bulkFailures := 0
	for start := 0; start < len(missing); start += MaxCollectionSize {
		end := start + MaxCollectionSize
		if end > len(missing) {
			end = len(missing)
		}
		batch := missing[start:end]
		batches++

		collection, err := r.client.Collection(ctx, batch)
		if err != nil {
			r.logger.Warn("Bulk lookup failed, falling back to single lookups",
				zap.Int("batch_size", len(batch)), zap.Error(err))
			result.Errors++
			bulkFailures++
			for _, name := range batch {
				r.resolveSingle(ctx, name, cache, &result)
			}
			continue
		}

		byName, byFace := indexCollection(collection.Data)
		for _, name := range batch {
			key := naming.Fold(name)
			// Cache under the originally requested name, not the catalog's
			// canonical spelling, so later exact re-lookups of the same raw
			// text hit cache.
			if record, ok := byName[key]; ok {
				cache.Put(name, record)
				result.Resolved++
				continue
			}
			if record, ok := byFace[key]; ok {
				cache.Put(name, record)
				result.Resolved++
				continue
			}
			r.resolveSingle(ctx, name, cache, &result)
		}
	}

	// Persist once per pass, not once per batch.
	cache.Save(ctx, st, r.logger)

	if batches > 0 && bulkFailures == batches {
		return result, fmt.Errorf("catalog unreachable: all %d bulk lookups failed", batches)
	}
	return result, nil
}

// indexCollection indexes a bulk response by canonical record name and, for
// multi-faced records, by first-face name, both case-insensitively.
func indexCollection(records []Record) (byName, byFace map[string]*Record) {
	byName = make(map[string]*Record, len(records))
	byFace = make(map[string]*Record)
	for i := range records {
		record := &records[i]
		byName[naming.Fold(record.Name)] = record
		if face := record.FirstFaceName(); face != "" && face != record.Name {
			byFace[naming.Fold(face)] = record
		}
	}
	return byName, byFace
}

// lookupAttempt is one tier of the single-item fallback chain.
type lookupAttempt struct {
	mode  string // "exact" or "fuzzy"
	query string
}

// fallbackAttempts builds the ordered fallback tiers for a name:
// exact, fuzzy, and for multi-face names the same pair on the text before
// the separator.
func fallbackAttempts(name string) []lookupAttempt {
	normalized := naming.Normalize(name)
	attempts := []lookupAttempt{
		{mode: "exact", query: normalized},
		{mode: "fuzzy", query: normalized},
	}
	if prefix, ok := naming.FirstFace(normalized); ok && prefix != "" {
		attempts = append(attempts,
			lookupAttempt{mode: "exact", query: prefix},
			lookupAttempt{mode: "fuzzy", query: prefix},
		)
	}
	return attempts
}

// resolveSingle runs the fallback chain for one name, short-circuiting on
// the first hit, and tombstones the name when every tier misses.
func (r *Resolver) resolveSingle(ctx context.Context, name string, cache *Cache, result *Result) {
	for _, attempt := range fallbackAttempts(name) {
		var record *Record
		var err error
		switch attempt.mode {
		case "exact":
			record, err = r.client.NamedExact(ctx, attempt.query)
		default:
			record, err = r.client.NamedFuzzy(ctx, attempt.query)
		}
		if err != nil {
			// A transport failure is a miss for this tier, nothing more.
			if !errors.Is(err, ErrNotFound) {
				r.logger.Warn("Single lookup failed",
					zap.String("name", name),
					zap.String("mode", attempt.mode),
					zap.String("query", attempt.query),
					zap.Error(err))
				result.Errors++
			}
			continue
		}
		if record != nil {
			cache.Put(name, record)
			result.Resolved++
			return
		}
	}
	cache.Put(name, nil)
	result.Tombstoned++
}
