package deck

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"deck-reconciler/core/store"
	"deck-reconciler/feature/catalog"
	"deck-reconciler/feature/stats"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// choicesStoreKey is the store key for the persisted per-name merge choices.
const choicesStoreKey = "merge_choices_v1"

// Service orchestrates parsing, diff, merge and resolution for the deck
// feature. It owns the process-lifetime catalog cache and the persisted
// merge-choice map; decks themselves are rebuilt from text on every call.
type Service struct {
	store    store.Store
	resolver *catalog.Resolver
	logger   *zap.Logger

	mu    sync.Mutex
	cache *catalog.Cache
	sf    singleflight.Group
}

// NewService creates a new deck service.
func NewService(st store.Store, resolver *catalog.Resolver, logger *zap.Logger) *Service {
	return &Service{store: st, resolver: resolver, logger: logger}
}

// Diff parses both texts and computes the per-name diff.
func (s *Service) Diff(leftText, rightText string) DiffReport {
	return Diff(Parse(leftText), Parse(rightText))
}

// MergeResult is the outcome of one merge computation.
type MergeResult struct {
	Rows   []MergeRow `json:"rows"`
	Export string     `json:"export"`
}

// Merge parses both texts, applies persisted and override choices, computes
// the merged deck and writes the pruned choice map back through the store.
// Override choices are persisted; stale choices for names outside the union
// are dropped.
func (s *Service) Merge(ctx context.Context, leftText, rightText string, overrides map[string]Choice, selected map[string]bool) MergeResult {
	a, b := Parse(leftText), Parse(rightText)

	choices := s.loadChoices(ctx)
	for name, choice := range overrides {
		choices[name] = choice
	}
	PruneChoices(choices, a, b)
	PruneSelection(selected, a, b)

	rows := ComputeMerge(a, b, choices, selected)
	s.saveChoices(ctx, choices)

	return MergeResult{Rows: rows, Export: ExportText(rows)}
}

// Resolve fills the catalog cache for the union of names in both texts plus
// any extra names, deduplicating concurrent passes over the same name
// snapshot. It returns the resolution summary and the records now cached
// for those names (nil record means tombstoned).
func (s *Service) Resolve(ctx context.Context, names []string) (catalog.Result, map[string]*catalog.Record, error) {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	key := strings.Join(sorted, "\x00")

	v, err, _ := s.sf.Do(key, func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		cache := s.ensureCacheLocked(ctx)
		result, err := s.resolver.Resolve(ctx, names, cache, s.store)
		return result, err
	})

	var result catalog.Result
	if v != nil {
		result = v.(catalog.Result)
	}

	records := make(map[string]*catalog.Record, len(names))
	s.mu.Lock()
	cache := s.ensureCacheLocked(ctx)
	for _, name := range names {
		if entry, ok := cache.Get(name); ok {
			records[name] = entry.Record
		}
	}
	s.mu.Unlock()

	return result, records, err
}

// Stats resolves the deck's names and aggregates cost-curve and color
// buckets over the resolved records.
func (s *Service) Stats(ctx context.Context, text string) (stats.Report, catalog.Result, error) {
	d := Parse(text)
	result, _, err := s.Resolve(ctx, d.Names())

	s.mu.Lock()
	cache := s.ensureCacheLocked(ctx)
	report := stats.Compute(d, cache)
	s.mu.Unlock()

	return report, result, err
}

// CacheSnapshot exposes the current catalog cache for the snapshot feature.
func (s *Service) CacheSnapshot(ctx context.Context) *catalog.Cache {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureCacheLocked(ctx)
}

// ensureCacheLocked lazily loads the persisted cache. Callers hold s.mu.
func (s *Service) ensureCacheLocked(ctx context.Context) *catalog.Cache {
	if s.cache == nil {
		s.cache = catalog.LoadCache(ctx, s.store, s.logger)
		s.logger.Info("Loaded catalog cache", zap.Int("entries", s.cache.Len()))
	}
	return s.cache
}

// loadChoices reads the persisted merge-choice map. Missing or corrupt data
// degrades to an empty map.
func (s *Service) loadChoices(ctx context.Context) map[string]Choice {
	choices := make(map[string]Choice)
	raw, ok, err := s.store.Get(ctx, choicesStoreKey)
	if err != nil {
		s.logger.Warn("Failed to read merge choices from store", zap.Error(err))
		return choices
	}
	if !ok || raw == "" {
		return choices
	}
	if err := json.Unmarshal([]byte(raw), &choices); err != nil {
		s.logger.Warn("Corrupt merge choices in store, starting empty", zap.Error(err))
		return make(map[string]Choice)
	}
	return choices
}

// saveChoices writes the choice map through to the store. Write failures
// are logged and skipped.
func (s *Service) saveChoices(ctx context.Context, choices map[string]Choice) {
	raw, err := json.Marshal(choices)
	if err != nil {
		s.logger.Warn("Failed to serialize merge choices", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, choicesStoreKey, string(raw)); err != nil {
		s.logger.Warn("Failed to persist merge choices", zap.Error(err))
	}
}
