package stats

import (
	"deck-reconciler/feature/catalog"
)

// CurveCap is the top cost bucket; costs at or above it share one bucket.
const CurveCap = 7

// Report aggregates catalog data over one resolved deck.
type Report struct {
	// Total is the number of cards counted, resolved or not.
	Total int `json:"total"`
	// Resolved counts cards with a cached catalog record.
	Resolved int `json:"resolved"`
	// Unresolved counts cards with a tombstone or no cache entry.
	Unresolved int `json:"unresolved"`
	// Lands counts land cards; they are excluded from the cost curve.
	Lands int `json:"lands"`
	// Curve maps cost bucket (0..CurveCap, top bucket open-ended) to card
	// count.
	Curve map[int]int `json:"curve"`
	// Colors maps printed color symbols to card counts. Colorless cards
	// count under "C".
	Colors map[string]int `json:"colors"`
	// ColorIdentity maps color-identity symbols to card counts.
	ColorIdentity map[string]int `json:"color_identity"`
}

// Compute aggregates cost-curve and color buckets for a deck's counts using
// the resolved cache. Quantities weight every bucket. Zero-quantity entries
// are skipped; names without a usable record count as unresolved.
func Compute(counts map[string]int, cache *catalog.Cache) Report {
	report := Report{
		Curve:         make(map[int]int),
		Colors:        make(map[string]int),
		ColorIdentity: make(map[string]int),
	}

	for name, qty := range counts {
		if qty <= 0 {
			continue
		}
		report.Total += qty

		entry, ok := cache.Get(name)
		if !ok || entry.Record == nil {
			report.Unresolved += qty
			continue
		}
		record := entry.Record
		report.Resolved += qty

		if record.IsLand() {
			report.Lands += qty
		} else {
			bucket := int(record.CMC)
			if bucket > CurveCap {
				bucket = CurveCap
			}
			report.Curve[bucket] += qty
		}

		if len(record.Colors) == 0 {
			report.Colors["C"] += qty
		}
		for _, color := range record.Colors {
			report.Colors[color] += qty
		}
		for _, color := range record.ColorIdentity {
			report.ColorIdentity[color] += qty
		}
	}

	return report
}
