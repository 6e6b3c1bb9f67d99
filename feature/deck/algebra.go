package deck

import "sort"

// DiffStatus classifies one name's presence/quantity relationship between
// two decks.
type DiffStatus string

const (
	StatusEqual     DiffStatus = "equal"
	StatusOnlyLeft  DiffStatus = "only_left"
	StatusOnlyRight DiffStatus = "only_right"
	StatusDiffers   DiffStatus = "differs"
)

// Side identifies which deck a quantity or delta is oriented to.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// UnionNames returns the distinct names of both decks, sorted
// lexicographically. Zero-quantity parse artifacts are excluded; they are
// indistinguishable from absence at consumption time.
func UnionNames(a, b Deck) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for name, qty := range a {
		if qty > 0 {
			seen[name] = struct{}{}
		}
	}
	for name, qty := range b {
		if qty > 0 {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Status classifies the relationship of one name's quantities across two
// decks. Absence is quantity zero; two absences compare Equal.
func Status(qa, qb int) DiffStatus {
	switch {
	case qa <= 0 && qb <= 0:
		return StatusEqual
	case qa > 0 && qb <= 0:
		return StatusOnlyLeft
	case qa <= 0 && qb > 0:
		return StatusOnlyRight
	case qa == qb:
		return StatusEqual
	default:
		return StatusDiffers
	}
}

// Delta returns the signed quantity difference oriented to the requested
// side. The boolean is false (no badge) when either side is absent or the
// delta is zero.
func Delta(qa, qb int, side Side) (int, bool) {
	if qa <= 0 || qb <= 0 || qa == qb {
		return 0, false
	}
	if side == SideRight {
		return qb - qa, true
	}
	return qa - qb, true
}

// DiffRow is the per-name diff of two decks.
type DiffRow struct {
	Name   string     `json:"name"`
	Left   int        `json:"left"`
	Right  int        `json:"right"`
	Status DiffStatus `json:"status"`
}

// DiffSummary aggregates row counts per status.
type DiffSummary struct {
	Equal     int `json:"equal"`
	OnlyLeft  int `json:"only_left"`
	OnlyRight int `json:"only_right"`
	Differs   int `json:"differs"`
}

// DiffReport contains the full per-name diff, ordered lexicographically.
type DiffReport struct {
	Rows    []DiffRow   `json:"rows"`
	Summary DiffSummary `json:"summary"`
}

// Diff computes the per-name diff of two decks.
func Diff(a, b Deck) DiffReport {
	report := DiffReport{Rows: []DiffRow{}}
	for _, name := range UnionNames(a, b) {
		row := DiffRow{
			Name:   name,
			Left:   a[name],
			Right:  b[name],
			Status: Status(a[name], b[name]),
		}
		report.Rows = append(report.Rows, row)
		switch row.Status {
		case StatusEqual:
			report.Summary.Equal++
		case StatusOnlyLeft:
			report.Summary.OnlyLeft++
		case StatusOnlyRight:
			report.Summary.OnlyRight++
		case StatusDiffers:
			report.Summary.Differs++
		}
	}
	return report
}
