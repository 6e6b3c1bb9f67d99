package deck

// Choice is the selected source for a name during a merge.
type Choice string

const (
	ChoiceLeft  Choice = "left"
	ChoiceRight Choice = "right"
	ChoiceBoth  Choice = "both"
)

// MergeRow is one entry of the merged deck.
type MergeRow struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Chosen   Choice   `json:"chosen"`
	Options  []Choice `json:"options"`
	// Selected marks an exclusive-side name the user explicitly opted into
	// the merge. Callers suppress these from plain per-side listings to
	// avoid duplicate display.
	Selected bool `json:"selected,omitempty"`
}

// ComputeMerge merges two decks into one ordered row sequence.
//
// Names present in both decks always participate. A name exclusive to one
// side participates only when selected opts it in; it then carries a single
// available option for its side. A persisted choice that is no longer valid
// for the name's current options is ignored in favor of the computed
// default, so a stale choice can never produce quantities from an absent
// side. Rows whose resulting quantity is zero are dropped. Output order is
// lexicographic by name.
func ComputeMerge(a, b Deck, choices map[string]Choice, selected map[string]bool) []MergeRow {
	rows := make([]MergeRow, 0, len(a)+len(b))
	for _, name := range UnionNames(a, b) {
		qa, qb := a[name], b[name]

		var options []Choice
		var def Choice
		exclusive := false
		switch {
		case qa > 0 && qb > 0 && qa == qb:
			options = []Choice{ChoiceLeft, ChoiceRight}
			def = ChoiceLeft
		case qa > 0 && qb > 0:
			options = []Choice{ChoiceLeft, ChoiceRight, ChoiceBoth}
			def = ChoiceBoth
		case qa > 0:
			options = []Choice{ChoiceLeft}
			def = ChoiceLeft
			exclusive = true
		default:
			options = []Choice{ChoiceRight}
			def = ChoiceRight
			exclusive = true
		}

		if exclusive && !selected[name] {
			continue
		}

		chosen := def
		if c, ok := choices[name]; ok && containsChoice(options, c) {
			chosen = c
		}

		var qty int
		switch chosen {
		case ChoiceLeft:
			qty = qa
		case ChoiceRight:
			qty = qb
		case ChoiceBoth:
			qty = qa + qb
		}
		if qty <= 0 {
			continue
		}

		rows = append(rows, MergeRow{
			Name:     name,
			Quantity: qty,
			Chosen:   chosen,
			Options:  options,
			Selected: exclusive,
		})
	}
	return rows
}

// PruneChoices drops persisted choices for names that left the union of both
// decks, preventing unbounded growth of stale entries. It returns the number
// of entries removed.
func PruneChoices(choices map[string]Choice, a, b Deck) int {
	removed := 0
	for name := range choices {
		if !inEither(name, a, b) {
			delete(choices, name)
			removed++
		}
	}
	return removed
}

// PruneSelection drops selection marks for names that left the union of both
// decks, under the same rule as PruneChoices.
func PruneSelection(selected map[string]bool, a, b Deck) int {
	removed := 0
	for name := range selected {
		if !inEither(name, a, b) {
			delete(selected, name)
			removed++
		}
	}
	return removed
}

func inEither(name string, a, b Deck) bool {
	_, inA := a[name]
	_, inB := b[name]
	return inA || inB
}

func containsChoice(options []Choice, c Choice) bool {
	for _, o := range options {
		if o == c {
			return true
		}
	}
	return false
}
