package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMerge_EqualQuantityDefaultsLeft(t *testing.T) {
	a := Deck{"Bolt": 4}
	b := Deck{"Bolt": 4}

	rows := ComputeMerge(a, b, nil, nil)

	assert.Len(t, rows, 1)
	assert.Equal(t, ChoiceLeft, rows[0].Chosen)
	assert.Equal(t, 4, rows[0].Quantity)
	assert.Equal(t, []Choice{ChoiceLeft, ChoiceRight}, rows[0].Options)
	assert.False(t, rows[0].Selected)
}

func TestComputeMerge_UnequalQuantityDefaultsBoth(t *testing.T) {
	a := Deck{"Bolt": 4}
	b := Deck{"Bolt": 3}

	rows := ComputeMerge(a, b, nil, nil)

	assert.Len(t, rows, 1)
	assert.Equal(t, ChoiceBoth, rows[0].Chosen)
	assert.Equal(t, 7, rows[0].Quantity)
	assert.Equal(t, []Choice{ChoiceLeft, ChoiceRight, ChoiceBoth}, rows[0].Options)
}

func TestComputeMerge_ChoiceOverridesDefault(t *testing.T) {
	a := Deck{"Bolt": 4}
	b := Deck{"Bolt": 3}

	rows := ComputeMerge(a, b, map[string]Choice{"Bolt": ChoiceRight}, nil)

	assert.Equal(t, ChoiceRight, rows[0].Chosen)
	assert.Equal(t, 3, rows[0].Quantity)
}

func TestComputeMerge_StaleChoiceIgnored(t *testing.T) {
	// "Both" is not available when quantities are equal; the stale choice
	// falls back to the default.
	a := Deck{"Bolt": 4}
	b := Deck{"Bolt": 4}

	rows := ComputeMerge(a, b, map[string]Choice{"Bolt": ChoiceBoth}, nil)

	assert.Equal(t, ChoiceLeft, rows[0].Chosen)
	assert.Equal(t, 4, rows[0].Quantity)
}

func TestComputeMerge_WrongSideChoiceIgnored(t *testing.T) {
	// A choice pointing at an absent side must not produce its quantities.
	a := Deck{"Guide": 2}
	b := Deck{}
	selected := map[string]bool{"Guide": true}

	rows := ComputeMerge(a, b, map[string]Choice{"Guide": ChoiceRight}, selected)

	assert.Len(t, rows, 1)
	assert.Equal(t, ChoiceLeft, rows[0].Chosen)
	assert.Equal(t, 2, rows[0].Quantity)
}

func TestComputeMerge_ExclusiveRequiresSelection(t *testing.T) {
	a := Deck{"Bolt": 4, "Guide": 2}
	b := Deck{"Bolt": 4}

	rows := ComputeMerge(a, b, nil, nil)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Bolt", rows[0].Name)

	rows = ComputeMerge(a, b, nil, map[string]bool{"Guide": true})
	assert.Len(t, rows, 2)
	assert.Equal(t, "Bolt", rows[0].Name)
	assert.Equal(t, "Guide", rows[1].Name)
	assert.True(t, rows[1].Selected)
	assert.Equal(t, []Choice{ChoiceLeft}, rows[1].Options)
	assert.Equal(t, 2, rows[1].Quantity)
}

func TestComputeMerge_RightExclusiveSelected(t *testing.T) {
	a := Deck{}
	b := Deck{"Swiftspear": 3}

	rows := ComputeMerge(a, b, nil, map[string]bool{"Swiftspear": true})

	assert.Len(t, rows, 1)
	assert.Equal(t, ChoiceRight, rows[0].Chosen)
	assert.Equal(t, 3, rows[0].Quantity)
	assert.True(t, rows[0].Selected)
}

func TestComputeMerge_LexicographicOrder(t *testing.T) {
	a := Deck{"Zealot": 1, "Aven": 1}
	b := Deck{"Mage": 1, "Aven": 1}
	selected := map[string]bool{"Zealot": true, "Mage": true}

	rows := ComputeMerge(a, b, nil, selected)

	assert.Equal(t, "Aven", rows[0].Name)
	assert.Equal(t, "Mage", rows[1].Name)
	assert.Equal(t, "Zealot", rows[2].Name)
}

func TestComputeMerge_ZeroQuantityEntriesDropped(t *testing.T) {
	a := Deck{"Ghost": 0, "Bolt": 2}
	b := Deck{"Bolt": 2}

	rows := ComputeMerge(a, b, nil, map[string]bool{"Ghost": true})

	assert.Len(t, rows, 1)
	assert.Equal(t, "Bolt", rows[0].Name)
}

func TestPruneChoices(t *testing.T) {
	choices := map[string]Choice{
		"Bolt":  ChoiceLeft,
		"Ghost": ChoiceBoth,
	}
	a := Deck{"Bolt": 4}
	b := Deck{"Bolt": 3}

	removed := PruneChoices(choices, a, b)

	assert.Equal(t, 1, removed)
	assert.Contains(t, choices, "Bolt")
	assert.NotContains(t, choices, "Ghost")
}

func TestPruneSelection(t *testing.T) {
	selected := map[string]bool{"Guide": true, "Ghost": true}
	a := Deck{"Guide": 2}
	b := Deck{}

	removed := PruneSelection(selected, a, b)

	assert.Equal(t, 1, removed)
	assert.Contains(t, selected, "Guide")
	assert.NotContains(t, selected, "Ghost")
}

func TestExportText(t *testing.T) {
	rows := []MergeRow{
		{Name: "Goblin Guide", Quantity: 4},
		{Name: "Lightning Bolt", Quantity: 7},
	}
	assert.Equal(t, "4 Goblin Guide\n7 Lightning Bolt", ExportText(rows))
	assert.Equal(t, "", ExportText(nil))
}

func TestExportText_ReparseReproducesMultiset(t *testing.T) {
	// Parsing the text export of a merge reproduces the same multiset.
	a := Parse("4 Lightning Bolt\n3 Goblin Guide")
	b := Parse("2 Lightning Bolt\n3 Goblin Guide\n1 Fire // Ice")

	rows := ComputeMerge(a, b, nil, map[string]bool{"Fire // Ice": true})
	reparsed := Parse(ExportText(rows))

	want := make(Deck)
	for _, row := range rows {
		want[row.Name] = row.Quantity
	}
	assert.Equal(t, want, reparsed)
}
