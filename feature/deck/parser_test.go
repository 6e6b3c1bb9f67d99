package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Basic(t *testing.T) {
	d := Parse("4 Lightning Bolt\n4 Goblin Guide")
	assert.Equal(t, Deck{"Lightning Bolt": 4, "Goblin Guide": 4}, d)
}

func TestParse_SideboardDropped(t *testing.T) {
	d := Parse("4 Lightning Bolt\n4 Goblin Guide\n\nSideboard\n3 Smash to Smithereens")
	assert.Equal(t, Deck{"Lightning Bolt": 4, "Goblin Guide": 4}, d)
}

func TestParse_SideboardMarkerVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"Plain", "2 Bolt\nSideboard\n1 Pyroblast"},
		{"Lowercase", "2 Bolt\nsideboard\n1 Pyroblast"},
		{"With count", "2 Bolt\nSideboard (15)\n1 Pyroblast"},
		{"With colon", "2 Bolt\nSideboard:\n1 Pyroblast"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Deck{"Bolt": 2}, Parse(tt.text))
		})
	}
}

func TestParse_HeadersSkipped(t *testing.T) {
	d := Parse("Deck\n4 Lightning Bolt\nCompanion\n1 Lurrus of the Dream-Den\nCommander\n1 Krenko, Mob Boss")
	assert.Equal(t, Deck{
		"Lightning Bolt":          4,
		"Lurrus of the Dream-Den": 1,
		"Krenko, Mob Boss":        1,
	}, d)
}

func TestParse_AnnotationStripping(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Deck
	}{
		{"Bracket annotation", "3 Foo [MOM]", Deck{"Foo": 3}},
		{"Set and collector", "3x Foo (MOM) 150", Deck{"Foo": 3}},
		{"Set only", "3 Foo (MOM)", Deck{"Foo": 3}},
		{"Residual trailing integer", "3 Foo 150", Deck{"Foo": 3}},
		{"Quantity x suffix", "4x Goblin Guide", Deck{"Goblin Guide": 4}},
		{"Collector with letter suffix", "2 Foo (SLD) 150a", Deck{"Foo": 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.line))
		})
	}
}

func TestParse_EquivalentNotationsSum(t *testing.T) {
	// Bracket and paren notations clean to the same name and sum.
	d := Parse("3 Foo [MOM]\n3x Foo (MOM) 150")
	assert.Equal(t, Deck{"Foo": 6}, d)
}

func TestParse_MalformedLinesSkipped(t *testing.T) {
	text := "4 Lightning Bolt\n" +
		"not a card line\n" +
		"x4 Bad Prefix\n" +
		"Mountain\n" +
		"2 Goblin Guide"
	assert.Equal(t, Deck{"Lightning Bolt": 4, "Goblin Guide": 2}, Parse(text))
}

func TestParse_LineBreakRuns(t *testing.T) {
	d := Parse("4 Bolt\r\n\r\n\n2 Guide\r3 Swiftspear")
	assert.Equal(t, Deck{"Bolt": 4, "Guide": 2, "Swiftspear": 3}, d)
}

func TestParse_SameNameSums(t *testing.T) {
	d := Parse("2 Lightning Bolt\n1 Lightning   Bolt\n1 Lightning Bolt")
	assert.Equal(t, Deck{"Lightning Bolt": 4}, d)
}

func TestParse_ZeroQuantityInserted(t *testing.T) {
	// A zero-quantity line inserts the key at parse time; consumption
	// filters it out.
	d := Parse("0 Foo\n4 Bolt")
	qty, ok := d["Foo"]
	assert.True(t, ok)
	assert.Equal(t, 0, qty)
	assert.NotContains(t, d.Names(), "Foo")
}

func TestParse_MultiFaceNames(t *testing.T) {
	d := Parse("2 Fire///Ice\n1 Fire // Ice")
	assert.Equal(t, Deck{"Fire // Ice": 3}, d)
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("\n\n\n"))
}
