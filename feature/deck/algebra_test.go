package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnionNames(t *testing.T) {
	a := Deck{"Bolt": 4, "Guide": 4}
	b := Deck{"Bolt": 3, "Swiftspear": 3}

	names := UnionNames(a, b)
	assert.Equal(t, []string{"Bolt", "Guide", "Swiftspear"}, names)
	assert.True(t, sort.StringsAreSorted(names))
}

func TestUnionNames_ZeroQuantityExcluded(t *testing.T) {
	a := Deck{"Bolt": 4, "Ghost": 0}
	b := Deck{}
	assert.Equal(t, []string{"Bolt"}, UnionNames(a, b))
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name   string
		qa, qb int
		want   DiffStatus
	}{
		{"Both absent", 0, 0, StatusEqual},
		{"Equal quantities", 4, 4, StatusEqual},
		{"Differing quantities", 4, 3, StatusDiffers},
		{"Only left", 4, 0, StatusOnlyLeft},
		{"Only right", 0, 3, StatusOnlyRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.qa, tt.qb))
		})
	}
}

func TestStatus_SymmetricUnderSwap(t *testing.T) {
	// Swapping sides inverts the Only* labels and keeps the rest.
	assert.Equal(t, StatusOnlyRight, Status(0, 4))
	assert.Equal(t, StatusOnlyLeft, Status(4, 0))
	assert.Equal(t, Status(2, 2), Status(2, 2))
	assert.Equal(t, StatusDiffers, Status(3, 4))
	assert.Equal(t, StatusDiffers, Status(4, 3))
}

func TestDelta(t *testing.T) {
	tests := []struct {
		name     string
		qa, qb   int
		side     Side
		want     int
		wantShow bool
	}{
		{"Left perspective", 4, 3, SideLeft, 1, true},
		{"Right perspective", 4, 3, SideRight, -1, true},
		{"Equal no badge", 4, 4, SideLeft, 0, false},
		{"Left absent no badge", 0, 3, SideLeft, 0, false},
		{"Right absent no badge", 4, 0, SideRight, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, show := Delta(tt.qa, tt.qb, tt.side)
			assert.Equal(t, tt.wantShow, show)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiff(t *testing.T) {
	a := Deck{"Bolt": 4, "Guide": 4}
	b := Deck{"Bolt": 3, "Guide": 4, "Swiftspear": 3}

	report := Diff(a, b)

	assert.Equal(t, 0, report.Summary.OnlyLeft)
	assert.Equal(t, 1, report.Summary.OnlyRight)
	assert.Equal(t, 1, report.Summary.Equal)
	assert.Equal(t, 1, report.Summary.Differs)

	assert.Len(t, report.Rows, 3)
	assert.Equal(t, "Bolt", report.Rows[0].Name)
	assert.Equal(t, StatusDiffers, report.Rows[0].Status)

	delta, ok := Delta(report.Rows[0].Left, report.Rows[0].Right, SideLeft)
	assert.True(t, ok)
	assert.Equal(t, 1, delta)
	delta, _ = Delta(report.Rows[0].Left, report.Rows[0].Right, SideRight)
	assert.Equal(t, -1, delta)
}

func TestDiff_UnionCardinality(t *testing.T) {
	a := Deck{"A": 1, "B": 2, "C": 3}
	b := Deck{"B": 2, "C": 1, "D": 4}
	report := Diff(a, b)
	assert.Len(t, report.Rows, 4)
}
