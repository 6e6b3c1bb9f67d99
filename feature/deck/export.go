package deck

import (
	"fmt"
	"strings"
)

// ExportText serializes merge rows to the plain-text interchange format:
// one "<qty> <name>" line per row, newline-joined, no trailing metadata.
// This is the sole format other deck tools consume.
func ExportText(rows []MergeRow) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%d %s", row.Quantity, row.Name))
	}
	return strings.Join(lines, "\n")
}
