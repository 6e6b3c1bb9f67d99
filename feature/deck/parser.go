package deck

import (
	"regexp"
	"strconv"
	"strings"

	"deck-reconciler/core/naming"
)

// Deck is a multiset of canonical card names with their quantities.
// Zero-quantity entries can exist after parsing (a "0 Foo" line inserts the
// key); they are filtered at consumption (diff, merge, stats), not at parse.
type Deck map[string]int

var (
	lineBreakRe = regexp.MustCompile(`[\r\n]+`)
	sideboardRe = regexp.MustCompile(`(?i)^sideboard\b`)
	headerRe    = regexp.MustCompile(`(?i)^(deck|commander|companion|about)$`)
	quantityRe  = regexp.MustCompile(`(?i)^(\d+)x?\s+(.+)$`)
	// Trailing bracketed annotation: "Foo [MOM]"
	bracketRe = regexp.MustCompile(`\s*\[[^\]]*\]\s*$`)
	// Trailing set annotation with optional collector number: "Foo (MOM) 150"
	setCollectorRe = regexp.MustCompile(`\s*\([^)]*\)(\s+\d\S*)?\s*$`)
	// Residual trailing bare integer
	trailingNumberRe = regexp.MustCompile(`\s+\d+\s*$`)
)

// Parse converts raw decklist text into a Deck. It is total: malformed lines
// are skipped, never reported. Content from the first sideboard marker on is
// discarded entirely.
func Parse(text string) Deck {
	d := make(Deck)
	for _, line := range lineBreakRe.Split(text, -1) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if sideboardRe.MatchString(line) {
			break
		}
		if headerRe.MatchString(line) {
			continue
		}
		m := quantityRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		qty, err := strconv.Atoi(m[1])
		if err != nil {
			// Quantity overflow; treat as malformed.
			continue
		}
		name := cleanName(m[2])
		if name == "" {
			continue
		}
		// Same name on multiple lines sums. A zero quantity still inserts
		// the key for output fidelity.
		d[name] += qty
	}
	return d
}

// cleanName strips trailing annotations from the remainder of a parsed line
// and normalizes the result.
func cleanName(raw string) string {
	s := bracketRe.ReplaceAllString(raw, "")
	s = setCollectorRe.ReplaceAllString(s, "")
	s = trailingNumberRe.ReplaceAllString(s, "")
	return naming.Normalize(s)
}

// Names returns the deck's names with a positive quantity, unsorted.
func (d Deck) Names() []string {
	names := make([]string, 0, len(d))
	for name, qty := range d {
		if qty > 0 {
			names = append(names, name)
		}
	}
	return names
}
