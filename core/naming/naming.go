package naming

import (
	"regexp"
	"strings"
)

// Separator is the canonical two-character separator between the faces of a
// multi-face card name ("Fire // Ice").
const Separator = "//"

var (
	// Three or more slashes collapse to the canonical separator. Exactly one
	// or two are left alone; two is already canonical and a single slash can
	// be part of a legitimate name.
	separatorRunRe = regexp.MustCompile(`/{3,}`)
	// Any spacing around the canonical separator is rewritten to one space
	// on each side.
	separatorPadRe = regexp.MustCompile(`\s*//\s*`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a raw card-name token for use as a map key.
// It is deterministic, total and idempotent. Two raw tokens that differ only
// in whitespace or slash-style face separators normalize to the same string.
// No case folding is applied; case handling belongs to the resolver.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = separatorRunRe.ReplaceAllString(s, Separator)
	s = separatorPadRe.ReplaceAllString(s, " "+Separator+" ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// FirstFace returns the text before the face separator, trimmed, and whether
// the name contains a separator at all.
func FirstFace(name string) (string, bool) {
	idx := strings.Index(name, Separator)
	if idx < 0 {
		return name, false
	}
	return strings.TrimSpace(name[:idx]), true
}

// Fold returns the normalized, lower-cased form used for case-insensitive
// matching against catalog responses.
func Fold(raw string) string {
	return strings.ToLower(Normalize(raw))
}
