// Package mention locates known recipe names in assistant-generated text and
// marks them for click-to-view rendering. The pipeline is pure: normalize,
// find candidates, resolve span collisions, mark tokens. Matching tolerates
// case and apostrophe-style differences but is not typo-tolerant.
package mention

import "unicode"

// canonicalApostrophe is the single glyph all apostrophe variants map to
// for comparison: ASCII ', U+2018, U+2019, and backtick.
const canonicalApostrophe = '\''

// normalizeRune canonicalizes one rune for comparison.
func normalizeRune(r rune) rune {
	switch r {
	case '\'', '‘', '’', '`':
		return canonicalApostrophe
	}
	return r
}

// NormalizeApostrophes maps every apostrophe-like glyph to the canonical
// apostrophe while leaving everything else, including case, untouched.
func NormalizeApostrophes(s string) string {
	out := []rune(s)
	for i, r := range out {
		out[i] = normalizeRune(r)
	}
	return string(out)
}

// foldRunes lowercases and apostrophe-normalizes rune by rune. Every input
// rune maps to exactly one output rune, so offsets into the folded slice are
// valid offsets into the original text's rune slice.
func foldRunes(s string) []rune {
	out := []rune(s)
	for i, r := range out {
		out[i] = unicode.ToLower(normalizeRune(r))
	}
	return out
}

// Fold returns the comparison form of s: apostrophes canonicalized and case
// lowered. Display code keeps the original string; Fold is only for matching.
func Fold(s string) string {
	return string(foldRunes(s))
}
