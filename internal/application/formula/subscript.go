package formula

import "strconv"

// Unicode subscript digits U+2080..U+2089, indexed by digit value.
var subscriptDigits = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

var subscriptValues = map[rune]int{
	'₀': 0, '₁': 1, '₂': 2, '₃': 3, '₄': 4,
	'₅': 5, '₆': 6, '₇': 7, '₈': 8, '₉': 9,
}

// Subscript renders n as Unicode subscript digits. Supports multi-digit
// quantities; negative values are rendered without a sign since quantities
// are never negative by the time they reach the renderer.
func Subscript(n int) string {
	if n < 0 {
		n = -n
	}
	digits := strconv.Itoa(n)
	out := make([]rune, 0, len(digits))
	for _, d := range digits {
		out = append(out, subscriptDigits[d-'0'])
	}
	return string(out)
}

// DecodeSubscript decodes a run of subscript digits back to the integer it
// encodes. The second return is false when s is empty or contains a rune
// outside U+2080..U+2089. Tooltip rendering uses this to recover quantities
// from a compiled formula.
func DecodeSubscript(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		v, ok := subscriptValues[r]
		if !ok {
			return 0, false
		}
		n = n*10 + v
	}
	return n, true
}

// IsSubscriptRune reports whether r is one of the subscript digit glyphs.
func IsSubscriptRune(r rune) bool {
	_, ok := subscriptValues[r]
	return ok
}
