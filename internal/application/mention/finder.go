package mention

import (
	"sort"

	"github.com/google/uuid"
)

// RecipeName identifies one known recipe supplied by the caller.
// The linker does not own or cache these.
type RecipeName struct {
	ID   uuid.UUID
	Name string
}

// Span is one located occurrence of a candidate name. Offsets are rune
// indices into the input text, start inclusive, end exclusive.
type Span struct {
	Start    int
	End      int
	RecipeID uuid.UUID
	Name     string
}

// Len returns the span length in runes.
func (s Span) Len() int {
	return s.End - s.Start
}

// contains reports whether other lies entirely within s.
func (s Span) contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// intersects reports whether the two spans share any position.
func (s Span) intersects(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// candidate is a recipe whose normalized name occurs in the text or matches
// a recommendation hint.
type candidate struct {
	recipe RecipeName
	folded []rune
	spans  []Span // text occurrences; empty for hint-only candidates
	hinted bool
}

// findCandidates generates candidates ordered by name length descending,
// ties keeping input order. Duplicate names (after folding) collapse onto
// the first occurrence in the input list. Empty names never match.
func findCandidates(text []rune, hints []string, recipes []RecipeName) []candidate {
	foldedHints := make(map[string]bool, len(hints))
	for _, h := range hints {
		if f := Fold(h); f != "" {
			foldedHints[f] = true
		}
	}

	seen := make(map[string]bool, len(recipes))
	var candidates []candidate
	for _, r := range recipes {
		folded := foldRunes(r.Name)
		if len(folded) == 0 || seen[string(folded)] {
			continue
		}
		seen[string(folded)] = true

		c := candidate{
			recipe: r,
			folded: folded,
			hinted: foldedHints[string(folded)],
		}
		for _, start := range runeIndexAll(text, folded) {
			c.spans = append(c.spans, Span{
				Start:    start,
				End:      start + len(folded),
				RecipeID: r.ID,
				Name:     r.Name,
			})
		}
		if len(c.spans) > 0 || c.hinted {
			candidates = append(candidates, c)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].folded) > len(candidates[j].folded)
	})

	return candidates
}

// runeIndexAll returns the start offsets of every non-overlapping occurrence
// of needle in haystack. Naive scan; inputs are a chat message and a name.
func runeIndexAll(haystack, needle []rune) []int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return nil
	}

	var starts []int
	for i := 0; i+len(needle) <= len(haystack); {
		if runeEqual(haystack[i:i+len(needle)], needle) {
			starts = append(starts, i)
			i += len(needle)
			continue
		}
		i++
	}
	return starts
}

func runeEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
