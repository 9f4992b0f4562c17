package mention

import "sort"

// resolveCollisions walks candidates longest-name-first and keeps each
// occurrence only if it does not intersect a span already retained by a
// longer (or equal, earlier-processed) name. A shorter name wholly inside a
// longer match ("Mule" inside "Moscow Mule") is discarded at that location
// outright; there are no trimmed or partial spans. Occurrences intersecting
// a blocked region (already-marked text) are discarded the same way.
//
// Returned spans are sorted by start offset and never overlap.
func resolveCollisions(candidates []candidate, blocked []Span) []Span {
	var retained []Span

	for _, c := range candidates {
	occurrences:
		for _, occ := range c.spans {
			for _, b := range blocked {
				if occ.intersects(b) {
					continue occurrences
				}
			}
			for _, kept := range retained {
				if occ.intersects(kept) {
					continue occurrences
				}
			}
			retained = append(retained, occ)
		}
	}

	sort.Slice(retained, func(i, j int) bool {
		return retained[i].Start < retained[j].Start
	})

	return retained
}
