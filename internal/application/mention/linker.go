package mention

import "sort"

// Result is the output of one linking call.
type Result struct {
	// Marked is the input text with every retained mention wrapped in
	// sentinels, original casing preserved.
	Marked string
	// Segments is the tagged-segment form of Marked: ordered Plain and
	// Mention pieces that concatenate back to the input text.
	Segments []Segment
	// Recipes lists the retained recipes: those with at least one surviving
	// span, ordered by first occurrence, followed by hint-only matches.
	// Empty when nothing was found, which is a normal outcome.
	Recipes []RecipeName
	// Spans are the surviving occurrences in rune offsets, sorted by start.
	Spans []Span
}

// Linker runs the mention pipeline: normalize, find candidates, resolve
// collisions, mark tokens. It holds no state; a single value may be shared
// across goroutines.
type Linker struct{}

// NewLinker creates a Linker.
func NewLinker() *Linker {
	return &Linker{}
}

// Link finds and marks occurrences of known recipe names in text. Hints are
// explicit recommendation names extracted upstream from structured response
// text; a recipe whose normalized name equals a hint is retained even when
// it does not occur literally in the text (it then contributes no span).
func (l *Linker) Link(text string, hints []string, recipes []RecipeName) Result {
	runes := []rune(text)
	folded := foldRunes(text)

	candidates := findCandidates(folded, hints, recipes)
	spans := resolveCollisions(candidates, markedRegions(runes))
	marked, segments := mark(runes, spans)

	return Result{
		Marked:   marked,
		Segments: segments,
		Recipes:  retainedRecipes(candidates, spans),
		Spans:    spans,
	}
}

// retainedRecipes orders recipes with surviving spans by first occurrence
// and appends hint-only recipes afterwards, preserving candidate order.
func retainedRecipes(candidates []candidate, spans []Span) []RecipeName {
	firstStart := make(map[string]int)
	byID := make(map[string]RecipeName)
	for _, span := range spans {
		key := span.RecipeID.String()
		if _, ok := firstStart[key]; !ok {
			firstStart[key] = span.Start
			byID[key] = RecipeName{ID: span.RecipeID, Name: span.Name}
		}
	}

	linked := make([]RecipeName, 0, len(byID))
	for key := range byID {
		linked = append(linked, byID[key])
	}
	sort.Slice(linked, func(i, j int) bool {
		return firstStart[linked[i].ID.String()] < firstStart[linked[j].ID.String()]
	})

	for _, c := range candidates {
		if !c.hinted {
			continue
		}
		if _, ok := firstStart[c.recipe.ID.String()]; ok {
			continue
		}
		linked = append(linked, c.recipe)
	}

	return linked
}
