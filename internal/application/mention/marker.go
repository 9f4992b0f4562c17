package mention

import (
	"strings"

	"github.com/google/uuid"
)

// Sentinel glyphs wrapping a retained mention. Renderers split the marked
// text on these to produce linked and plain segments. Distinct start and end
// glyphs keep re-marking idempotent: regions already wrapped are skipped.
const (
	StartSentinel = "⟪"
	EndSentinel   = "⟫"
)

var (
	startSentinelRune = []rune(StartSentinel)[0]
	endSentinelRune   = []rune(EndSentinel)[0]
)

// Segment is one piece of the tagged-segment output: either plain text or a
// recipe mention carrying the recipe ID for click-to-view rendering.
type Segment struct {
	Text     string
	RecipeID uuid.UUID
	Linked   bool
}

// markedRegions locates spans of text already wrapped in sentinels, so a
// second marking pass never nests markers. An unpaired start sentinel blocks
// through to the end of the text.
func markedRegions(text []rune) []Span {
	var regions []Span
	for i := 0; i < len(text); i++ {
		if text[i] != startSentinelRune {
			continue
		}
		end := len(text)
		for j := i + 1; j < len(text); j++ {
			if text[j] == endSentinelRune {
				end = j + 1
				break
			}
		}
		regions = append(regions, Span{Start: i, End: end})
		i = end - 1
	}
	return regions
}

// mark wraps each retained span of the original text in sentinels and builds
// the parallel segment list. Spans must be sorted and non-overlapping, which
// resolveCollisions guarantees. The wrapped substring keeps the original
// casing and apostrophe glyphs.
func mark(text []rune, spans []Span) (string, []Segment) {
	var b strings.Builder
	var segments []Segment

	cursor := 0
	for _, span := range spans {
		if span.Start > cursor {
			plain := string(text[cursor:span.Start])
			b.WriteString(plain)
			segments = append(segments, Segment{Text: plain})
		}

		original := string(text[span.Start:span.End])
		b.WriteString(StartSentinel)
		b.WriteString(original)
		b.WriteString(EndSentinel)
		segments = append(segments, Segment{
			Text:     original,
			RecipeID: span.RecipeID,
			Linked:   true,
		})

		cursor = span.End
	}

	if cursor < len(text) {
		plain := string(text[cursor:])
		b.WriteString(plain)
		segments = append(segments, Segment{Text: plain})
	}

	return b.String(), segments
}

// SplitMarked splits sentinel-marked text back into segments. Renderers that
// only receive the marked string use this instead of the segment list.
// Segments produced here carry no recipe IDs; they only distinguish linked
// from plain text.
func SplitMarked(marked string) []Segment {
	var segments []Segment
	rest := marked
	for {
		start := strings.Index(rest, StartSentinel)
		if start < 0 {
			break
		}
		tail := rest[start+len(StartSentinel):]
		end := strings.Index(tail, EndSentinel)
		if end < 0 {
			break
		}
		if start > 0 {
			segments = append(segments, Segment{Text: rest[:start]})
		}
		segments = append(segments, Segment{Text: tail[:end], Linked: true})
		rest = tail[end+len(EndSentinel):]
	}
	if rest != "" {
		segments = append(segments, Segment{Text: rest})
	}
	return segments
}
