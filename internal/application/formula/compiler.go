package formula

import (
	"math"
	"strings"
)

// IngredientLine is one recipe ingredient as consumed by the compiler.
// Constructed per call from recipe data owned by the persistence layer.
type IngredientLine struct {
	Name   string
	Amount float64
	Unit   string
}

// Component is one resolved formula element. Subscript 0 or 1 means the
// bare code renders without a subscript.
type Component struct {
	Code      string
	Subscript int
}

// separator joins rendered components.
const separator = " · "

// denylist holds name words that mark a line as garnish or ice. Matching is
// word-boundary with plural tolerance: "Lime Juice" must survive the "ice"
// entry and "Cherries" must still match "cherry".
var denylist = []string{
	"garnish",
	"cherry",
	"olive",
	"wheel",
	"wedge",
	"twist",
	"peel",
	"rim",
	"ice",
	"cube",
}

// Compiler turns ingredient lists into formula strings using a shared
// read-only registry. The zero-cost construction makes per-request reuse
// trivial and concurrent use safe.
type Compiler struct {
	registry *Registry
}

// NewCompiler creates a compiler over the given registry.
func NewCompiler(registry *Registry) *Compiler {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Compiler{registry: registry}
}

// Compile renders an ingredient list as a formula string. Garnish and ice
// lines are dropped; remaining lines resolve in original order. An empty
// result means no potable ingredients, not an error.
func (c *Compiler) Compile(lines []IngredientLine) string {
	components := c.Components(lines)
	if len(components) == 0 {
		return ""
	}

	parts := make([]string, len(components))
	for i, comp := range components {
		parts[i] = renderComponent(comp)
	}
	return strings.Join(parts, separator)
}

// Components resolves the potable lines into formula components,
// preserving original ingredient order.
func (c *Compiler) Components(lines []IngredientLine) []Component {
	var components []Component
	for _, line := range lines {
		if isDenylisted(line.Name) {
			continue
		}
		components = append(components, Component{
			Code:      c.registry.Resolve(line.Name),
			Subscript: quantize(line.Amount),
		})
	}
	return components
}

// renderComponent renders the bare code for quantity <= 1 and appends the
// subscript-encoded quantity otherwise.
func renderComponent(comp Component) string {
	if comp.Subscript <= 1 {
		return comp.Code
	}
	return comp.Code + Subscript(comp.Subscript)
}

// quantize rounds an amount to the nearest integer, ties rounding up.
func quantize(amount float64) int {
	return int(math.Floor(amount + 0.5))
}

// isDenylisted reports whether the ingredient name denotes garnish or ice.
func isDenylisted(name string) bool {
	for _, token := range splitWords(strings.ToLower(name)) {
		for _, entry := range denylist {
			if wordMatches(token, entry) {
				return true
			}
		}
	}
	return false
}

// splitWords breaks a name into letter runs.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !isLetter(r)
	})
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r >= 0x80
}

// wordMatches compares a name word against a denylist entry, tolerating
// simple plurals ("olives", "cherries").
func wordMatches(token, entry string) bool {
	if token == entry || token == entry+"s" {
		return true
	}
	if strings.HasSuffix(entry, "y") && token == entry[:len(entry)-1]+"ies" {
		return true
	}
	return false
}
