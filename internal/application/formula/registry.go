// Package formula renders cocktail recipes as compact symbolic formula
// strings. Each potable ingredient resolves to a two-letter symbol, with a
// Unicode subscript encoding its rounded quantity: "Ry₂ · Sv · An₂".
//
// The package is pure computation: the registry and unit tables are built
// once at startup and shared read-only, so every function here is safe for
// concurrent use.
package formula

import (
	"fmt"
	"strings"
	"unicode"
)

// SymbolEntry maps an ingredient keyword to its two-letter code.
type SymbolEntry struct {
	Keyword string
	Code    string
}

// Registry is an immutable, priority-ordered symbol table. Entries are
// scanned in declaration order, so specific multi-word keywords must be
// declared before the generic keywords they contain ("green chartreuse"
// before "chartreuse"). NewRegistry enforces that ordering.
type Registry struct {
	entries []SymbolEntry
}

// NewRegistry builds a registry from priority-ordered entries.
// It rejects codes that are not exactly two runes and orderings where a
// later keyword contains an earlier one, since the earlier generic entry
// would shadow the specific one.
func NewRegistry(entries []SymbolEntry) (*Registry, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("registry requires at least one entry")
	}

	for i, e := range entries {
		if e.Keyword == "" {
			return nil, fmt.Errorf("entry %d: empty keyword", i)
		}
		if e.Keyword != strings.ToLower(e.Keyword) {
			return nil, fmt.Errorf("entry %d: keyword %q must be lowercase", i, e.Keyword)
		}
		if n := len([]rune(e.Code)); n != 2 {
			return nil, fmt.Errorf("entry %d: code %q must be exactly 2 characters", i, e.Code)
		}
		for j := 0; j < i; j++ {
			if strings.Contains(e.Keyword, entries[j].Keyword) {
				return nil, fmt.Errorf(
					"entry %q is shadowed by earlier entry %q: declare the more specific keyword first",
					e.Keyword, entries[j].Keyword)
			}
		}
	}

	copied := make([]SymbolEntry, len(entries))
	copy(copied, entries)
	return &Registry{entries: copied}, nil
}

// MustNewRegistry is NewRegistry for static tables; it panics on invalid input.
func MustNewRegistry(entries []SymbolEntry) *Registry {
	r, err := NewRegistry(entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Entries returns a copy of the registry's ordered entries.
func (r *Registry) Entries() []SymbolEntry {
	out := make([]SymbolEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Resolve maps an ingredient name to its two-letter code. It never fails:
// when no keyword matches, the code is derived from the first two letters
// of the normalized name, rendered as (upper, lower), e.g. "mystery" -> "My".
//
// An empty name resolves to the first-declared entry. The historical match
// rule treats the empty string as contained in every keyword, so the first
// entry always won; we keep that behavior as a documented quirk rather than
// an error.
func (r *Registry) Resolve(ingredientName string) string {
	name := strings.ToLower(strings.TrimSpace(ingredientName))

	if name == "" {
		return r.entries[0].Code
	}

	for _, e := range r.entries {
		if strings.Contains(name, e.Keyword) {
			return e.Code
		}
	}

	return fallbackCode(name)
}

// fallbackCode derives a two-letter code from the name itself.
// Single-letter names duplicate the letter so the code stays two runes.
func fallbackCode(name string) string {
	runes := []rune(name)
	first := unicode.ToUpper(runes[0])
	second := first
	if len(runes) > 1 {
		second = runes[1]
	}
	return string(first) + string(unicode.ToLower(second))
}

// DefaultRegistry returns the built-in cocktail symbol table.
// Ordering matters: multi-word and otherwise specific keywords come before
// the generic keywords they contain.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

var defaultRegistry = MustNewRegistry([]SymbolEntry{
	// Specific phrases first.
	{"green chartreuse", "Gc"},
	{"yellow chartreuse", "Yc"},
	{"st. germain", "Sg"},
	{"st germain", "Sg"},
	{"sweet vermouth", "Sv"},
	{"dry vermouth", "Dv"},
	{"blanc vermouth", "Bv"},
	{"lillet", "Lt"},
	{"cocchi americano", "Ca"},
	{"maraschino", "Mq"},
	{"orange bitters", "Ob"},
	{"angostura", "An"},
	{"peychaud", "Py"},
	{"demerara syrup", "Dm"},
	{"simple syrup", "Sy"},
	{"honey syrup", "Hs"},
	{"orgeat", "Oj"},
	{"grenadine", "Gd"},
	{"falernum", "Fl"},
	{"triple sec", "Ts"},
	{"cointreau", "Ct"},
	{"grand marnier", "Gm"},
	{"curacao", "Cu"},
	{"creme de violette", "Cv"},
	{"creme de cacao", "Cc"},
	{"creme de menthe", "Cm"},
	{"creme de cassis", "Cs"},
	{"benedictine", "Bd"},
	{"drambuie", "Dr"},
	{"amaretto", "At"},
	{"aperol", "Ap"},
	{"campari", "Cp"},
	{"cynar", "Cy"},
	{"fernet", "Fn"},
	{"absinthe", "Ax"},
	{"elderflower", "Ef"},
	{"irish whiskey", "Iw"},
	{"bourbon", "Bb"},
	{"scotch", "St"},
	{"rye", "Ry"},
	{"mezcal", "Mz"},
	{"tequila", "Tq"},
	{"cachaca", "Cq"},
	{"pisco", "Ps"},
	{"cognac", "Cg"},
	{"armagnac", "Ar"},
	{"calvados", "Cd"},
	{"applejack", "Aj"},
	{"brandy", "Br"},
	{"ginger beer", "Gb"},
	{"ginger", "Gg"},
	{"sloe gin", "Sn"},
	{"gin", "Gn"},
	{"vodka", "Vk"},
	{"rum", "Rm"},
	{"champagne", "Cn"},
	{"prosecco", "Pr"},
	{"sparkling wine", "Sw"},
	{"red wine", "Rw"},
	{"white wine", "Ww"},
	{"sherry", "Sh"},
	{"port", "Po"},
	{"madeira", "Md"},
	{"egg white", "Ew"},
	{"egg yolk", "Ey"},
	{"egg", "Eg"},
	{"heavy cream", "Hv"},
	{"coconut cream", "Kc"},
	{"cream", "Ce"},
	{"milk", "Mk"},
	{"grapefruit", "Gf"},
	{"pineapple", "Pn"},
	{"passion fruit", "Pf"},
	{"cranberry", "Cb"},
	{"pomegranate", "Pm"},
	{"lime", "Li"},
	{"lemon", "Le"},
	{"orange", "Or"},
	{"apple", "Al"},
	{"peach", "Pe"},
	{"mint", "Mi"},
	{"basil", "Ba"},
	{"cucumber", "Ku"},
	{"tomato", "To"},
	{"espresso", "Es"},
	{"coffee", "Cf"},
	{"cola", "Ko"},
	{"tonic", "Tn"},
	{"soda", "So"},
	{"honey", "Ho"},
	{"agave", "Ag"},
	{"maple", "Mp"},
	{"sugar", "Su"},
	{"salt", "Sa"},
	{"amaro", "Am"},
	{"vermouth", "Ve"},
	{"chartreuse", "Ch"},
	{"whiskey", "Wh"},
	{"whisky", "Wh"},
	{"syrup", "Sr"},
	{"bitters", "Bi"},
	{"water", "Wa"},
})
