package formula

import (
	"fmt"
	"strings"
)

// UnitClass groups measurement units into rendering families.
type UnitClass int

const (
	// ClassLiquid covers poured volumes: oz, ml. Two decimals by default.
	ClassLiquid UnitClass = iota
	// ClassWholeCount covers countable units: dash, drop, piece, sprig,
	// slice, wedge, egg. No decimals by default.
	ClassWholeCount
	// ClassSpoon covers tsp and tbsp. Two decimals by default.
	ClassSpoon
)

// unitInfo describes how one unit spelling renders.
type unitInfo struct {
	class   UnitClass
	display string
}

// unitTable maps lowercase unit spellings to their class and canonical
// display form. Built once; read-only afterwards.
var unitTable = map[string]unitInfo{
	"oz":     {ClassLiquid, "oz"},
	"ounce":  {ClassLiquid, "oz"},
	"ounces": {ClassLiquid, "oz"},
	"ml":     {ClassLiquid, "ml"},

	"dash":   {ClassWholeCount, "dash"},
	"dashes": {ClassWholeCount, "dash"},
	"drop":   {ClassWholeCount, "drop"},
	"drops":  {ClassWholeCount, "drop"},
	"piece":  {ClassWholeCount, "piece"},
	"pieces": {ClassWholeCount, "piece"},
	"sprig":  {ClassWholeCount, "sprig"},
	"sprigs": {ClassWholeCount, "sprig"},
	"slice":  {ClassWholeCount, "slice"},
	"slices": {ClassWholeCount, "slice"},
	"wedge":  {ClassWholeCount, "wedge"},
	"wedges": {ClassWholeCount, "wedge"},
	"egg":    {ClassWholeCount, "egg"},
	"eggs":   {ClassWholeCount, "egg"},

	"tsp":         {ClassSpoon, "tsp"},
	"teaspoon":    {ClassSpoon, "tsp"},
	"teaspoons":   {ClassSpoon, "tsp"},
	"tbsp":        {ClassSpoon, "tbsp"},
	"tablespoon":  {ClassSpoon, "tbsp"},
	"tablespoons": {ClassSpoon, "tbsp"},
}

// defaultDecimals returns the class default decimal count.
func (c UnitClass) defaultDecimals() int {
	if c == ClassWholeCount {
		return 0
	}
	return 2
}

// FormatOptions override the unit class rendering defaults.
// Nil fields keep the class default.
type FormatOptions struct {
	// Decimals overrides the number of decimal places.
	Decimals *int
	// LeadingDigits overrides the zero-padded integer width.
	LeadingDigits *int
	// ShowDecimals forces (true) or suppresses (false) decimal rendering
	// regardless of the class default.
	ShowDecimals *bool
}

// Format renders an amount and unit as a padded display string:
// Format(1.5, "oz") == "01.50 oz", Format(3, "dash") == "03 dash".
// Unrecognized units pass through unnormalized with liquid-class defaults.
func Format(amount float64, unit string, opts ...FormatOptions) string {
	info, known := unitTable[strings.ToLower(strings.TrimSpace(unit))]
	if !known {
		info = unitInfo{ClassLiquid, unit}
	}

	decimals := info.class.defaultDecimals()
	leading := 2

	if len(opts) > 0 {
		o := opts[0]
		if o.Decimals != nil {
			decimals = *o.Decimals
		}
		if o.LeadingDigits != nil {
			leading = *o.LeadingDigits
		}
		if o.ShowDecimals != nil {
			if !*o.ShowDecimals {
				decimals = 0
			} else if decimals == 0 {
				decimals = 2
			}
		}
	}

	width := leading
	if decimals > 0 {
		width += decimals + 1
	}

	return fmt.Sprintf("%0*.*f %s", width, decimals, amount, info.display)
}

// ClassOf returns the rendering class for a unit spelling, defaulting to
// ClassLiquid for unrecognized units.
func ClassOf(unit string) UnitClass {
	if info, ok := unitTable[strings.ToLower(strings.TrimSpace(unit))]; ok {
		return info.class
	}
	return ClassLiquid
}
