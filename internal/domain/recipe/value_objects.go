package recipe

import (
	"errors"

	"github.com/google/uuid"
)

// Value Objects - Immutable objects that describe aspects of the domain

// Ingredient represents one line of a cocktail recipe
type Ingredient struct {
	ID       uuid.UUID
	Name     string
	Amount   float64
	Unit     string
	Optional bool
	Notes    string
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return errors.New("ingredient name is required")
	}
	if i.Amount < 0 {
		return errors.New("ingredient amount cannot be negative")
	}
	return nil
}

// Step represents one preparation instruction
type Step struct {
	Number      int
	Description string
}

// Validate validates the step
func (s Step) Validate() error {
	if s.Description == "" {
		return errors.New("step description is required")
	}
	if len(s.Description) > 1000 {
		return errors.New("step description too long")
	}
	return nil
}

// GlassType represents the serving glass
type GlassType string

const (
	GlassCoupe     GlassType = "coupe"
	GlassRocks     GlassType = "rocks"
	GlassHighball  GlassType = "highball"
	GlassMartini   GlassType = "martini"
	GlassCollins   GlassType = "collins"
	GlassCopperMug GlassType = "copper_mug"
	GlassFlute     GlassType = "flute"
	GlassTiki      GlassType = "tiki"
	GlassShot      GlassType = "shot"
	GlassOther     GlassType = "other"
)

// MixMethod represents how the drink is prepared
type MixMethod string

const (
	MethodShaken  MixMethod = "shaken"
	MethodStirred MixMethod = "stirred"
	MethodBuilt   MixMethod = "built"
	MethodBlended MixMethod = "blended"
	MethodThrown  MixMethod = "thrown"
)

// Status represents the lifecycle state of a recipe
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)
