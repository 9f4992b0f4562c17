package recipe

import "errors"

// Domain errors for the recipe aggregate
var (
	ErrNameTooShort            = errors.New("recipe name must be at least 2 characters")
	ErrNameTooLong             = errors.New("recipe name cannot exceed 200 characters")
	ErrDescriptionTooLong      = errors.New("recipe description cannot exceed 2000 characters")
	ErrNoIngredients           = errors.New("recipe must have at least one ingredient")
	ErrNoSteps                 = errors.New("recipe must have at least one step")
	ErrInvalidStatusTransition = errors.New("invalid recipe status transition")
)
