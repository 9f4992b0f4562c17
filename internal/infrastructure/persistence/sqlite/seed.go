package sqlite

import (
	"context"

	"github.com/alchemix/barkeep/internal/domain/recipe"
	gormRepo "github.com/alchemix/barkeep/internal/infrastructure/persistence/gorm"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DemoUserID owns the seeded starter recipes.
var DemoUserID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

type seedRecipe struct {
	name        string
	description string
	ingredients []recipe.Ingredient
	steps       []string
	glass       recipe.GlassType
	method      recipe.MixMethod
	garnish     string
}

var starterRecipes = []seedRecipe{
	{
		name:        "Manhattan",
		description: "The classic rye stirred cocktail.",
		ingredients: []recipe.Ingredient{
			{Name: "Rye Whiskey", Amount: 2, Unit: "oz"},
			{Name: "Sweet Vermouth", Amount: 1, Unit: "oz"},
			{Name: "Angostura Bitters", Amount: 2, Unit: "dash"},
			{Name: "Maraschino Cherry", Amount: 1, Unit: "piece"},
		},
		steps: []string{
			"Stir the rye, vermouth and bitters with ice until well chilled.",
			"Strain into a chilled coupe and garnish with the cherry.",
		},
		glass:   recipe.GlassCoupe,
		method:  recipe.MethodStirred,
		garnish: "Maraschino cherry",
	},
	{
		name:        "Moscow Mule",
		description: "Vodka, ginger beer and lime in a copper mug.",
		ingredients: []recipe.Ingredient{
			{Name: "Vodka", Amount: 2, Unit: "oz"},
			{Name: "Lime Juice", Amount: 0.5, Unit: "oz"},
			{Name: "Ginger Beer", Amount: 4, Unit: "oz"},
			{Name: "Lime Wheel", Amount: 1, Unit: "piece"},
		},
		steps: []string{
			"Build the vodka and lime juice in a copper mug over ice.",
			"Top with ginger beer and garnish with the lime wheel.",
		},
		glass:   recipe.GlassCopperMug,
		method:  recipe.MethodBuilt,
		garnish: "Lime wheel",
	},
	{
		name:        "Dark 'n' Stormy",
		description: "Dark rum floated over ginger beer.",
		ingredients: []recipe.Ingredient{
			{Name: "Dark Rum", Amount: 2, Unit: "oz"},
			{Name: "Ginger Beer", Amount: 4, Unit: "oz"},
			{Name: "Lime Wedge", Amount: 1, Unit: "piece"},
		},
		steps: []string{
			"Fill a highball with ice and pour in the ginger beer.",
			"Float the rum on top and garnish with the lime wedge.",
		},
		glass:   recipe.GlassHighball,
		method:  recipe.MethodBuilt,
		garnish: "Lime wedge",
	},
	{
		name:        "Whiskey Sour",
		description: "Bourbon, lemon and sugar, optionally silky with egg white.",
		ingredients: []recipe.Ingredient{
			{Name: "Bourbon", Amount: 2, Unit: "oz"},
			{Name: "Lemon Juice", Amount: 0.75, Unit: "oz"},
			{Name: "Simple Syrup", Amount: 0.75, Unit: "oz"},
			{Name: "Egg White", Amount: 1, Unit: "egg", Optional: true},
		},
		steps: []string{
			"Dry shake all ingredients, then shake again with ice.",
			"Strain into a rocks glass over fresh ice.",
		},
		glass:  recipe.GlassRocks,
		method: recipe.MethodShaken,
	},
}

// SeedDatabase populates the database with a starter recipe set.
// It is a no-op when recipes already exist.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&gormRepo.RecipeModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	repo := gormRepo.NewRecipeRepository(db)
	ctx := context.Background()

	for _, seed := range starterRecipes {
		entity, err := recipe.NewRecipe(seed.name, seed.description, DemoUserID)
		if err != nil {
			return err
		}
		for _, ing := range seed.ingredients {
			if err := entity.AddIngredient(ing); err != nil {
				return err
			}
		}
		for _, step := range seed.steps {
			if err := entity.AddStep(recipe.Step{Description: step}); err != nil {
				return err
			}
		}
		entity.SetGlass(seed.glass)
		entity.SetMethod(seed.method)
		if seed.garnish != "" {
			entity.SetGarnish(seed.garnish)
		}
		if err := entity.Publish(); err != nil {
			return err
		}
		if err := repo.Save(ctx, entity); err != nil {
			return err
		}
	}

	return nil
}
