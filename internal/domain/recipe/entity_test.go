package recipe

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for the Recipe aggregate
type RecipeTestSuite struct {
	suite.Suite
	authorID uuid.UUID
}

func (suite *RecipeTestSuite) SetupTest() {
	suite.authorID = uuid.New()
}

func (suite *RecipeTestSuite) newDraft() *Recipe {
	r, err := NewRecipe("Manhattan", "Classic rye cocktail", suite.authorID)
	require.NoError(suite.T(), err)
	return r
}

func (suite *RecipeTestSuite) TestCreation() {
	suite.Run("ValidInputs_ShouldCreateDraft", func() {
		r := suite.newDraft()

		assert.NotEqual(suite.T(), uuid.Nil, r.ID())
		assert.Equal(suite.T(), "Manhattan", r.Name())
		assert.Equal(suite.T(), suite.authorID, r.AuthorID())
		assert.Equal(suite.T(), StatusDraft, r.Status())
		assert.Equal(suite.T(), int64(1), r.Version())
	})

	suite.Run("ValidInputs_ShouldRaiseCreatedEvent", func() {
		r := suite.newDraft()

		events := r.Events()
		require.Len(suite.T(), events, 1)
		created, ok := events[0].(RecipeCreatedEvent)
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), r.ID(), created.RecipeID)

		// Events drain on read.
		assert.Empty(suite.T(), r.Events())
	})

	suite.Run("ShortName_ShouldFail", func() {
		_, err := NewRecipe("M", "", suite.authorID)
		assert.ErrorIs(suite.T(), err, ErrNameTooShort)
	})

	suite.Run("LongName_ShouldFail", func() {
		_, err := NewRecipe(strings.Repeat("x", 201), "", suite.authorID)
		assert.ErrorIs(suite.T(), err, ErrNameTooLong)
	})

	suite.Run("LongDescription_ShouldFail", func() {
		_, err := NewRecipe("Manhattan", strings.Repeat("x", 2001), suite.authorID)
		assert.ErrorIs(suite.T(), err, ErrDescriptionTooLong)
	})
}

func (suite *RecipeTestSuite) TestMutation() {
	suite.Run("Rename_ShouldBumpVersionAndRaiseEvent", func() {
		r := suite.newDraft()
		r.Events() // drain creation event

		require.NoError(suite.T(), r.Rename("Perfect Manhattan"))

		assert.Equal(suite.T(), "Perfect Manhattan", r.Name())
		assert.Equal(suite.T(), int64(2), r.Version())

		events := r.Events()
		require.Len(suite.T(), events, 1)
		renamed, ok := events[0].(RecipeRenamedEvent)
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), "Manhattan", renamed.OldName)
		assert.Equal(suite.T(), "Perfect Manhattan", renamed.NewName)
	})

	suite.Run("AddIngredient_ShouldAssignIDAndPreserveOrder", func() {
		r := suite.newDraft()

		require.NoError(suite.T(), r.AddIngredient(Ingredient{Name: "Rye Whiskey", Amount: 2, Unit: "oz"}))
		require.NoError(suite.T(), r.AddIngredient(Ingredient{Name: "Sweet Vermouth", Amount: 1, Unit: "oz"}))

		ingredients := r.Ingredients()
		require.Len(suite.T(), ingredients, 2)
		assert.Equal(suite.T(), "Rye Whiskey", ingredients[0].Name)
		assert.Equal(suite.T(), "Sweet Vermouth", ingredients[1].Name)
		assert.NotEqual(suite.T(), uuid.Nil, ingredients[0].ID)
	})

	suite.Run("AddIngredient_InvalidLine_ShouldFail", func() {
		r := suite.newDraft()

		assert.Error(suite.T(), r.AddIngredient(Ingredient{Name: "", Amount: 1}))
		assert.Error(suite.T(), r.AddIngredient(Ingredient{Name: "Gin", Amount: -1}))
	})

	suite.Run("AddStep_ShouldNumberSequentially", func() {
		r := suite.newDraft()

		require.NoError(suite.T(), r.AddStep(Step{Description: "Stir with ice."}))
		require.NoError(suite.T(), r.AddStep(Step{Description: "Strain into a coupe."}))

		steps := r.Steps()
		require.Len(suite.T(), steps, 2)
		assert.Equal(suite.T(), 1, steps[0].Number)
		assert.Equal(suite.T(), 2, steps[1].Number)
	})

	suite.Run("ReplaceIngredients_ShouldSwapFullList", func() {
		r := suite.newDraft()
		require.NoError(suite.T(), r.AddIngredient(Ingredient{Name: "Rye Whiskey", Amount: 2, Unit: "oz"}))

		require.NoError(suite.T(), r.ReplaceIngredients([]Ingredient{
			{Name: "Bourbon", Amount: 2, Unit: "oz"},
		}))

		ingredients := r.Ingredients()
		require.Len(suite.T(), ingredients, 1)
		assert.Equal(suite.T(), "Bourbon", ingredients[0].Name)
	})
}

func (suite *RecipeTestSuite) TestLifecycle() {
	suite.Run("PublishCompleteDraft_ShouldSucceed", func() {
		r := suite.newDraft()
		require.NoError(suite.T(), r.AddIngredient(Ingredient{Name: "Rye Whiskey", Amount: 2, Unit: "oz"}))
		require.NoError(suite.T(), r.AddStep(Step{Description: "Stir and strain."}))

		require.NoError(suite.T(), r.Publish())

		assert.Equal(suite.T(), StatusPublished, r.Status())
		require.NotNil(suite.T(), r.PublishedAt())
	})

	suite.Run("PublishWithoutIngredients_ShouldFail", func() {
		r := suite.newDraft()
		require.NoError(suite.T(), r.AddStep(Step{Description: "Stir and strain."}))

		assert.ErrorIs(suite.T(), r.Publish(), ErrNoIngredients)
	})

	suite.Run("PublishWithoutSteps_ShouldFail", func() {
		r := suite.newDraft()
		require.NoError(suite.T(), r.AddIngredient(Ingredient{Name: "Rye Whiskey", Amount: 2, Unit: "oz"}))

		assert.ErrorIs(suite.T(), r.Publish(), ErrNoSteps)
	})

	suite.Run("PublishTwice_ShouldFail", func() {
		r := suite.newDraft()
		require.NoError(suite.T(), r.AddIngredient(Ingredient{Name: "Rye Whiskey", Amount: 2, Unit: "oz"}))
		require.NoError(suite.T(), r.AddStep(Step{Description: "Stir and strain."}))
		require.NoError(suite.T(), r.Publish())

		assert.ErrorIs(suite.T(), r.Publish(), ErrInvalidStatusTransition)
	})

	suite.Run("ArchivePublished_ShouldSucceed", func() {
		r := suite.newDraft()
		require.NoError(suite.T(), r.AddIngredient(Ingredient{Name: "Rye Whiskey", Amount: 2, Unit: "oz"}))
		require.NoError(suite.T(), r.AddStep(Step{Description: "Stir and strain."}))
		require.NoError(suite.T(), r.Publish())

		require.NoError(suite.T(), r.Archive())
		assert.Equal(suite.T(), StatusArchived, r.Status())
	})

	suite.Run("ArchiveDraft_ShouldFail", func() {
		r := suite.newDraft()
		assert.ErrorIs(suite.T(), r.Archive(), ErrInvalidStatusTransition)
	})
}

func (suite *RecipeTestSuite) TestRestore() {
	suite.Run("Restore_ShouldRebuildWithoutEvents", func() {
		original := suite.newDraft()
		require.NoError(suite.T(), original.AddIngredient(Ingredient{Name: "Rye Whiskey", Amount: 2, Unit: "oz"}))

		restored := Restore(
			original.ID(),
			original.Version(),
			original.Name(),
			original.Description(),
			original.AuthorID(),
			original.Ingredients(),
			original.Steps(),
			original.Glass(),
			original.Method(),
			original.Garnish(),
			original.Tags(),
			original.Status(),
			original.PublishedAt(),
			original.CreatedAt(),
			original.UpdatedAt(),
		)

		assert.Equal(suite.T(), original.ID(), restored.ID())
		assert.Equal(suite.T(), original.Version(), restored.Version())
		assert.Equal(suite.T(), original.Ingredients(), restored.Ingredients())
		assert.Empty(suite.T(), restored.Events())
	})
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
