package handlers

import (
	"net/http"

	"github.com/alchemix/barkeep/internal/ports/inbound"
	"github.com/alchemix/barkeep/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecipeHandlers handles recipe REST API requests
type RecipeHandlers struct {
	recipeService inbound.RecipeService
	logger        *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		recipeService: recipeService,
		logger:        logger,
	}
}

// ingredientRequest is one ingredient line in a request body
type ingredientRequest struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Optional bool    `json:"optional"`
	Notes    string  `json:"notes"`
}

// createRecipeRequest is the POST /recipes body
type createRecipeRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Ingredients []ingredientRequest `json:"ingredients"`
	Steps       []string            `json:"steps"`
	Glass       string              `json:"glass"`
	Method      string              `json:"method"`
	Garnish     string              `json:"garnish"`
	Tags        []string            `json:"tags"`
}

// updateRecipeRequest is the PUT /recipes/{id} body; nil fields are unchanged
type updateRecipeRequest struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Ingredients *[]ingredientRequest `json:"ingredients"`
	Garnish     *string              `json:"garnish"`
	Tags        *[]string            `json:"tags"`
}

// ListRecipes handles GET /api/v1/recipes
func (h *RecipeHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recipes, err := h.recipeService.ListRecipes(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: recipes})
}

// CreateRecipe handles POST /api/v1/recipes
func (h *RecipeHandlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req createRecipeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	cmd := inbound.CreateRecipeCommand{
		Name:        req.Name,
		Description: req.Description,
		AuthorID:    userID,
		Ingredients: toIngredientCommands(req.Ingredients),
		Steps:       req.Steps,
		Glass:       req.Glass,
		Method:      req.Method,
		Garnish:     req.Garnish,
		Tags:        req.Tags,
	}

	recipe, err := h.recipeService.CreateRecipe(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: recipe})
}

// GetRecipe handles GET /api/v1/recipes/{id}
func (h *RecipeHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recipe, err := h.recipeService.GetRecipeByID(r.Context(), recipeID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: recipe})
}

// UpdateRecipe handles PUT /api/v1/recipes/{id}
func (h *RecipeHandlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recipeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req updateRecipeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	cmd := inbound.UpdateRecipeCommand{
		RecipeID:    recipeID,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Garnish:     req.Garnish,
		Tags:        req.Tags,
	}
	if req.Ingredients != nil {
		ingredients := toIngredientCommands(*req.Ingredients)
		cmd.Ingredients = &ingredients
	}

	recipe, err := h.recipeService.UpdateRecipe(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: recipe})
}

// PublishRecipe handles POST /api/v1/recipes/{id}/publish
func (h *RecipeHandlers) PublishRecipe(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recipeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.recipeService.PublishRecipe(r.Context(), recipeID, userID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Recipe published"})
}

// DeleteRecipe handles DELETE /api/v1/recipes/{id}
func (h *RecipeHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recipeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.recipeService.DeleteRecipe(r.Context(), recipeID, userID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Recipe deleted"})
}

// GetFormula handles GET /api/v1/recipes/{id}/formula
func (h *RecipeHandlers) GetFormula(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	compiled, err := h.recipeService.CompileFormula(r.Context(), recipeID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"recipe_id": recipeID,
			"formula":   compiled,
		},
	})
}

// toIngredientCommands maps request ingredients to command ingredients
func toIngredientCommands(ingredients []ingredientRequest) []inbound.IngredientCommand {
	cmds := make([]inbound.IngredientCommand, 0, len(ingredients))
	for _, ing := range ingredients {
		cmds = append(cmds, inbound.IngredientCommand{
			Name:     ing.Name,
			Amount:   ing.Amount,
			Unit:     ing.Unit,
			Optional: ing.Optional,
			Notes:    ing.Notes,
		})
	}
	return cmds
}

// pathID parses a UUID path parameter
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, errors.NewBadRequestError("Invalid " + name + " parameter")
	}
	return id, nil
}
