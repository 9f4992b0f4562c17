package handlers

import (
	"net/http"

	"github.com/alchemix/barkeep/internal/ports/inbound"
	"go.uber.org/zap"
)

// AssistantHandlers handles assistant message linking requests
type AssistantHandlers struct {
	recipeService inbound.RecipeService
	logger        *zap.Logger
}

// NewAssistantHandlers creates a new assistant handlers instance
func NewAssistantHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *AssistantHandlers {
	return &AssistantHandlers{
		recipeService: recipeService,
		logger:        logger,
	}
}

// linkMessageRequest is the POST /assistant/link body
type linkMessageRequest struct {
	Message string   `json:"message"`
	Hints   []string `json:"hints"`
}

// LinkMessage handles POST /api/v1/assistant/link. It marks mentions of the
// caller's recipe names in an assistant message so clients can render them
// as links.
func (h *AssistantHandlers) LinkMessage(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req linkMessageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	linked, err := h.recipeService.LinkAssistantMessage(r.Context(), inbound.LinkMessageCommand{
		UserID:  userID,
		Message: req.Message,
		Hints:   req.Hints,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: linked})
}
