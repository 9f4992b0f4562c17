package handlers

import (
	"net/http"

	"github.com/alchemix/barkeep/internal/ports/inbound"
	"go.uber.org/zap"
)

// InventoryHandlers handles bar inventory REST API requests
type InventoryHandlers struct {
	inventoryService inbound.InventoryService
	logger           *zap.Logger
}

// NewInventoryHandlers creates a new inventory handlers instance
func NewInventoryHandlers(inventoryService inbound.InventoryService, logger *zap.Logger) *InventoryHandlers {
	return &InventoryHandlers{
		inventoryService: inventoryService,
		logger:           logger,
	}
}

// addItemRequest is the POST /bar/items body
type addItemRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Volume   float64 `json:"volume"`
	Notes    string  `json:"notes"`
}

// ListItems handles GET /api/v1/bar/items
func (h *InventoryHandlers) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	items, err := h.inventoryService.ListItems(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: items})
}

// AddItem handles POST /api/v1/bar/items
func (h *InventoryHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req addItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	item, err := h.inventoryService.AddItem(r.Context(), inbound.AddItemCommand{
		OwnerID:  userID,
		Name:     req.Name,
		Category: req.Category,
		Volume:   req.Volume,
		Notes:    req.Notes,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{Success: true, Data: item})
}

// RemoveItem handles DELETE /api/v1/bar/items/{id}
func (h *InventoryHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	itemID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.inventoryService.RemoveItem(r.Context(), itemID, userID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Message: "Item removed"})
}

// MixableRecipes handles GET /api/v1/bar/mixable
func (h *InventoryHandlers) MixableRecipes(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recipes, err := h.inventoryService.MixableRecipes(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{Success: true, Data: recipes})
}
