package handler

import (
	"net/http"

	"github.com/subtrackr/backend/internal/domain"
)

// CategoryHandler serves the static category catalog.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, domain.CategoryOptions())
}
