package handler

import (
	"log"
	"net/http"

	"github.com/subtrackr/backend/internal/repository"
)

// AdminHandler serves system-wide metrics (admin only).
type AdminHandler struct {
	db repository.Querier
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db repository.Querier) *AdminHandler {
	return &AdminHandler{db: db}
}

// GetStats handles GET /admin/stats.
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	var usersCount, subsCount, activeCount int

	if err := h.db.QueryRow(r.Context(), "SELECT COUNT(*) FROM users").Scan(&usersCount); err != nil {
		log.Printf("failed to count users: %v", err)
	}
	if err := h.db.QueryRow(r.Context(), "SELECT COUNT(*) FROM subscriptions").Scan(&subsCount); err != nil {
		log.Printf("failed to count subscriptions: %v", err)
	}
	if err := h.db.QueryRow(r.Context(), "SELECT COUNT(*) FROM subscriptions WHERE status = 'active'").Scan(&activeCount); err != nil {
		log.Printf("failed to count active subscriptions: %v", err)
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"users":                usersCount,
		"subscriptions":        subsCount,
		"active_subscriptions": activeCount,
	})
}
