package handler

import (
	"net/http"
	"time"

	"github.com/accountpro/accountpro/internal/model"
	"github.com/accountpro/accountpro/internal/service"
)

// HealthHandler serves GET /health. With no external dependencies the
// process is healthy whenever it can answer at all.
type HealthHandler struct {
	service *service.AccountService
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(svc *service.AccountService) *HealthHandler {
	return &HealthHandler{service: svc}
}

// Health reports the current status and account count.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().Format(time.RFC3339),
		AccountsCount: h.service.Count(),
	})
}
