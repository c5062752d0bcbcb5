package handler

import (
	"encoding/json"
	"net/http"

	"github.com/accountpro/accountpro/internal/model"
	"github.com/accountpro/accountpro/internal/repository"
	"github.com/accountpro/accountpro/internal/service"
)

// APIHandler serves the read-only JSON endpoints under /api.
type APIHandler struct {
	service *service.AccountService
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(svc *service.AccountService) *APIHandler {
	return &APIHandler{service: svc}
}

// ListAccounts handles GET /api/accounts.
func (h *APIHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := h.service.List(repository.Filter{})
	writeJSON(w, http.StatusOK, model.AccountListResponse{
		Success:  true,
		Count:    len(accounts),
		Accounts: accounts,
	})
}

// GetAccount handles GET /api/account/{id}.
func (h *APIHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.Get(accountID(r))
	if err != nil {
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{
			Success: false,
			Message: "Account not found",
		})
		return
	}
	writeJSON(w, http.StatusOK, model.AccountResponse{Success: true, Account: account})
}

// Stats handles GET /api/stats.
func (h *APIHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.StatsResponse{Success: true, Stats: h.service.Stats()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
