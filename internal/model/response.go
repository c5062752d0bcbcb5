package model

import "github.com/shopspring/decimal"

// Stats summarizes the current account population for the dashboard
// and the stats API.
type Stats struct {
	TotalAccounts    int             `json:"total_accounts"`
	ActiveAccounts   int             `json:"active_accounts"`
	InactiveAccounts int             `json:"inactive_accounts"`
	TotalBalance     decimal.Decimal `json:"total_balance"`
	AverageBalance   decimal.Decimal `json:"average_balance"`
}

// AccountListResponse is the envelope for GET /api/accounts.
type AccountListResponse struct {
	Success  bool      `json:"success"`
	Count    int       `json:"count"`
	Accounts []Account `json:"accounts"`
}

// AccountResponse is the envelope for GET /api/account/{id}.
type AccountResponse struct {
	Success bool    `json:"success"`
	Account Account `json:"account"`
}

// StatsResponse is the envelope for GET /api/stats.
type StatsResponse struct {
	Success bool  `json:"success"`
	Stats   Stats `json:"stats"`
}

// ErrorResponse is the envelope for API failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	AccountsCount int    `json:"accounts_count"`
}
