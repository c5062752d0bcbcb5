package repository

import (
	"github.com/shopspring/decimal"

	"github.com/accountpro/accountpro/internal/model"
)

// SeedAccounts returns the demo records loaded on every process start.
// There is no persistence; a restart always resets to these three.
func SeedAccounts() []model.Account {
	return []model.Account{
		{
			ID:          1,
			FirstName:   "John",
			LastName:    "Doe",
			Email:       "john.doe@example.com",
			AccountType: model.AccountTypePremium,
			Department:  "Sales",
			Status:      model.StatusActive,
			CreatedDate: "2024-01-15",
			Balance:     decimal.NewFromFloat(15750.00),
		},
		{
			ID:          2,
			FirstName:   "Sarah",
			LastName:    "Johnson",
			Email:       "sarah.j@example.com",
			AccountType: model.AccountTypeStandard,
			Department:  "Marketing",
			Status:      model.StatusActive,
			CreatedDate: "2024-02-20",
			Balance:     decimal.NewFromFloat(8250.00),
		},
		{
			ID:          3,
			FirstName:   "Mike",
			LastName:    "Chen",
			Email:       "mike.chen@example.com",
			AccountType: model.AccountTypeBasic,
			Department:  "Support",
			Status:      model.StatusInactive,
			CreatedDate: "2024-03-10",
			Balance:     decimal.NewFromFloat(2100.00),
		},
	}
}
