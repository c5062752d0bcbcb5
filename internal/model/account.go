package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Balances go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the wire format for account creation dates.
const DateLayout = "2006-01-02"

// AccountType classifies the service tier of an account.
type AccountType string

const (
	AccountTypeBasic    AccountType = "basic"
	AccountTypeStandard AccountType = "standard"
	AccountTypePremium  AccountType = "premium"
)

// Status marks whether an account is currently in use.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Account represents a managed customer account.
type Account struct {
	ID          int             `json:"id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email"`
	AccountType AccountType     `json:"account_type"`
	Department  string          `json:"department"`
	Status      Status          `json:"status"`
	CreatedDate string          `json:"created_date"`
	Balance     decimal.Decimal `json:"balance"`
}

// FullName returns the display name used in notices.
func (a Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

// AccountInput carries the raw form fields of a create or edit request
// before validation. All fields are the untyped strings the client
// submitted; Status is only consulted on edit.
type AccountInput struct {
	FirstName   string
	LastName    string
	Email       string
	AccountType string
	Department  string
	Status      string
	Balance     string
}

// Normalize trims surrounding whitespace and lower-cases the email,
// matching how the fields are stored.
func (in AccountInput) Normalize() AccountInput {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Department = strings.TrimSpace(in.Department)
	return in
}

// ValidAccountType reports whether s is one of the known account types.
func ValidAccountType(s string) bool {
	switch AccountType(s) {
	case AccountTypeBasic, AccountTypeStandard, AccountTypePremium:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusInactive:
		return true
	}
	return false
}
