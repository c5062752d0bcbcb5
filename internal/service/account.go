package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/accountpro/accountpro/internal/model"
	"github.com/accountpro/accountpro/internal/repository"
)

// AccountService validates requests and orchestrates the account store.
type AccountService struct {
	repo *repository.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(repo *repository.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// ValidationError carries every check a create or edit request failed,
// in the order the checks run.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Create validates the input and appends a new active account. On
// failure it returns a *ValidationError listing every failed check.
func (s *AccountService) Create(in model.AccountInput) (model.Account, error) {
	in = in.Normalize()
	balance, msgs := s.validate(in, false, 0)
	if len(msgs) > 0 {
		return model.Account{}, &ValidationError{Messages: msgs}
	}

	return s.repo.Create(model.Account{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		AccountType: model.AccountType(in.AccountType),
		Department:  in.Department,
		Balance:     balance,
	}), nil
}

// Update validates the input and replaces every mutable field on the
// account. Returns repository.ErrAccountNotFound for an unknown id and
// *ValidationError for bad input.
func (s *AccountService) Update(id int, in model.AccountInput) (model.Account, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		return model.Account{}, err
	}

	in = in.Normalize()
	balance, msgs := s.validate(in, true, id)
	if len(msgs) > 0 {
		return model.Account{}, &ValidationError{Messages: msgs}
	}

	return s.repo.Update(id, model.Account{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		AccountType: model.AccountType(in.AccountType),
		Department:  in.Department,
		Status:      model.Status(in.Status),
		Balance:     balance,
	})
}

// Get returns the account with the given id.
func (s *AccountService) Get(id int) (model.Account, error) {
	return s.repo.FindByID(id)
}

// Delete removes the account and returns it, for the notice text.
func (s *AccountService) Delete(id int) (model.Account, error) {
	return s.repo.Delete(id)
}

// List returns accounts matching the filter, in insertion order.
func (s *AccountService) List(f repository.Filter) []model.Account {
	return s.repo.List(f)
}

// Count returns the number of stored accounts.
func (s *AccountService) Count() int {
	return s.repo.Count()
}

// Recent returns up to n accounts ordered by creation date, newest
// first. Accounts sharing a date keep their insertion order.
func (s *AccountService) Recent(n int) []model.Account {
	accounts := s.repo.List(repository.Filter{})
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].CreatedDate > accounts[j].CreatedDate
	})
	if len(accounts) > n {
		accounts = accounts[:n]
	}
	return accounts
}

// Stats recomputes the dashboard summary from the current store
// contents. The average is rounded to two decimal places and is zero
// for an empty store.
func (s *AccountService) Stats() model.Stats {
	accounts := s.repo.List(repository.Filter{})

	stats := model.Stats{
		TotalAccounts:  len(accounts),
		TotalBalance:   decimal.Zero,
		AverageBalance: decimal.Zero,
	}
	for _, a := range accounts {
		if a.Status == model.StatusActive {
			stats.ActiveAccounts++
		}
		stats.TotalBalance = stats.TotalBalance.Add(a.Balance)
	}
	stats.InactiveAccounts = stats.TotalAccounts - stats.ActiveAccounts
	if stats.TotalAccounts > 0 {
		stats.AverageBalance = stats.TotalBalance.Div(decimal.NewFromInt(int64(stats.TotalAccounts))).Round(2)
	}
	return stats
}

// validate runs every field check and collects the failures in order.
// Email format and uniqueness are skipped when the email is empty, and
// status is only checked on edit. excludeID exempts the account being
// edited from the uniqueness check; pass 0 on create.
func (s *AccountService) validate(in model.AccountInput, requireStatus bool, excludeID int) (decimal.Decimal, []string) {
	var msgs []string

	if in.FirstName == "" {
		msgs = append(msgs, "First name is required")
	}
	if in.LastName == "" {
		msgs = append(msgs, "Last name is required")
	}

	switch {
	case in.Email == "":
		msgs = append(msgs, "Email is required")
	case !ValidEmail(in.Email):
		msgs = append(msgs, "Invalid email format")
	case s.repo.EmailExists(in.Email, excludeID):
		msgs = append(msgs, "Email already exists")
	}

	if !model.ValidAccountType(in.AccountType) {
		msgs = append(msgs, "Valid account type is required")
	}
	if in.Department == "" {
		msgs = append(msgs, "Department is required")
	}
	if requireStatus && !model.ValidStatus(in.Status) {
		msgs = append(msgs, "Valid status is required")
	}

	balance, err := ParseBalance(in.Balance)
	if err != nil {
		msgs = append(msgs, err.Error())
	}

	return balance, msgs
}
