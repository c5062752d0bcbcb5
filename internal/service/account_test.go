package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accountpro/accountpro/internal/model"
	"github.com/accountpro/accountpro/internal/repository"
)

func newService() *AccountService {
	return NewAccountService(repository.NewAccountRepository(repository.SeedAccounts()))
}

func validInput() model.AccountInput {
	return model.AccountInput{
		FirstName:   "Ana",
		LastName:    "Ruiz",
		Email:       "ana.ruiz@example.com",
		AccountType: "standard",
		Department:  "Engineering",
		Balance:     "100.555",
	}
}

func TestCreateRoundTrip(t *testing.T) {
	svc := newService()

	created, err := svc.Create(validInput())
	require.NoError(t, err)

	assert.Equal(t, 4, created.ID)
	assert.Equal(t, model.StatusActive, created.Status)
	assert.Equal(t, time.Now().Format(model.DateLayout), created.CreatedDate)
	assert.Equal(t, "100.56", created.Balance.StringFixed(2))

	fetched, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateNormalizesInput(t *testing.T) {
	svc := newService()

	in := validInput()
	in.FirstName = "  Ana "
	in.Email = "  Ana.Ruiz@Example.COM "
	in.Department = " Engineering "

	created, err := svc.Create(in)
	require.NoError(t, err)

	assert.Equal(t, "Ana", created.FirstName)
	assert.Equal(t, "ana.ruiz@example.com", created.Email)
	assert.Equal(t, "Engineering", created.Department)
}

func TestCreateCollectsEveryFailure(t *testing.T) {
	svc := newService()

	_, err := svc.Create(model.AccountInput{Balance: "abc"})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{
		"First name is required",
		"Last name is required",
		"Email is required",
		"Valid account type is required",
		"Department is required",
		"Invalid balance format",
	}, vErr.Messages)

	assert.Equal(t, 3, svc.Count())
}

func TestCreateValidationCases(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.AccountInput)
		want   string
	}{
		{name: "bad email format", mutate: func(in *model.AccountInput) { in.Email = "a@b" }, want: "Invalid email format"},
		{name: "duplicate email", mutate: func(in *model.AccountInput) { in.Email = "John.Doe@example.com" }, want: "Email already exists"},
		{name: "unknown account type", mutate: func(in *model.AccountInput) { in.AccountType = "gold" }, want: "Valid account type is required"},
		{name: "whitespace department", mutate: func(in *model.AccountInput) { in.Department = "   " }, want: "Department is required"},
		{name: "negative balance", mutate: func(in *model.AccountInput) { in.Balance = "-5" }, want: "Balance cannot be negative"},
		{name: "oversized balance", mutate: func(in *model.AccountInput) { in.Balance = "2000000" }, want: "Balance too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService()
			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(in)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, []string{tt.want}, vErr.Messages)
		})
	}
}

func TestUpdateEmailUniqueness(t *testing.T) {
	svc := newService()

	in := model.AccountInput{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "sarah.j@example.com", // account 2's email
		AccountType: "premium",
		Department:  "Sales",
		Status:      "active",
		Balance:     "15750.00",
	}
	_, err := svc.Update(1, in)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Email already exists"}, vErr.Messages)

	// Keeping the account's own email is not a conflict.
	in.Email = "john.doe@example.com"
	updated, err := svc.Update(1, in)
	require.NoError(t, err)
	assert.Equal(t, "john.doe@example.com", updated.Email)
}

func TestUpdateRequiresValidStatus(t *testing.T) {
	svc := newService()

	in := validInput()
	in.Email = "fresh@example.com"
	in.Status = "paused"

	_, err := svc.Update(1, in)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"Valid status is required"}, vErr.Messages)
}

func TestUpdateKeepsCreatedDate(t *testing.T) {
	svc := newService()

	in := validInput()
	in.Email = "fresh@example.com"
	in.Status = "inactive"

	updated, err := svc.Update(1, in)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", updated.CreatedDate)
	assert.Equal(t, model.StatusInactive, updated.Status)
}

func TestUpdateMissingAccount(t *testing.T) {
	svc := newService()

	in := validInput()
	in.Status = "active"

	_, err := svc.Update(99, in)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestDeleteMissingAccount(t *testing.T) {
	svc := newService()

	_, err := svc.Delete(99)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.Equal(t, 3, svc.Count())
}

func TestStats(t *testing.T) {
	svc := newService()

	stats := svc.Stats()
	assert.Equal(t, 3, stats.TotalAccounts)
	assert.Equal(t, 2, stats.ActiveAccounts)
	assert.Equal(t, 1, stats.InactiveAccounts)
	assert.Equal(t, "26100.00", stats.TotalBalance.StringFixed(2))
	assert.Equal(t, "8700.00", stats.AverageBalance.StringFixed(2))
}

func TestStatsEmptyStore(t *testing.T) {
	svc := NewAccountService(repository.NewAccountRepository(nil))

	stats := svc.Stats()
	assert.Equal(t, 0, stats.TotalAccounts)
	assert.True(t, stats.TotalBalance.IsZero())
	assert.True(t, stats.AverageBalance.IsZero())
}

func TestRecentOrdersByCreationDate(t *testing.T) {
	svc := newService()

	// Seeds are dated 2024-01-15, 2024-02-20, 2024-03-10; a freshly
	// created account is newest.
	created, err := svc.Create(validInput())
	require.NoError(t, err)

	recent := svc.Recent(5)
	require.Len(t, recent, 4)
	assert.Equal(t, created.ID, recent[0].ID)
	assert.Equal(t, 3, recent[1].ID)
	assert.Equal(t, 2, recent[2].ID)
	assert.Equal(t, 1, recent[3].ID)

	assert.Len(t, svc.Recent(2), 2)
}
