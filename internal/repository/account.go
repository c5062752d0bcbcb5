package repository

import (
	"sync"
	"time"

	"github.com/accountpro/accountpro/internal/model"
)

// AccountRepository is the in-memory account store. It owns the record
// lifecycle and the id counter; all access is serialized behind a
// single lock so concurrent requests never race on the backing slice.
// Ids are never reused, even after deletions.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []model.Account
	nextID   int
}

// Filter narrows List results. Zero-value fields impose no constraint.
type Filter struct {
	AccountType string
	Status      string
}

// NewAccountRepository creates a store pre-populated with the given
// accounts. The id counter starts just past the highest seeded id.
func NewAccountRepository(seed []model.Account) *AccountRepository {
	r := &AccountRepository{
		accounts: make([]model.Account, len(seed)),
		nextID:   1,
	}
	copy(r.accounts, seed)
	for _, a := range seed {
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

// Create assigns the next id, stamps the creation date, marks the
// account active and appends it. Callers validate fields beforehand;
// Create itself never fails.
func (r *AccountRepository) Create(fields model.Account) model.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	fields.ID = r.nextID
	fields.Status = model.StatusActive
	fields.CreatedDate = time.Now().Format(model.DateLayout)
	r.nextID++

	r.accounts = append(r.accounts, fields)
	return fields
}

// FindByID returns the account with the given id, or ErrAccountNotFound.
func (r *AccountRepository) FindByID(id int) (model.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Account{}, ErrAccountNotFound
}

// Update replaces every mutable field on the matched record. The id and
// creation date are kept as stored.
func (r *AccountRepository) Update(id int, fields model.Account) (model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.accounts {
		if r.accounts[i].ID != id {
			continue
		}
		fields.ID = id
		fields.CreatedDate = r.accounts[i].CreatedDate
		r.accounts[i] = fields
		return fields, nil
	}
	return model.Account{}, ErrAccountNotFound
}

// Delete removes the account with the given id and returns it. Deleting
// an unknown id leaves the store untouched.
func (r *AccountRepository) Delete(id int) (model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.accounts {
		if a.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return a, nil
		}
	}
	return model.Account{}, ErrAccountNotFound
}

// List returns the accounts matching every set filter field, in
// insertion order.
func (r *AccountRepository) List(f Filter) []model.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		if f.AccountType != "" && string(a.AccountType) != f.AccountType {
			continue
		}
		if f.Status != "" && string(a.Status) != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Count returns the number of stored accounts.
func (r *AccountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

// EmailExists reports whether any account other than excludeID already
// uses the given (lower-cased) email. Pass excludeID 0 to check against
// every account.
func (r *AccountRepository) EmailExists(email string, excludeID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accounts {
		if a.Email == email && a.ID != excludeID {
			return true
		}
	}
	return false
}
