package models

import (
	"fmt"
	"sync"
)

// SalesRep knows its own name and which accounts are assigned to it.
// The account list is informational; the rep does not own its accounts.
type SalesRep struct {
	firstName string
	lastName  string
	accounts  []*Account
	mu        sync.RWMutex
}

// NewSalesRep creates a rep. Accounts passed here are recorded on the rep only;
// their SalesRep reference is left as is.
func NewSalesRep(firstName, lastName string, accounts ...AccountLike) *SalesRep {
	r := &SalesRep{
		firstName: firstName,
		lastName:  lastName,
		accounts:  make([]*Account, 0, len(accounts)),
	}
	for _, account := range accounts {
		if a := unwrap(account); a != nil {
			r.accounts = append(r.accounts, a)
		}
	}
	return r
}

func (r *SalesRep) FirstName() string {
	return r.firstName
}

func (r *SalesRep) LastName() string {
	return r.lastName
}

// String returns the display name: first and last name joined by a space
func (r *SalesRep) String() string {
	return fmt.Sprintf("%s %s", r.firstName, r.lastName)
}

func (r *SalesRep) Accounts() []*Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// AddAccount assigns the account to this rep
func (r *SalesRep) AddAccount(account AccountLike) {
	a := unwrap(account)
	if a == nil {
		return
	}

	r.mu.Lock()
	r.accounts = append(r.accounts, a)
	r.mu.Unlock()

	a.SetSalesRep(r)
}

// RemoveAccount unassigns the account. Unknown accounts are ignored.
func (r *SalesRep) RemoveAccount(account AccountLike) {
	a := unwrap(account)
	if a == nil {
		return
	}

	r.mu.Lock()
	found := false
	for i, existing := range r.accounts {
		if existing == a {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			found = true
			break
		}
	}
	r.mu.Unlock()

	if found && a.SalesRep() == r {
		a.SetSalesRep(nil)
	}
}
