package models

import (
	"github.com/Ramsey-B/clover/pkg/errors"
)

// MarketSegment groups the accounts that sell into the same market.
// Membership is keyed by account name: two accounts sharing a name count as
// the same member.
type MarketSegment struct {
	name     string
	accounts []*Account
}

// NewMarketSegment creates a segment and wires each supplied account to it.
// The segment is authoritative here, so members are not re-checked for
// duplicate names.
func NewMarketSegment(name string, accounts ...AccountLike) *MarketSegment {
	relations.Lock()
	defer relations.Unlock()

	s := &MarketSegment{
		name:     name,
		accounts: make([]*Account, 0, len(accounts)),
	}

	for _, account := range accounts {
		a := unwrap(account)
		if a == nil {
			continue
		}
		s.appendMember(a)
		a.appendSegment(s)
	}

	return s
}

func (s *MarketSegment) Name() string {
	return s.name
}

func (s *MarketSegment) String() string {
	return s.name
}

// Accounts returns a copy of the member accounts in insertion order
func (s *MarketSegment) Accounts() []*Account {
	relations.RLock()
	defer relations.RUnlock()

	out := make([]*Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// HasAccount reports whether an account with the given name is a member
func (s *MarketSegment) HasAccount(name string) bool {
	relations.RLock()
	defer relations.RUnlock()
	return s.memberNamed(name) != nil
}

// AddAccount relates the account to this segment. A nil account is ignored.
// Returns a DuplicateRelationError if an account with the same name is already a member.
func (s *MarketSegment) AddAccount(account AccountLike) error {
	a := unwrap(account)
	if a == nil {
		return nil
	}

	relations.Lock()
	defer relations.Unlock()

	if s.memberNamed(a.name) != nil {
		return errors.NewDuplicateRelationError(a.name, s.name)
	}

	s.accounts = append(s.accounts, a)
	a.appendSegment(s)
	return nil
}

// RemoveAccount drops the relation. Removing an account that is not a member is a no-op.
func (s *MarketSegment) RemoveAccount(account AccountLike) {
	a := unwrap(account)
	if a == nil {
		return
	}

	relations.Lock()
	defer relations.Unlock()

	if s.memberIndex(a) < 0 {
		return
	}
	unlink(a, s)
}
