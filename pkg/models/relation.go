package models

import (
	"sync"

	"github.com/Gobusters/ectolinq"
)

// relations guards every Account <-> MarketSegment update so both sides of a
// relation change together. Unexported helpers below assume it is held.
var relations sync.RWMutex

// AccountLike is implemented by *Account and *ChildAccount
type AccountLike interface {
	AsAccount() *Account
}

func unwrap(a AccountLike) *Account {
	if a == nil {
		return nil
	}
	return a.AsAccount()
}

func (a *Account) hasSegment(s *MarketSegment) bool {
	return ectolinq.Contains(a.segments, s)
}

func (a *Account) appendSegment(s *MarketSegment) {
	if !a.hasSegment(s) {
		a.segments = append(a.segments, s)
	}
}

func (a *Account) dropSegment(s *MarketSegment) {
	for i, existing := range a.segments {
		if existing == s {
			a.segments = append(a.segments[:i:i], a.segments[i+1:]...)
			return
		}
	}
}

func (s *MarketSegment) memberNamed(name string) *Account {
	return ectolinq.Find(s.accounts, func(member *Account) bool {
		return member.name == name
	})
}

// memberIndex prefers an identity match and falls back to a name match.
func (s *MarketSegment) memberIndex(a *Account) int {
	named := -1
	for i, member := range s.accounts {
		if member == a {
			return i
		}
		if named < 0 && member.name == a.name {
			named = i
		}
	}
	return named
}

func (s *MarketSegment) appendMember(a *Account) {
	if !ectolinq.Contains(s.accounts, a) {
		s.accounts = append(s.accounts, a)
	}
}

// unlink removes the relation from both sides. When the segment holds a
// different account under a's name, that member is the one unlinked.
func unlink(a *Account, s *MarketSegment) {
	a.dropSegment(s)

	idx := s.memberIndex(a)
	if idx < 0 {
		return
	}
	member := s.accounts[idx]
	s.accounts = append(s.accounts[:idx:idx], s.accounts[idx+1:]...)
	if member != a {
		member.dropSegment(s)
	}
}

func copySegments(segments []*MarketSegment) []*MarketSegment {
	out := make([]*MarketSegment, 0, len(segments))
	for _, s := range segments {
		if s == nil || ectolinq.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
