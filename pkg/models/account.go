package models

import (
	"github.com/Gobusters/ectolinq"

	"github.com/Ramsey-B/clover/pkg/errors"
)

// Account is a customer organisation. It knows its sales rep, the market
// segments it belongs to and its child accounts. Children do not point back
// at their parent.
type Account struct {
	name     string
	salesRep *SalesRep
	segments []*MarketSegment
	children []*Account
}

// NewAccount creates an account and records it as a member of each segment.
// The account is authoritative here, so segments are not re-checked for
// duplicate names. Repeated segments are kept once.
func NewAccount(name string, salesRep *SalesRep, segments ...*MarketSegment) *Account {
	relations.Lock()
	defer relations.Unlock()

	a := &Account{
		name:     name,
		salesRep: salesRep,
		children: []*Account{},
	}
	a.wireSegments(copySegments(segments))
	return a
}

func (a *Account) wireSegments(segments []*MarketSegment) {
	a.segments = segments
	for _, s := range segments {
		s.appendMember(a)
	}
}

func (a *Account) AsAccount() *Account {
	return a
}

func (a *Account) Name() string {
	return a.name
}

func (a *Account) String() string {
	return a.name
}

func (a *Account) SalesRep() *SalesRep {
	relations.RLock()
	defer relations.RUnlock()
	return a.salesRep
}

// SetSalesRep replaces the rep reference. The rep's own account list is not touched.
func (a *Account) SetSalesRep(rep *SalesRep) {
	relations.Lock()
	defer relations.Unlock()
	a.salesRep = rep
}

// MarketSegments returns a copy of the related segments in insertion order
func (a *Account) MarketSegments() []*MarketSegment {
	relations.RLock()
	defer relations.RUnlock()

	out := make([]*MarketSegment, len(a.segments))
	copy(out, a.segments)
	return out
}

// AddToMarketSegment relates this account to the segment.
// Returns a DuplicateRelationError if the segment is already listed, or if the
// segment already holds a different account with this name.
func (a *Account) AddToMarketSegment(s *MarketSegment) error {
	if s == nil {
		return nil
	}

	relations.Lock()
	defer relations.Unlock()

	if a.hasSegment(s) {
		return errors.NewDuplicateRelationError(a.name, s.name).WithReason(errors.ReasonPartOf)
	}
	if s.memberNamed(a.name) != nil {
		return errors.NewDuplicateRelationError(a.name, s.name)
	}

	a.segments = append(a.segments, s)
	s.accounts = append(s.accounts, a)
	return nil
}

// RemoveFromMarketSegment drops the relation. Removing a segment that is not listed is a no-op.
func (a *Account) RemoveFromMarketSegment(s *MarketSegment) {
	relations.Lock()
	defer relations.Unlock()

	if s == nil || !a.hasSegment(s) {
		return
	}
	unlink(a, s)
}

// SetMarketSegments replaces every segment relation of the account.
// Segments missing from the new set are unlinked on both sides, new ones are
// linked, and ones already linked are left alone. A segment that already holds
// a different account with this name is skipped, as AddToMarketSegment would
// refuse it. The resulting order follows the argument order.
func (a *Account) SetMarketSegments(segments ...*MarketSegment) {
	relations.Lock()
	defer relations.Unlock()

	target := make([]*MarketSegment, 0, len(segments))
	for _, s := range copySegments(segments) {
		if !ectolinq.Contains(s.accounts, a) && s.memberNamed(a.name) != nil {
			continue
		}
		target = append(target, s)
	}

	for _, existing := range copySegments(a.segments) {
		if !ectolinq.Contains(target, existing) {
			unlink(a, existing)
		}
	}

	for _, s := range target {
		s.appendMember(a)
	}

	a.segments = target
}

// AddChild appends a child account. No parent reference is set on the child.
func (a *Account) AddChild(child AccountLike) {
	relations.Lock()
	defer relations.Unlock()

	if c := unwrap(child); c != nil {
		a.children = append(a.children, c)
	}
}

// Children returns a copy of the child accounts in insertion order
func (a *Account) Children() []*Account {
	relations.RLock()
	defer relations.RUnlock()

	out := make([]*Account, len(a.children))
	copy(out, a.children)
	return out
}
