package models

// ChildAccount is an Account created under a parent. It inherits the parent's
// sales rep and market segments when none are given. Once built it behaves
// exactly like an Account; only the parent remembers the relationship.
type ChildAccount struct {
	*Account
}

// NewChildAccount creates a child of parent and registers it with parent.AddChild.
// Segments inherited from the parent are a snapshot: later changes to the
// parent do not reach the child.
func NewChildAccount(name string, parent AccountLike, salesRep *SalesRep, segments ...*MarketSegment) *ChildAccount {
	p := unwrap(parent)

	relations.Lock()
	a := &Account{
		name:     name,
		salesRep: salesRep,
		children: []*Account{},
	}

	if a.salesRep == nil && p != nil {
		a.salesRep = p.salesRep
	}

	if len(segments) > 0 {
		a.wireSegments(copySegments(segments))
	} else if p != nil {
		a.wireSegments(copySegments(p.segments))
	} else {
		a.segments = []*MarketSegment{}
	}
	relations.Unlock()

	child := &ChildAccount{Account: a}
	if p != nil {
		p.AddChild(child)
	}
	return child
}
