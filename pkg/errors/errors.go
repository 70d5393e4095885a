package errors

import (
	"errors"
	"fmt"
)

// ErrDuplicateRelation matches any DuplicateRelationError via errors.Is.
var ErrDuplicateRelation = errors.New("duplicate relation")

const (
	// ReasonAssociated is used when the segment already holds an account of the same name.
	ReasonAssociated = "already associated to"
	// ReasonPartOf is used when the account already lists the segment.
	ReasonPartOf = "already part of"
)

// DuplicateRelationError is returned when an Account-MarketSegment relation already exists
type DuplicateRelationError struct {
	Account string
	Segment string
	Reason  string
}

func NewDuplicateRelationError(account, segment string) *DuplicateRelationError {
	return &DuplicateRelationError{
		Account: account,
		Segment: segment,
		Reason:  ReasonAssociated,
	}
}

// WithReason overrides the relation wording used in the message
func (e *DuplicateRelationError) WithReason(reason string) *DuplicateRelationError {
	e.Reason = reason
	return e
}

func (e *DuplicateRelationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = ReasonAssociated
	}
	return fmt.Sprintf("%s %s %s", e.Account, reason, e.Segment)
}

func (e *DuplicateRelationError) Is(target error) bool {
	return target == ErrDuplicateRelation
}

func IsDuplicateRelation(err error) bool {
	var dup *DuplicateRelationError
	return errors.As(err, &dup)
}

// AsDuplicateRelation unwraps err into a DuplicateRelationError when possible
func AsDuplicateRelation(err error) (*DuplicateRelationError, bool) {
	var dup *DuplicateRelationError
	if errors.As(err, &dup) {
		return dup, true
	}
	return nil, false
}
