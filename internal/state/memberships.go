package state

import (
	"fmt"

	"github.com/HasanBocek/KTUTennisCRM/internal/store"
	"github.com/HasanBocek/KTUTennisCRM/pkg/enums"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// MembershipsState caches memberships plus the pending and active
// derived views used by the approval screens.
type MembershipsState struct {
	*store.Collection[types.Membership]
	// Pending holds memberships awaiting approval or payment.
	Pending *store.Store[[]types.Membership]
	// Active holds fully admitted memberships.
	Active *store.Store[[]types.Membership]
}

// NewMembershipsState builds an empty memberships cache.
func NewMembershipsState() *MembershipsState {
	base := store.NewCollection[types.Membership]()
	return &MembershipsState{
		Collection: base,
		Pending: base.Filtered(func(m types.Membership) bool {
			return m.Status.IsPending()
		}),
		Active: base.Filtered(func(m types.Membership) bool {
			return m.Status == enums.MembershipStatusActive
		}),
	}
}

// Approve advances the membership one forward step:
// approvementPending becomes paymentPending, paymentPending becomes
// active. Anything else is rejected as an invalid transition.
func (s *MembershipsState) Approve(id string) error {
	membership, ok := s.GetByID(id)
	if !ok {
		return fmt.Errorf("membership %s not found", id)
	}
	next, ok := membership.Status.Next()
	if !ok {
		return fmt.Errorf("membership %s cannot advance from %s", id, membership.Status)
	}
	membership.Status = next
	s.Replace(membership)
	return nil
}

// Reject moves a pending membership into the terminal rejected state.
func (s *MembershipsState) Reject(id string) error {
	return s.transition(id, enums.MembershipStatusRejected)
}

// Expire ends an active membership.
func (s *MembershipsState) Expire(id string) error {
	return s.transition(id, enums.MembershipStatusExpired)
}

func (s *MembershipsState) transition(id string, target enums.MembershipStatus) error {
	membership, ok := s.GetByID(id)
	if !ok {
		return fmt.Errorf("membership %s not found", id)
	}
	if !membership.Status.CanTransitionTo(target) {
		return fmt.Errorf("membership %s cannot move from %s to %s", id, membership.Status, target)
	}
	membership.Status = target
	s.Replace(membership)
	return nil
}
