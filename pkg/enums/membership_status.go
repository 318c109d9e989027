package enums

import "fmt"

// MembershipStatus captures the lifecycle of a club membership. The
// order is monotonic forward: approvementPending -> paymentPending ->
// active, with a side exit to rejected (terminal) or expired.
type MembershipStatus string

const (
	MembershipStatusApprovementPending MembershipStatus = "approvementPending"
	MembershipStatusPaymentPending     MembershipStatus = "paymentPending"
	MembershipStatusActive             MembershipStatus = "active"
	MembershipStatusRejected           MembershipStatus = "rejected"
	MembershipStatusExpired            MembershipStatus = "expired"
)

var validMembershipStatuses = []MembershipStatus{
	MembershipStatusApprovementPending,
	MembershipStatusPaymentPending,
	MembershipStatusActive,
	MembershipStatusRejected,
	MembershipStatusExpired,
}

// String implements fmt.Stringer.
func (m MembershipStatus) String() string {
	return string(m)
}

// IsValid reports whether the value matches a known MembershipStatus.
func (m MembershipStatus) IsValid() bool {
	for _, candidate := range validMembershipStatuses {
		if candidate == m {
			return true
		}
	}
	return false
}

// IsPending reports whether the membership still awaits approval or payment.
func (m MembershipStatus) IsPending() bool {
	return m == MembershipStatusApprovementPending || m == MembershipStatusPaymentPending
}

// IsTerminal reports whether no further transition is allowed.
func (m MembershipStatus) IsTerminal() bool {
	return m == MembershipStatusRejected || m == MembershipStatusExpired
}

// Next returns the forward step taken on approval. Active and terminal
// states have no next step.
func (m MembershipStatus) Next() (MembershipStatus, bool) {
	switch m {
	case MembershipStatusApprovementPending:
		return MembershipStatusPaymentPending, true
	case MembershipStatusPaymentPending:
		return MembershipStatusActive, true
	}
	return "", false
}

// CanTransitionTo reports whether moving to target respects the
// monotonic forward order. Rejection is allowed from either pending
// state and is terminal; expiry only ends an active membership.
func (m MembershipStatus) CanTransitionTo(target MembershipStatus) bool {
	switch m {
	case MembershipStatusApprovementPending:
		return target == MembershipStatusPaymentPending || target == MembershipStatusRejected
	case MembershipStatusPaymentPending:
		return target == MembershipStatusActive || target == MembershipStatusRejected
	case MembershipStatusActive:
		return target == MembershipStatusExpired
	}
	return false
}

// ParseMembershipStatus converts raw input into a MembershipStatus.
func ParseMembershipStatus(value string) (MembershipStatus, error) {
	for _, candidate := range validMembershipStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid membership status %q", value)
}
