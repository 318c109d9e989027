package types

import (
	"time"

	"github.com/HasanBocek/KTUTennisCRM/pkg/enums"
)

// Membership joins a user to a group. Status transitions follow the
// finite order in enums.MembershipStatus.
type Membership struct {
	ID       string                 `json:"_id"`
	User     UserSummary            `json:"user"`
	JoinDate time.Time              `json:"joinDate"`
	Group    Group                  `json:"group"`
	Status   enums.MembershipStatus `json:"status"`
}

func (m Membership) EntityID() string { return m.ID }
