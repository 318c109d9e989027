package state

import (
	"github.com/HasanBocek/KTUTennisCRM/internal/store"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

const coachRoleID = "coach"

// UsersState caches the member list plus a coaches-only derived view.
type UsersState struct {
	*store.Collection[types.User]
	// Coaches holds only users carrying the coach role; it tracks the
	// base collection automatically.
	Coaches *store.Store[[]types.User]
}

// NewUsersState builds an empty users cache.
func NewUsersState() *UsersState {
	base := store.NewCollection[types.User]()
	return &UsersState{
		Collection: base,
		Coaches: base.Filtered(func(u types.User) bool {
			return u.HasRole(coachRoleID)
		}),
	}
}
