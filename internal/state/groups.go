package state

import (
	"github.com/HasanBocek/KTUTennisCRM/internal/store"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// GroupsState caches the coaching group list plus a view of groups
// currently open for membership applications.
type GroupsState struct {
	*store.Collection[types.Group]
	Open *store.Store[[]types.Group]
}

// NewGroupsState builds an empty groups cache.
func NewGroupsState() *GroupsState {
	base := store.NewCollection[types.Group]()
	return &GroupsState{
		Collection: base,
		Open: base.Filtered(func(g types.Group) bool {
			return g.MembershipOpen
		}),
	}
}
