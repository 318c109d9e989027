// Package state wires the per-entity observable stores into one
// application context object, constructed once at startup and threaded
// through handlers instead of living as ambient singletons.
package state

import (
	"github.com/HasanBocek/KTUTennisCRM/internal/store"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// State holds every client-side cache. Entities are backend-owned;
// these stores only mirror the last synced copy and are discarded on
// restart (the layout store, persisted elsewhere, is the exception).
type State struct {
	Users       *UsersState
	Groups      *GroupsState
	Memberships *MembershipsState
	Me          *store.Store[*types.Me]
	Roles       *RolesState
}

// New builds an empty state container.
func New() *State {
	return &State{
		Users:       NewUsersState(),
		Groups:      NewGroupsState(),
		Memberships: NewMembershipsState(),
		Me:          store.New[*types.Me](nil),
		Roles:       NewRolesState(),
	}
}
