package state

import (
	"github.com/HasanBocek/KTUTennisCRM/internal/store"
	"github.com/HasanBocek/KTUTennisCRM/pkg/roles"
)

// RolesState exposes the static role table through the same observable
// surface as the entity stores, plus the derived id-to-name and
// id-to-color maps the UI renders badges from.
type RolesState struct {
	All    *store.Store[[]roles.Role]
	Names  *store.Store[map[string]string]
	Colors *store.Store[map[string]string]
}

// NewRolesState seeds the role store from the code-defined table.
func NewRolesState() *RolesState {
	all := store.New(roles.All)
	return &RolesState{
		All: all,
		Names: store.Derived(all, func(list []roles.Role) map[string]string {
			names := make(map[string]string, len(list))
			for _, role := range list {
				names[role.ID] = role.Name
			}
			return names
		}),
		Colors: store.Derived(all, func(list []roles.Role) map[string]string {
			colors := make(map[string]string, len(list))
			for _, role := range list {
				colors[role.ID] = role.Color
			}
			return colors
		}),
	}
}

// Name resolves a role id to its display name, falling back to the id.
func (s *RolesState) Name(id string) string {
	if name, ok := s.Names.Get()[id]; ok {
		return name
	}
	return id
}

// Color resolves a role id to its display color, falling back to gray.
func (s *RolesState) Color(id string) string {
	if color, ok := s.Colors.Get()[id]; ok {
		return color
	}
	return roles.FallbackColor
}
