package controllers

import (
	"net/http"

	"github.com/HasanBocek/KTUTennisCRM/api/middleware"
	"github.com/HasanBocek/KTUTennisCRM/api/views"
	"github.com/HasanBocek/KTUTennisCRM/internal/menu"
	"github.com/HasanBocek/KTUTennisCRM/pkg/roles"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// permissionsOf flattens the user's role permissions into one set.
func permissionsOf(me *types.Me) []string {
	if me == nil {
		return nil
	}
	var perms []string
	seen := make(map[string]struct{})
	for _, roleID := range me.Roles {
		role, ok := roles.GetByID(roleID)
		if !ok {
			continue
		}
		for _, p := range role.Permissions {
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			perms = append(perms, p)
		}
	}
	return perms
}

// page assembles the common template data: current user, filtered
// menu, drained toasts and the user's layout attributes.
func (c *Controllers) page(r *http.Request, title string, data any) views.PageData {
	pd := views.PageData{
		Title:  title,
		Toasts: c.center.Drain(),
		Data:   data,
	}
	me, ok := middleware.UserFrom(r.Context())
	if !ok {
		return pd
	}
	pd.User = me
	pd.Menu = c.filter.Apply(menu.Items(), permissionsOf(me))

	current := c.layouts.For(r.Context(), me.ID).Get()
	pd.Theme = current.Theme.String()
	pd.Sidebar = current.LeftSideBarSize.String()
	return pd
}

func (c *Controllers) render(w http.ResponseWriter, r *http.Request, name, title string, data any) {
	if err := c.renderer.Render(w, name, c.page(r, title, data)); err != nil && c.logg != nil {
		c.logg.Error(r.Context(), "page render failed", err)
	}
}
