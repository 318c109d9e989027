package controllers

import (
	"net/http"

	"github.com/HasanBocek/KTUTennisCRM/api/middleware"
	"github.com/HasanBocek/KTUTennisCRM/api/responses"
	"github.com/HasanBocek/KTUTennisCRM/api/validators"
	"github.com/HasanBocek/KTUTennisCRM/pkg/enums"

	pkgerrors "github.com/HasanBocek/KTUTennisCRM/pkg/errors"
)

type themeBody struct {
	Theme string `json:"theme" validate:"required"`
}

type sidebarBody struct {
	Size string `json:"size" validate:"required"`
}

// SetTheme switches the caller's color scheme.
func (c *Controllers) SetTheme(w http.ResponseWriter, r *http.Request) {
	var body themeBody
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	theme, err := enums.ParseTheme(body.Theme)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Geçersiz tema"))
		return
	}

	me, _ := middleware.UserFrom(r.Context())
	store := c.layouts.For(r.Context(), me.ID)
	store.SetTheme(r.Context(), theme)
	responses.WriteSuccess(w, "", store.Get())
}

// SetSidebarSize switches the caller's sidebar mode.
func (c *Controllers) SetSidebarSize(w http.ResponseWriter, r *http.Request) {
	var body sidebarBody
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	size, err := enums.ParseSidebarSize(body.Size)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Geçersiz menü boyutu"))
		return
	}

	me, _ := middleware.UserFrom(r.Context())
	store := c.layouts.For(r.Context(), me.ID)
	store.SetSidebarSize(r.Context(), size)
	responses.WriteSuccess(w, "", store.Get())
}

// ResetLayout restores the caller's presentation defaults.
func (c *Controllers) ResetLayout(w http.ResponseWriter, r *http.Request) {
	me, _ := middleware.UserFrom(r.Context())
	store := c.layouts.For(r.Context(), me.ID)
	store.Reset(r.Context())
	responses.WriteSuccess(w, "", store.Get())
}
