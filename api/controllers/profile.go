package controllers

import (
	"net/http"

	"github.com/HasanBocek/KTUTennisCRM/api/middleware"
	"github.com/HasanBocek/KTUTennisCRM/api/responses"
	"github.com/HasanBocek/KTUTennisCRM/api/validators"
	"github.com/HasanBocek/KTUTennisCRM/internal/services"
	"github.com/HasanBocek/KTUTennisCRM/internal/session"
)

// ProfilePage renders the caller's own profile.
func (c *Controllers) ProfilePage(w http.ResponseWriter, r *http.Request) {
	me, _ := middleware.UserFrom(r.Context())
	c.state.Me.Set(me)
	c.render(w, r, "profile", "Profil", me)
}

// ProfileUpdate patches the caller's profile from a JSON body and
// mirrors the echoed result into the Me store.
func (c *Controllers) ProfileUpdate(w http.ResponseWriter, r *http.Request) {
	var patch services.ProfilePatch
	if err := validators.DecodeJSONBody(r, &patch); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	res := c.svcs.Profile.Update(r.Context(), session.FromRequest(r), patch)
	if !res.Success {
		responses.WriteFailure(w, http.StatusBadRequest, res.Message, res.Errors)
		return
	}

	c.state.Me.Set(res.Updated)
	responses.WriteSuccess(w, res.Message, res.Updated)
}
