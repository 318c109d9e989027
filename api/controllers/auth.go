package controllers

import (
	"net/http"
	"time"

	"github.com/HasanBocek/KTUTennisCRM/api/responses"
	"github.com/HasanBocek/KTUTennisCRM/api/validators"
	"github.com/HasanBocek/KTUTennisCRM/internal/session"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// LoginPage renders the login form.
func (c *Controllers) LoginPage(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, "login", "Giriş", nil)
}

// Login exchanges form credentials for tokens and sets the session
// cookies. Failures re-render the form with the backend's messages as
// toasts.
func (c *Controllers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "form verisi okunamadı", http.StatusBadRequest)
		return
	}

	credentials := types.LoginCredentials{
		Identifier: r.PostFormValue("identifier"),
		Password:   r.PostFormValue("password"),
	}
	res := c.svcs.Auth.Login(r.Context(), credentials)
	if !res.Success {
		c.center.Errors(res.Errors)
		c.render(w, r, "login", "Giriş", nil)
		return
	}

	session.SetTokenCookies(w, *res.Tokens, time.Now())
	http.Redirect(w, r, "/dashboard/profile", http.StatusSeeOther)
}

// Logout clears both session cookies.
func (c *Controllers) Logout(w http.ResponseWriter, r *http.Request) {
	session.ClearTokenCookies(w)
	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

// Register creates a self-service account from a JSON body.
func (c *Controllers) Register(w http.ResponseWriter, r *http.Request) {
	var credentials types.RegisterCredentials
	if err := validators.DecodeJSONBody(r, &credentials); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	res := c.svcs.Auth.Register(r.Context(), credentials)
	if !res.Success {
		responses.WriteFailure(w, http.StatusBadRequest, res.Message, res.Errors)
		return
	}
	responses.WriteSuccess(w, res.Message, map[string]string{"userId": res.UserID})
}
