package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HasanBocek/KTUTennisCRM/api/middleware"
	"github.com/HasanBocek/KTUTennisCRM/api/responses"
	"github.com/HasanBocek/KTUTennisCRM/api/validators"
	"github.com/HasanBocek/KTUTennisCRM/internal/services"
	"github.com/HasanBocek/KTUTennisCRM/internal/session"
	"github.com/HasanBocek/KTUTennisCRM/pkg/enums"

	pkgerrors "github.com/HasanBocek/KTUTennisCRM/pkg/errors"
)

// MySessionsPage renders the caller's own session history.
func (c *Controllers) MySessionsPage(w http.ResponseWriter, r *http.Request) {
	me, _ := middleware.UserFrom(r.Context())
	res := c.svcs.Sessions.ListForUser(r.Context(), session.FromRequest(r), me.ID)
	if !res.Success {
		c.render(w, r, "error", "Hata", res.Message)
		return
	}
	c.render(w, r, "sessions", "Derslerim", res.Sessions)
}

// UserSessions is the JSON proxy for one member's session listing.
func (c *Controllers) UserSessions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	res := c.svcs.Sessions.ListForUser(r.Context(), session.FromRequest(r), userID)
	if !res.Success {
		responses.WriteFailure(w, http.StatusBadRequest, res.Message, res.Errors)
		return
	}
	responses.WriteSuccess(w, "", res.Sessions)
}

type attendanceBody struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

// AttendanceUpdate sets one roster entry's status for a session.
func (c *Controllers) AttendanceUpdate(w http.ResponseWriter, r *http.Request) {
	var body attendanceBody
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	status, err := enums.ParseAttendanceStatus(body.Status)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Geçersiz katılım durumu"))
		return
	}

	res := c.svcs.Attendance.Update(r.Context(), session.FromRequest(r), services.AttendanceUpdate{
		SessionID: chi.URLParam(r, "sessionID"),
		UserID:    chi.URLParam(r, "userID"),
		Status:    status,
		Note:      body.Note,
	})
	if !res.Success {
		responses.WriteFailure(w, http.StatusBadRequest, res.Message, res.Errors)
		return
	}
	responses.WriteSuccess(w, res.Message, nil)
}
