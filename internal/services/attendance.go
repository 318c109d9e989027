package services

import (
	"context"
	"net/url"

	"github.com/HasanBocek/KTUTennisCRM/internal/session"
	"github.com/HasanBocek/KTUTennisCRM/pkg/enums"
	"github.com/HasanBocek/KTUTennisCRM/pkg/gateway"
)

// AttendanceService marks roster entries on coached sessions.
type AttendanceService struct {
	deps
}

// AttendanceUpdate identifies one roster entry and its new status.
type AttendanceUpdate struct {
	SessionID string
	UserID    string
	Status    enums.AttendanceStatus
	Note      string
}

type attendanceBody struct {
	Status enums.AttendanceStatus `json:"status"`
	Note   string                 `json:"note,omitempty"`
}

// Update sets one user's attendance for a session and toasts the
// outcome. Unknown statuses are rejected locally without a request.
func (s *AttendanceService) Update(ctx context.Context, src session.TokenSource, update AttendanceUpdate) Result {
	if !update.Status.IsValid() {
		res := Result{Message: "Katılım durumu güncellenemedi.", Errors: []string{"Geçersiz katılım durumu"}}
		s.toastFailure(res)
		return res
	}

	cfg, err := authConfig(src)
	if err != nil {
		return s.unauthenticated()
	}

	endpoint := "/session/" + url.PathEscape(update.SessionID) + "/user/" + url.PathEscape(update.UserID) + "/attendance"
	body := attendanceBody{Status: update.Status, Note: update.Note}
	resp := gateway.Put[struct{}](ctx, s.gw, endpoint, body, cfg)
	if !resp.Success {
		res := failureOf(resp, "Katılım durumu güncellenemedi.")
		s.toastFailure(res)
		return res
	}

	res := successOf(resp, "Katılım durumu başarıyla güncellendi.")
	s.notifier.Success(res.Message)
	return res
}
