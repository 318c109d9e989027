// Package services holds the typed façades the web layer calls
// instead of talking to the gateway directly. Each method resolves
// the caller's token, performs one backend call, translates the
// outcome into Turkish user-facing messages and feeds the toast
// center. Backend failures are returned as values, never as Go
// errors.
package services

import (
	"errors"

	"github.com/HasanBocek/KTUTennisCRM/internal/notify"
	"github.com/HasanBocek/KTUTennisCRM/internal/session"
	pkgerrors "github.com/HasanBocek/KTUTennisCRM/pkg/errors"
	"github.com/HasanBocek/KTUTennisCRM/pkg/gateway"
	"github.com/HasanBocek/KTUTennisCRM/pkg/logger"
)

const (
	// msgConnectivity is shown whenever the backend cannot be reached,
	// independent of which operation failed.
	msgConnectivity = "Sunucuyla bağlantı kurulamadı. Lütfen tekrar deneyin."
	detailNetwork   = "Ağ hatası veya sunucu mevcut değil"
	msgNotLoggedIn  = "Oturum açılmamış"
	detailUnknown   = "Bilinmeyen bir hata oluştu"
)

// Result is the common outcome shape. Message is the user-facing
// summary; Errors holds the discrete violation strings reported by
// the backend.
type Result struct {
	Success bool
	Message string
	Errors  []string
}

type deps struct {
	gw       *gateway.Client
	notifier notify.Notifier
	logg     *logger.Logger
}

// Params collects everything the façades need.
type Params struct {
	Gateway  *gateway.Client
	Notifier notify.Notifier
	Logger   *logger.Logger
}

// Services bundles every façade over one shared dependency set.
type Services struct {
	Auth       *AuthService
	Profile    *ProfileService
	Users      *UserService
	Groups     *GroupService
	Attendance *AttendanceService
	Sessions   *SessionService
}

func New(params Params) (*Services, error) {
	if params.Gateway == nil {
		return nil, errors.New("gateway client is required")
	}
	if params.Notifier == nil {
		return nil, errors.New("notifier is required")
	}
	if params.Logger == nil {
		return nil, errors.New("logger is required")
	}

	d := deps{gw: params.Gateway, notifier: params.Notifier, logg: params.Logger}
	return &Services{
		Auth:       &AuthService{deps: d},
		Profile:    &ProfileService{deps: d},
		Users:      &UserService{deps: d},
		Groups:     &GroupService{deps: d},
		Attendance: &AttendanceService{deps: d},
		Sessions:   &SessionService{deps: d},
	}, nil
}

// authConfig resolves the caller's token before any network work. A
// missing or expired session fails here, so no doomed request is sent.
func authConfig(src session.TokenSource) (gateway.Config, error) {
	if src == nil {
		return gateway.Config{}, session.ErrUnauthenticated
	}
	token, err := src.AccessToken()
	if err != nil {
		return gateway.Config{}, err
	}
	return gateway.Config{AccessToken: token}, nil
}

// unauthenticated is the shared result for calls rejected before the
// network. The single toast mirrors the message.
func (d deps) unauthenticated() Result {
	d.notifier.Error(msgNotLoggedIn)
	return Result{Message: msgNotLoggedIn, Errors: []string{msgNotLoggedIn}}
}

// failureOf maps a failed gateway response onto a Result. Transport
// failures collapse into the one connectivity message; everything
// else surfaces the backend's own message and error list.
func failureOf[T any](resp gateway.Response[T], fallback string) Result {
	if resp.Kind == pkgerrors.CodeNetwork || resp.Kind == pkgerrors.CodeTimeout {
		return Result{Message: msgConnectivity, Errors: []string{detailNetwork}}
	}
	message := resp.Message
	if message == "" {
		message = fallback
	}
	errs := resp.ErrorList()
	if len(errs) == 0 {
		errs = []string{detailUnknown}
	}
	return Result{Message: message, Errors: errs}
}

// toastFailure pushes one danger toast per discrete error, or the
// single connectivity toast for transport failures.
func (d deps) toastFailure(res Result) {
	if res.Message == msgConnectivity {
		d.notifier.Error(msgConnectivity)
		return
	}
	d.notifier.Errors(res.Errors)
}

// successOf builds the success result with the backend's message or
// the operation's own fallback.
func successOf[T any](resp gateway.Response[T], fallback string) Result {
	message := resp.Message
	if message == "" {
		message = fallback
	}
	return Result{Success: true, Message: message}
}
