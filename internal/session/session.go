// Package session is the single session-accessor abstraction. Every
// service resolves the caller's access token through a TokenSource
// instead of reading cookies itself; page loaders hand in the inbound
// request, background callers hand in a pre-resolved token.
package session

import (
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/HasanBocek/KTUTennisCRM/pkg/errors"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenCookie is the cookie holding the bearer token relayed
	// to the backend.
	AccessTokenCookie = "accessToken"
	// RefreshTokenCookie is set on login for parity with the backend
	// contract; no refresh flow is implemented here.
	RefreshTokenCookie = "refreshToken"
)

// ErrUnauthenticated marks a missing or expired session, resolved
// before any network call is attempted.
var ErrUnauthenticated = pkgerrors.New(pkgerrors.CodeAuth, "Oturum açılmamış")

// TokenSource yields the caller's access token.
type TokenSource interface {
	AccessToken() (string, error)
}

// RequestTokenSource reads the access token from an inbound request's
// cookie store.
type RequestTokenSource struct {
	request *http.Request
	now     func() time.Time
}

// FromRequest builds a token source over the request's cookies.
func FromRequest(r *http.Request) *RequestTokenSource {
	return &RequestTokenSource{request: r, now: time.Now}
}

// AccessToken returns the cookie token, or ErrUnauthenticated when the
// cookie is absent, blank, or carries an already-expired JWT.
func (s *RequestTokenSource) AccessToken() (string, error) {
	if s == nil || s.request == nil {
		return "", ErrUnauthenticated
	}
	cookie, err := s.request.Cookie(AccessTokenCookie)
	if err != nil || strings.TrimSpace(cookie.Value) == "" {
		return "", ErrUnauthenticated
	}
	if expired(cookie.Value, s.now()) {
		return "", ErrUnauthenticated
	}
	return cookie.Value, nil
}

// StaticTokenSource wraps a token already resolved by the caller.
type StaticTokenSource string

// AccessToken returns the wrapped token or ErrUnauthenticated when blank.
func (s StaticTokenSource) AccessToken() (string, error) {
	if strings.TrimSpace(string(s)) == "" {
		return "", ErrUnauthenticated
	}
	return string(s), nil
}

// expired reports whether the token carries a past exp claim. The
// parse is unverified: the backend owns signature validation, this is
// only an early reject to skip a doomed network call. Tokens that are
// not JWTs pass through untouched.
func expired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}

// SetTokenCookies stores the access/refresh pair from a successful
// login. MaxAge is the whole number of seconds until each token's
// expiry, matching what the backend reported.
func SetTokenCookies(w http.ResponseWriter, pair types.TokenPair, now time.Time) {
	setTokenCookie(w, AccessTokenCookie, pair.Access, now)
	setTokenCookie(w, RefreshTokenCookie, pair.Refresh, now)
}

func setTokenCookie(w http.ResponseWriter, name string, token types.Token, now time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    token.Token,
		Path:     "/",
		MaxAge:   int(token.Expires.Sub(now) / time.Second),
		SameSite: http.SameSiteStrictMode,
		HttpOnly: true,
	})
}

// ClearTokenCookies expires both session cookies on logout.
func ClearTokenCookies(w http.ResponseWriter) {
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			SameSite: http.SameSiteStrictMode,
			HttpOnly: true,
		})
	}
}
