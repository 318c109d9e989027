package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgerrors "github.com/HasanBocek/KTUTennisCRM/pkg/errors"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
	"github.com/golang-jwt/jwt/v5"
)

func requestWithCookie(name, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if name != "" {
		r.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return r
}

func TestRequestTokenSourceMissingCookie(t *testing.T) {
	src := FromRequest(requestWithCookie("", ""))
	if _, err := src.AccessToken(); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRequestTokenSourceBlankCookie(t *testing.T) {
	src := FromRequest(requestWithCookie(AccessTokenCookie, "  "))
	if _, err := src.AccessToken(); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestRequestTokenSourceOpaqueTokenPassesThrough(t *testing.T) {
	src := FromRequest(requestWithCookie(AccessTokenCookie, "opaque-token"))
	token, err := src.AccessToken()
	if err != nil || token != "opaque-token" {
		t.Fatalf("unexpected result %q %v", token, err)
	}
}

func TestRequestTokenSourceRejectsExpiredJWT(t *testing.T) {
	expiredToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}).SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	src := FromRequest(requestWithCookie(AccessTokenCookie, expiredToken))
	if _, err := src.AccessToken(); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}

	typed := pkgerrors.As(ErrUnauthenticated)
	if typed.Code() != pkgerrors.CodeAuth {
		t.Fatalf("unexpected taxonomy code %s", typed.Code())
	}
}

func TestRequestTokenSourceAcceptsLiveJWT(t *testing.T) {
	liveToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("irrelevant"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	src := FromRequest(requestWithCookie(AccessTokenCookie, liveToken))
	if _, err := src.AccessToken(); err != nil {
		t.Fatalf("live token must pass: %v", err)
	}
}

func TestStaticTokenSource(t *testing.T) {
	if _, err := StaticTokenSource("").AccessToken(); !errors.Is(err, ErrUnauthenticated) {
		t.Fatal("blank static token must be unauthenticated")
	}
	token, err := StaticTokenSource("abc").AccessToken()
	if err != nil || token != "abc" {
		t.Fatalf("unexpected %q %v", token, err)
	}
}

func TestSetTokenCookiesMaxAge(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	pair := types.TokenPair{
		Access:  types.Token{Token: "abc", Expires: now.Add(time.Hour)},
		Refresh: types.Token{Token: "def", Expires: now.Add(30 * 24 * time.Hour)},
	}

	rec := httptest.NewRecorder()
	SetTokenCookies(rec, pair, now)

	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("expected 2 cookies, got %d", len(cookies))
	}

	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
	}

	access := byName[AccessTokenCookie]
	if access == nil || access.Value != "abc" {
		t.Fatalf("missing access cookie: %+v", byName)
	}
	if access.MaxAge != 3600 {
		t.Fatalf("access max-age %d, want 3600", access.MaxAge)
	}
	if access.SameSite != http.SameSiteStrictMode || access.Path != "/" {
		t.Fatalf("unexpected cookie attributes %+v", access)
	}

	refresh := byName[RefreshTokenCookie]
	if refresh == nil || refresh.MaxAge != 30*24*3600 {
		t.Fatalf("unexpected refresh cookie %+v", refresh)
	}
}

func TestClearTokenCookies(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearTokenCookies(rec)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 || c.Value != "" {
			t.Fatalf("cookie %s not cleared: %+v", c.Name, c)
		}
	}
}
