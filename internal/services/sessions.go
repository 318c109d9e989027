package services

import (
	"context"
	"net/url"

	"github.com/HasanBocek/KTUTennisCRM/internal/session"
	"github.com/HasanBocek/KTUTennisCRM/pkg/gateway"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// SessionService reads training session listings.
type SessionService struct {
	deps
}

// MySessionsResult carries one member's personal session listing.
type MySessionsResult struct {
	Result
	Sessions []types.MySession
}

// ListForUser fetches the sessions a member appears in, each reduced
// to that member's own attendance entry.
func (s *SessionService) ListForUser(ctx context.Context, src session.TokenSource, userID string) MySessionsResult {
	cfg, err := authConfig(src)
	if err != nil {
		return MySessionsResult{Result: s.unauthenticated()}
	}

	resp := gateway.Get[[]types.MySession](ctx, s.gw, "/session/user/"+url.PathEscape(userID), cfg)
	if !resp.Success {
		return MySessionsResult{Result: failureOf(resp, "Dersler yüklenemedi.")}
	}
	return MySessionsResult{Result: successOf(resp, ""), Sessions: resp.Data}
}
