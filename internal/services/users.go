package services

import (
	"context"
	"net/url"

	"github.com/HasanBocek/KTUTennisCRM/internal/session"
	"github.com/HasanBocek/KTUTennisCRM/pkg/gateway"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// UserService is the member-management façade. Every call requires an
// authenticated session; authorization itself lives in the backend.
type UserService struct {
	deps
}

// UserInput is the create/update form payload. SkillLevel travels as
// a string, matching the backend form contract.
type UserInput struct {
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Email           string   `json:"email"`
	IsMale          string   `json:"isMale"`
	IsStudent       bool     `json:"isStudent"`
	PhoneNumber     string   `json:"phoneNumber"`
	StudentNumber   int      `json:"studentNumber,omitempty"`
	Department      string   `json:"department,omitempty"`
	Grade           string   `json:"grade,omitempty"`
	SkillLevel      string   `json:"skillLevel"`
	IsEmailVerified bool     `json:"isEmailVerified"`
	Roles           []string `json:"roles"`
	Notes           string   `json:"notes,omitempty"`
}

type emailUpdate struct {
	Email           string `json:"email"`
	IsEmailVerified bool   `json:"isEmailVerified"`
}

// UserResult carries the affected user on success.
type UserResult struct {
	Result
	User *types.User
}

// UsersResult carries a member listing.
type UsersResult struct {
	Result
	Users []types.User
}

// MeResult carries the caller's own profile.
type MeResult struct {
	Result
	Me *types.Me
}

// Create registers a member on behalf of the management.
func (s *UserService) Create(ctx context.Context, src session.TokenSource, input UserInput) UserResult {
	cfg, err := authConfig(src)
	if err != nil {
		return UserResult{Result: s.unauthenticated()}
	}

	resp := gateway.Post[types.User](ctx, s.gw, "/user/", input, cfg)
	if !resp.Success {
		res := failureOf(resp, "Kullanıcı oluşturulamadı.")
		s.toastFailure(res)
		return UserResult{Result: res}
	}

	res := successOf(resp, "Kullanıcı başarıyla oluşturuldu.")
	s.notifier.Success(res.Message)
	user := resp.Data
	return UserResult{Result: res, User: &user}
}

// Update patches a member's profile fields.
func (s *UserService) Update(ctx context.Context, src session.TokenSource, userID string, input UserInput) UserResult {
	cfg, err := authConfig(src)
	if err != nil {
		return UserResult{Result: s.unauthenticated()}
	}

	resp := gateway.Patch[types.User](ctx, s.gw, "/user/"+url.PathEscape(userID), input, cfg)
	if !resp.Success {
		res := failureOf(resp, "Kullanıcı güncellenemedi.")
		s.toastFailure(res)
		return UserResult{Result: res}
	}

	res := successOf(resp, "Kullanıcı başarıyla güncellendi.")
	s.notifier.Success(res.Message)
	user := resp.Data
	return UserResult{Result: res, User: &user}
}

// UpdateEmail changes a member's address and verification flag
// through the dedicated endpoint.
func (s *UserService) UpdateEmail(ctx context.Context, src session.TokenSource, userID, email string, verified bool) UserResult {
	cfg, err := authConfig(src)
	if err != nil {
		return UserResult{Result: s.unauthenticated()}
	}

	body := emailUpdate{Email: email, IsEmailVerified: verified}
	resp := gateway.Patch[types.User](ctx, s.gw, "/user/"+url.PathEscape(userID)+"/email", body, cfg)
	if !resp.Success {
		res := failureOf(resp, "E-posta güncellenemedi.")
		s.toastFailure(res)
		return UserResult{Result: res}
	}

	res := successOf(resp, "E-posta başarıyla güncellendi.")
	s.notifier.Success(res.Message)
	user := resp.Data
	return UserResult{Result: res, User: &user}
}

// Delete removes a member.
func (s *UserService) Delete(ctx context.Context, src session.TokenSource, userID string) Result {
	cfg, err := authConfig(src)
	if err != nil {
		return s.unauthenticated()
	}

	resp := gateway.Delete[struct{}](ctx, s.gw, "/user/"+url.PathEscape(userID), cfg)
	if !resp.Success {
		res := failureOf(resp, "Kullanıcı silinemedi.")
		s.toastFailure(res)
		return res
	}

	res := successOf(resp, "Kullanıcı başarıyla silindi.")
	s.notifier.Success(res.Message)
	return res
}

// List fetches every member. Reads do not toast; the page renders the
// failure inline.
func (s *UserService) List(ctx context.Context, src session.TokenSource) UsersResult {
	cfg, err := authConfig(src)
	if err != nil {
		return UsersResult{Result: s.unauthenticated()}
	}

	resp := gateway.Get[[]types.User](ctx, s.gw, "/user/", cfg)
	if !resp.Success {
		return UsersResult{Result: failureOf(resp, "Kullanıcılar yüklenemedi.")}
	}
	return UsersResult{Result: successOf(resp, ""), Users: resp.Data}
}

// Get fetches one member by id.
func (s *UserService) Get(ctx context.Context, src session.TokenSource, userID string) UserResult {
	cfg, err := authConfig(src)
	if err != nil {
		return UserResult{Result: s.unauthenticated()}
	}

	resp := gateway.Get[types.User](ctx, s.gw, "/user/"+url.PathEscape(userID), cfg)
	if !resp.Success {
		return UserResult{Result: failureOf(resp, "Kullanıcı yüklenemedi.")}
	}
	user := resp.Data
	return UserResult{Result: successOf(resp, ""), User: &user}
}

// Me fetches the caller's own profile.
func (s *UserService) Me(ctx context.Context, src session.TokenSource) MeResult {
	cfg, err := authConfig(src)
	if err != nil {
		return MeResult{Result: s.unauthenticated()}
	}

	resp := gateway.Get[types.Me](ctx, s.gw, "/user/me", cfg)
	if !resp.Success {
		return MeResult{Result: failureOf(resp, "Profil yüklenemedi.")}
	}
	me := resp.Data
	return MeResult{Result: successOf(resp, ""), Me: &me}
}
