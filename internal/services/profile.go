package services

import (
	"context"

	"github.com/HasanBocek/KTUTennisCRM/internal/session"
	"github.com/HasanBocek/KTUTennisCRM/pkg/gateway"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// ProfileService lets the authenticated user edit their own profile.
type ProfileService struct {
	deps
}

// ProfilePatch is the partial update payload for /user/me. Pointer
// fields are omitted from the request when nil, so the backend only
// sees what actually changed.
type ProfilePatch struct {
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	IsMale        *string `json:"isMale,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	IsStudent     *bool   `json:"isStudent,omitempty"`
	StudentNumber *int    `json:"studentNumber,omitempty"`
	Department    *string `json:"department,omitempty"`
	Grade         *string `json:"grade,omitempty"`
	SkillLevel    *int    `json:"skillLevel,omitempty"`
}

// ProfileResult carries the updated profile echoed by the backend.
type ProfileResult struct {
	Result
	Updated *types.Me
}

// Update patches the caller's own profile and toasts the outcome.
func (s *ProfileService) Update(ctx context.Context, src session.TokenSource, patch ProfilePatch) ProfileResult {
	cfg, err := authConfig(src)
	if err != nil {
		return ProfileResult{Result: s.unauthenticated()}
	}

	resp := gateway.Patch[types.Me](ctx, s.gw, "/user/me", patch, cfg)
	if !resp.Success {
		res := failureOf(resp, "Profil güncellenemedi.")
		s.toastFailure(res)
		return ProfileResult{Result: res}
	}

	res := successOf(resp, "Profil başarıyla güncellendi.")
	s.notifier.Success(res.Message)
	updated := resp.Data
	return ProfileResult{Result: res, Updated: &updated}
}
