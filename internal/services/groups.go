package services

import (
	"context"
	"net/url"

	"github.com/HasanBocek/KTUTennisCRM/internal/session"
	"github.com/HasanBocek/KTUTennisCRM/pkg/gateway"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// GroupService manages coaching groups.
type GroupService struct {
	deps
}

// GroupInput is the create/update form payload.
type GroupInput struct {
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	Coaches        []string              `json:"coaches"`
	Schedule       []types.ScheduleEntry `json:"schedule"`
	MaxMembers     int                   `json:"maxMembers"`
	MembershipOpen bool                  `json:"membershipOpen"`
	Payment        types.PaymentTerms    `json:"payment"`
	Notes          string                `json:"notes,omitempty"`
}

// GroupResult carries the affected group on success.
type GroupResult struct {
	Result
	Group *types.Group
}

// GroupsResult carries a group listing.
type GroupsResult struct {
	Result
	Groups []types.Group
}

type groupPayload struct {
	Group types.Group `json:"group"`
}

// Create opens a new coaching group.
func (s *GroupService) Create(ctx context.Context, src session.TokenSource, input GroupInput) GroupResult {
	cfg, err := authConfig(src)
	if err != nil {
		return GroupResult{Result: s.unauthenticated()}
	}

	resp := gateway.Post[groupPayload](ctx, s.gw, "/group/", input, cfg)
	if !resp.Success {
		res := failureOf(resp, "Grup oluşturulamadı.")
		s.toastFailure(res)
		return GroupResult{Result: res}
	}

	res := successOf(resp, "Grup başarıyla oluşturuldu.")
	s.notifier.Success(res.Message)
	group := resp.Data.Group
	return GroupResult{Result: res, Group: &group}
}

// Update patches a group's fields.
func (s *GroupService) Update(ctx context.Context, src session.TokenSource, groupID string, input GroupInput) GroupResult {
	cfg, err := authConfig(src)
	if err != nil {
		return GroupResult{Result: s.unauthenticated()}
	}

	resp := gateway.Patch[types.Group](ctx, s.gw, "/group/"+url.PathEscape(groupID), input, cfg)
	if !resp.Success {
		res := failureOf(resp, "Grup güncellenemedi.")
		s.toastFailure(res)
		return GroupResult{Result: res}
	}

	res := successOf(resp, "Grup başarıyla güncellendi.")
	s.notifier.Success(res.Message)
	group := resp.Data
	return GroupResult{Result: res, Group: &group}
}

// Delete removes a group.
func (s *GroupService) Delete(ctx context.Context, src session.TokenSource, groupID string) Result {
	cfg, err := authConfig(src)
	if err != nil {
		return s.unauthenticated()
	}

	resp := gateway.Delete[struct{}](ctx, s.gw, "/group/"+url.PathEscape(groupID), cfg)
	if !resp.Success {
		res := failureOf(resp, "Grup silinemedi.")
		s.toastFailure(res)
		return res
	}

	res := successOf(resp, "Grup başarıyla silindi.")
	s.notifier.Success(res.Message)
	return res
}

// List fetches every group.
func (s *GroupService) List(ctx context.Context, src session.TokenSource) GroupsResult {
	cfg, err := authConfig(src)
	if err != nil {
		return GroupsResult{Result: s.unauthenticated()}
	}

	resp := gateway.Get[[]types.Group](ctx, s.gw, "/group/", cfg)
	if !resp.Success {
		return GroupsResult{Result: failureOf(resp, "Gruplar yüklenemedi.")}
	}
	return GroupsResult{Result: successOf(resp, ""), Groups: resp.Data}
}

// Get fetches one group by id.
func (s *GroupService) Get(ctx context.Context, src session.TokenSource, groupID string) GroupResult {
	cfg, err := authConfig(src)
	if err != nil {
		return GroupResult{Result: s.unauthenticated()}
	}

	resp := gateway.Get[types.Group](ctx, s.gw, "/group/"+url.PathEscape(groupID), cfg)
	if !resp.Success {
		return GroupResult{Result: failureOf(resp, "Grup yüklenemedi.")}
	}
	group := resp.Data
	return GroupResult{Result: successOf(resp, ""), Group: &group}
}
