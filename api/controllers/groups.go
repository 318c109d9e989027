package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HasanBocek/KTUTennisCRM/api/responses"
	"github.com/HasanBocek/KTUTennisCRM/api/validators"
	"github.com/HasanBocek/KTUTennisCRM/internal/services"
	"github.com/HasanBocek/KTUTennisCRM/internal/session"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// GroupsPage loads every group into the collection and renders the
// management table.
func (c *Controllers) GroupsPage(w http.ResponseWriter, r *http.Request) {
	res := c.svcs.Groups.List(r.Context(), session.FromRequest(r))
	if res.Success {
		c.state.Groups.Initialize(res.Groups)
	}
	c.render(w, r, "groups", "Grup Yönetimi", c.state.Groups.Items())
}

// OpenGroupsPage renders only groups accepting applications.
func (c *Controllers) OpenGroupsPage(w http.ResponseWriter, r *http.Request) {
	res := c.svcs.Groups.List(r.Context(), session.FromRequest(r))
	if res.Success {
		c.state.Groups.Initialize(res.Groups)
	}
	c.render(w, r, "groups", "Grup Başvurusu", c.state.Groups.Open.Get())
}

// GroupPage renders one group's detail. Always fetched with the
// requester's token so the backend authorizes every view; the shared
// collection only refreshes from the result.
func (c *Controllers) GroupPage(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	res := c.svcs.Groups.Get(r.Context(), session.FromRequest(r), groupID)
	if !res.Success {
		c.render(w, r, "error", "Hata", res.Message)
		return
	}

	c.state.Groups.Replace(*res.Group)
	c.render(w, r, "group", res.Group.Name, res.Group)
}

type groupBody struct {
	Name           string                `json:"name" validate:"required"`
	Description    string                `json:"description"`
	Coaches        []string              `json:"coaches"`
	Schedule       []types.ScheduleEntry `json:"schedule"`
	MaxMembers     int                   `json:"maxMembers" validate:"required,min=1"`
	MembershipOpen bool                  `json:"membershipOpen"`
	Payment        types.PaymentTerms    `json:"payment"`
	Notes          string                `json:"notes"`
}

func (b groupBody) input() services.GroupInput {
	return services.GroupInput{
		Name:           b.Name,
		Description:    b.Description,
		Coaches:        b.Coaches,
		Schedule:       b.Schedule,
		MaxMembers:     b.MaxMembers,
		MembershipOpen: b.MembershipOpen,
		Payment:        b.Payment,
		Notes:          b.Notes,
	}
}

// GroupCreate opens a new group and prepends it to the collection.
func (c *Controllers) GroupCreate(w http.ResponseWriter, r *http.Request) {
	var body groupBody
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	res := c.svcs.Groups.Create(r.Context(), session.FromRequest(r), body.input())
	if !res.Success {
		responses.WriteFailure(w, http.StatusBadRequest, res.Message, res.Errors)
		return
	}

	c.state.Groups.Add(*res.Group)
	responses.WriteSuccess(w, res.Message, res.Group)
}

// GroupUpdate patches a group and replaces the cached copy.
func (c *Controllers) GroupUpdate(w http.ResponseWriter, r *http.Request) {
	var body groupBody
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	groupID := chi.URLParam(r, "groupID")
	res := c.svcs.Groups.Update(r.Context(), session.FromRequest(r), groupID, body.input())
	if !res.Success {
		responses.WriteFailure(w, http.StatusBadRequest, res.Message, res.Errors)
		return
	}

	c.state.Groups.Replace(*res.Group)
	responses.WriteSuccess(w, res.Message, res.Group)
}

// GroupDelete removes a group.
func (c *Controllers) GroupDelete(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	res := c.svcs.Groups.Delete(r.Context(), session.FromRequest(r), groupID)
	if !res.Success {
		responses.WriteFailure(w, http.StatusBadRequest, res.Message, res.Errors)
		return
	}

	c.state.Groups.Delete(groupID)
	responses.WriteSuccess(w, res.Message, nil)
}
