package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/HasanBocek/KTUTennisCRM/api/responses"
	"github.com/HasanBocek/KTUTennisCRM/api/validators"
	"github.com/HasanBocek/KTUTennisCRM/internal/services"
	"github.com/HasanBocek/KTUTennisCRM/internal/session"
	"github.com/HasanBocek/KTUTennisCRM/internal/validation"
	pkgerrors "github.com/HasanBocek/KTUTennisCRM/pkg/errors"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// UsersPage loads the member list into the collection and renders it.
func (c *Controllers) UsersPage(w http.ResponseWriter, r *http.Request) {
	res := c.svcs.Users.List(r.Context(), session.FromRequest(r))
	if res.Success {
		c.state.Users.Initialize(res.Users)
	}
	c.render(w, r, "users", "Üye Yönetimi", c.state.Users.Items())
}

// userBody is the JSON mutation payload for member management.
type userBody struct {
	FirstName       string   `json:"firstName" validate:"required"`
	LastName        string   `json:"lastName" validate:"required"`
	Email           string   `json:"email" validate:"required"`
	IsMale          string   `json:"isMale" validate:"required,oneof=0 1"`
	IsStudent       bool     `json:"isStudent"`
	PhoneNumber     string   `json:"phoneNumber" validate:"required"`
	StudentNumber   int      `json:"studentNumber"`
	Department      string   `json:"department"`
	Grade           string   `json:"grade"`
	SkillLevel      int      `json:"skillLevel" validate:"required"`
	IsEmailVerified bool     `json:"isEmailVerified"`
	Roles           []string `json:"roles"`
	Notes           string   `json:"notes"`
}

func (b userBody) profile() types.User {
	return types.User{
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		IsMale:        b.IsMale,
		IsStudent:     b.IsStudent,
		PhoneNumber:   b.PhoneNumber,
		StudentNumber: b.StudentNumber,
		Department:    b.Department,
		Grade:         b.Grade,
		SkillLevel:    b.SkillLevel,
		Roles:         b.Roles,
	}
}

func (b userBody) input() services.UserInput {
	return services.UserInput{
		FirstName:       b.FirstName,
		LastName:        b.LastName,
		Email:           b.Email,
		IsMale:          b.IsMale,
		IsStudent:       b.IsStudent,
		PhoneNumber:     b.PhoneNumber,
		StudentNumber:   b.StudentNumber,
		Department:      b.Department,
		Grade:           b.Grade,
		SkillLevel:      strconv.Itoa(b.SkillLevel),
		IsEmailVerified: b.IsEmailVerified,
		Roles:           b.Roles,
		Notes:           b.Notes,
	}
}

// decodeUserBody decodes the payload and runs the profile rules,
// collecting every violation before anything is sent upstream.
func (c *Controllers) decodeUserBody(r *http.Request) (userBody, error) {
	var body userBody
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		return body, err
	}
	if check := validation.ValidateUserProfile(body.profile()); !check.Valid {
		return body, pkgerrors.New(pkgerrors.CodeValidation, "Doğrulama hatası").WithDetails(check.Errors...)
	}
	if body.Email != "" {
		if check := validation.ValidateEmail(body.Email); !check.Valid {
			return body, pkgerrors.New(pkgerrors.CodeValidation, "Doğrulama hatası").WithDetails(check.Errors...)
		}
	}
	return body, nil
}

// UserCreate registers a member and prepends it to the collection.
func (c *Controllers) UserCreate(w http.ResponseWriter, r *http.Request) {
	body, err := c.decodeUserBody(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	res := c.svcs.Users.Create(r.Context(), session.FromRequest(r), body.input())
	if !res.Success {
		responses.WriteFailure(w, http.StatusBadRequest, res.Message, res.Errors)
		return
	}

	c.state.Users.Add(*res.User)
	responses.WriteSuccess(w, res.Message, res.User)
}

// UserUpdate patches a member and replaces the cached copy in place.
func (c *Controllers) UserUpdate(w http.ResponseWriter, r *http.Request) {
	body, err := c.decodeUserBody(r)
	if err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}

	userID := chi.URLParam(r, "userID")
	res := c.svcs.Users.Update(r.Context(), session.FromRequest(r), userID, body.input())
	if !res.Success {
		responses.WriteFailure(w, http.StatusBadRequest, res.Message, res.Errors)
		return
	}

	c.state.Users.Replace(*res.User)
	responses.WriteSuccess(w, res.Message, res.User)
}

type userEmailBody struct {
	Email           string `json:"email" validate:"required"`
	IsEmailVerified bool   `json:"isEmailVerified"`
}

// UserEmailUpdate changes a member's address through the dedicated
// endpoint.
func (c *Controllers) UserEmailUpdate(w http.ResponseWriter, r *http.Request) {
	var body userEmailBody
	if err := validators.DecodeJSONBody(r, &body); err != nil {
		responses.WriteError(r.Context(), c.logg, w, err)
		return
	}
	if check := validation.ValidateEmail(body.Email); !check.Valid {
		responses.WriteError(r.Context(), c.logg, w,
			pkgerrors.New(pkgerrors.CodeValidation, "Doğrulama hatası").WithDetails(check.Errors...))
		return
	}

	userID := chi.URLParam(r, "userID")
	res := c.svcs.Users.UpdateEmail(r.Context(), session.FromRequest(r), userID, body.Email, body.IsEmailVerified)
	if !res.Success {
		responses.WriteFailure(w, http.StatusBadRequest, res.Message, res.Errors)
		return
	}

	c.state.Users.Replace(*res.User)
	responses.WriteSuccess(w, res.Message, res.User)
}

// UserDelete removes a member from the backend and the collection.
func (c *Controllers) UserDelete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	res := c.svcs.Users.Delete(r.Context(), session.FromRequest(r), userID)
	if !res.Success {
		responses.WriteFailure(w, http.StatusBadRequest, res.Message, res.Errors)
		return
	}

	c.state.Users.Delete(userID)
	responses.WriteSuccess(w, res.Message, nil)
}
