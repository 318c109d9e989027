package types

import "time"

// User is the client-side copy of a club member as returned by the
// backend. IDs are always backend-assigned; the client never creates
// one. IsMale travels as "1"/"0" on the wire.
type User struct {
	ID              string           `json:"_id"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	IsMale          string           `json:"isMale"`
	PhoneNumber     string           `json:"phoneNumber"`
	Email           string           `json:"email"`
	Roles           []string         `json:"roles"`
	StudentNumber   int              `json:"studentNumber,omitempty"`
	IsStudent       bool             `json:"isStudent"`
	Department      string           `json:"department,omitempty"`
	Grade           string           `json:"grade,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	LastLoginAt     time.Time        `json:"lastLoginAt"`
	SkillLevel      int              `json:"skillLevel"`
	Notes           string           `json:"notes,omitempty"`
	IsEmailVerified bool             `json:"isEmailVerified"`
	Memberships     []UserMembership `json:"memberships,omitempty"`
}

func (u User) EntityID() string { return u.ID }

// HasRole reports whether the user's role set contains the given role id.
func (u User) HasRole(roleID string) bool {
	for _, r := range u.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}

// FullName joins the display name parts.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserMembership is the membership summary embedded in a user payload.
type UserMembership struct {
	ID       string    `json:"_id"`
	JoinDate time.Time `json:"joinDate"`
	Group    Group     `json:"group"`
	Status   string    `json:"status"`
}

// UserSummary is the trimmed user reference embedded in memberships
// and session rosters.
type UserSummary struct {
	ID            string `json:"_id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	IsMale        string `json:"isMale"`
	PhoneNumber   string `json:"phoneNumber"`
	StudentNumber int    `json:"studentNumber,omitempty"`
}

// Me is the authenticated user's own profile. Same shape as User minus
// the admin-only notes field.
type Me struct {
	ID              string           `json:"_id"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	IsMale          string           `json:"isMale"`
	PhoneNumber     string           `json:"phoneNumber"`
	Email           string           `json:"email"`
	Roles           []string         `json:"roles"`
	StudentNumber   int              `json:"studentNumber,omitempty"`
	IsStudent       bool             `json:"isStudent"`
	Department      string           `json:"department,omitempty"`
	Grade           string           `json:"grade,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	LastLoginAt     time.Time        `json:"lastLoginAt"`
	SkillLevel      int              `json:"skillLevel"`
	IsEmailVerified bool             `json:"isEmailVerified"`
	Memberships     []UserMembership `json:"memberships,omitempty"`
}

// HasRole reports whether the profile's role set contains the role id.
func (m Me) HasRole(roleID string) bool {
	for _, r := range m.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}
