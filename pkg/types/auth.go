package types

import "time"

// LoginCredentials is the login form payload. Identifier is an email
// or student number, resolved by the backend.
type LoginCredentials struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// RegisterCredentials is the self-registration payload. Numeric-ish
// fields travel as strings, matching the backend form contract.
type RegisterCredentials struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	StudentNumber string `json:"studentNumber"`
	Department    string `json:"department"`
	Grade         string `json:"grade"`
	IsMale        string `json:"isMale" validate:"required,oneof=0 1"`
	PhoneNumber   string `json:"phoneNumber" validate:"required"`
	SkillLevel    string `json:"skillLevel" validate:"required"`
	Password      string `json:"password" validate:"required,min=6"`
}

// Token is one issued credential with its expiry instant.
type Token struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// TokenPair is the access/refresh pair issued on login. The refresh
// token is stored as a cookie but no refresh flow is implemented here.
type TokenPair struct {
	Access  Token `json:"access"`
	Refresh Token `json:"refresh"`
}
