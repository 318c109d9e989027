package services

import (
	"context"

	"github.com/HasanBocek/KTUTennisCRM/pkg/gateway"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

// AuthService covers the unauthenticated entry points. Neither call
// resolves a token; the caller owns cookie handling on success.
type AuthService struct {
	deps
}

// LoginResult carries the issued token pair on success.
type LoginResult struct {
	Result
	Tokens *types.TokenPair
}

// RegisterResult carries the new user's backend id on success.
type RegisterResult struct {
	Result
	UserID string
}

type loginPayload struct {
	Tokens types.TokenPair `json:"tokens"`
}

type registerPayload struct {
	UserID string `json:"userId"`
}

// Login exchanges credentials for a token pair. The identifier may be
// an email address or a student number; the backend resolves it.
func (s *AuthService) Login(ctx context.Context, credentials types.LoginCredentials) LoginResult {
	resp := gateway.Post[loginPayload](ctx, s.gw, "/auth/login", credentials, gateway.Config{})
	if !resp.Success {
		return LoginResult{Result: failureOf(resp, "Bir hata oluştu. Lütfen tekrar deneyin.")}
	}
	tokens := resp.Data.Tokens
	return LoginResult{
		Result: successOf(resp, "Giriş başarılı"),
		Tokens: &tokens,
	}
}

// Register creates a self-service account.
func (s *AuthService) Register(ctx context.Context, credentials types.RegisterCredentials) RegisterResult {
	resp := gateway.Post[registerPayload](ctx, s.gw, "/auth/register", credentials, gateway.Config{})
	if !resp.Success {
		return RegisterResult{Result: failureOf(resp, "Kayıt işlemi başarısız oldu.")}
	}
	return RegisterResult{
		Result: successOf(resp, "Kayıt başarılı"),
		UserID: resp.Data.UserID,
	}
}
