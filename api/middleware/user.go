package middleware

import (
	"context"
	"net/http"

	"github.com/HasanBocek/KTUTennisCRM/internal/session"
	"github.com/HasanBocek/KTUTennisCRM/pkg/gateway"
	"github.com/HasanBocek/KTUTennisCRM/pkg/logger"
	"github.com/HasanBocek/KTUTennisCRM/pkg/types"
)

type contextKey string

const userContextKey contextKey = "current_user"

// LoginPath is where unauthenticated page requests are redirected.
const LoginPath = "/auth/login"

// CurrentUser resolves the caller's profile from the backend using
// the access token cookie and stores it in the request context.
// Requests without a usable session pass through with no user; pages
// that need one gate on RequireUser.
func CurrentUser(gw *gateway.Client, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := session.FromRequest(r).AccessToken()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			resp := gateway.Get[types.Me](ctx, gw, "/user/me", gateway.Config{AccessToken: token})
			if !resp.Success {
				if logg != nil {
					logg.Debug(ctx, "current user lookup failed, treating as anonymous")
				}
				next.ServeHTTP(w, r)
				return
			}

			me := resp.Data
			ctx = context.WithValue(ctx, userContextKey, &me)
			if logg != nil {
				ctx = logg.WithUserID(ctx, me.ID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFrom returns the resolved profile, if any.
func UserFrom(ctx context.Context) (*types.Me, bool) {
	me, ok := ctx.Value(userContextKey).(*types.Me)
	return me, ok && me != nil
}

// WithUser stores a profile in the context. Exposed for tests and for
// handlers that resolve the user themselves.
func WithUser(ctx context.Context, me *types.Me) context.Context {
	return context.WithValue(ctx, userContextKey, me)
}

// RequireUser redirects anonymous page requests to the login page.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFrom(r.Context()); !ok {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
