package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/HasanBocek/KTUTennisCRM/api/controllers"
	"github.com/HasanBocek/KTUTennisCRM/api/middleware"
	"github.com/HasanBocek/KTUTennisCRM/pkg/config"
	"github.com/HasanBocek/KTUTennisCRM/pkg/gateway"
	"github.com/HasanBocek/KTUTennisCRM/pkg/logger"
)

// Params collects the router dependencies.
type Params struct {
	Config      *config.Config
	Logger      *logger.Logger
	Gateway     *gateway.Client
	Controllers *controllers.Controllers
	RedisPinger controllers.Pinger
	Registry    *prometheus.Registry
}

// NewRouter assembles the full route tree.
func NewRouter(p Params) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
	)

	c := p.Controllers

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, p.RedisPinger))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", c.LoginPage)
		r.Post("/login", c.Login)
		r.Post("/logout", c.Logout)
		r.Post("/register", c.Register)
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(middleware.CurrentUser(p.Gateway, p.Logger), middleware.RequireUser)

		r.Get("/profile", c.ProfilePage)
		r.Get("/sessions", c.MySessionsPage)
		r.Get("/courses/groups", c.OpenGroupsPage)

		r.Route("/management", func(r chi.Router) {
			r.Get("/users", c.UsersPage)
			r.Get("/groups", c.GroupsPage)
			r.Get("/groups/{groupID}", c.GroupPage)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CurrentUser(p.Gateway, p.Logger), middleware.RequireUser)

		r.Patch("/profile", c.ProfileUpdate)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", c.UserCreate)
			r.Patch("/{userID}", c.UserUpdate)
			r.Patch("/{userID}/email", c.UserEmailUpdate)
			r.Delete("/{userID}", c.UserDelete)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Post("/", c.GroupCreate)
			r.Patch("/{groupID}", c.GroupUpdate)
			r.Delete("/{groupID}", c.GroupDelete)
		})

		r.Get("/sessions/user/{userID}", c.UserSessions)
		r.Put("/sessions/{sessionID}/user/{userID}/attendance", c.AttendanceUpdate)

		r.Route("/layout", func(r chi.Router) {
			r.Post("/theme", c.SetTheme)
			r.Post("/sidebar", c.SetSidebarSize)
			r.Post("/reset", c.ResetLayout)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard/profile", http.StatusSeeOther)
	})

	return r
}
