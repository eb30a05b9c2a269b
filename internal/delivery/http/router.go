package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"congressprogram/internal/delivery/http/controllers"
	"congressprogram/internal/delivery/http/middleware"
	"congressprogram/internal/domain"
)

// RouterControllers bundles the controllers the router wires up.
type RouterControllers struct {
	Program      *controllers.ProgramController
	Auth         *controllers.AuthController
	Symposium    *controllers.SymposiumController
	Session      *controllers.SessionController
	Presentation *controllers.PresentationController
	Page         *controllers.PageController
}

// NewRouter initializes the HTTP router with all application routes.
// Public routes are open; /admin routes require a Bearer token with the
// admin or editor role, except the destructive feed import (admin only).
func NewRouter(c RouterControllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth(verifier, logger)
	staff := func(next http.HandlerFunc) http.HandlerFunc {
		return authed(middleware.RequireRole("admin", "editor")(next))
	}
	adminOnly := func(next http.HandlerFunc) http.HandlerFunc {
		return authed(middleware.RequireRole("admin")(next))
	}

	// Public program
	mux.HandleFunc("GET /program/days", c.Program.ListDays)
	mux.HandleFunc("GET /program/days/{day}", c.Program.GetDaySchedule)
	mux.HandleFunc("GET /program/symposiums", c.Program.ListSymposiums)
	mux.HandleFunc("GET /pages/{slug}", c.Program.GetPage)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Back office
	mux.HandleFunc("POST /admin/symposiums", staff(c.Symposium.Create))
	mux.HandleFunc("GET /admin/symposiums", staff(c.Symposium.List))
	mux.HandleFunc("PUT /admin/symposiums/{id}", staff(c.Symposium.Update))
	mux.HandleFunc("DELETE /admin/symposiums/{id}", staff(c.Symposium.Delete))

	mux.HandleFunc("POST /admin/sessions", staff(c.Session.Create))
	mux.HandleFunc("GET /admin/sessions", staff(c.Session.List))
	mux.HandleFunc("PUT /admin/sessions/{id}", staff(c.Session.Update))
	mux.HandleFunc("DELETE /admin/sessions/{id}", staff(c.Session.Delete))
	mux.HandleFunc("GET /admin/rooms", staff(c.Session.ListRooms))

	mux.HandleFunc("POST /admin/presentations", staff(c.Presentation.Create))
	mux.HandleFunc("GET /admin/presentations", staff(c.Presentation.List))
	mux.HandleFunc("PUT /admin/presentations/{id}", staff(c.Presentation.Update))
	mux.HandleFunc("DELETE /admin/presentations/{id}", staff(c.Presentation.Delete))

	mux.HandleFunc("GET /admin/pages", staff(c.Page.List))
	mux.HandleFunc("PUT /admin/pages/{slug}", staff(c.Page.Upsert))

	mux.HandleFunc("POST /admin/program/import", adminOnly(c.Session.ImportProgram))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
