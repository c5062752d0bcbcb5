package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/accountpro/accountpro/internal/web"
)

// NewRouter assembles the HTML, API and health routes with the shared
// middleware stack. Account ids are constrained to digits at the route
// level, so non-numeric ids fall through to the 404 page.
func NewRouter(logger *slog.Logger, renderer *web.Renderer, pages *PageHandler, api *APIHandler, health *HealthHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(logger, renderer))

	r.NotFound(pages.NotFound)

	r.Get("/", pages.Dashboard)
	r.Get("/accounts", pages.ListAccounts)

	r.Route("/account", func(r chi.Router) {
		r.Get("/create", pages.NewAccountForm)
		r.Post("/create", pages.CreateAccount)

		r.Route("/{id:[0-9]+}", func(r chi.Router) {
			r.Get("/", pages.ViewAccount)
			r.Get("/edit", pages.EditAccountForm)
			r.Post("/edit", pages.EditAccount)
			r.Post("/delete", pages.DeleteAccount)
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
		}))
		r.Get("/accounts", api.ListAccounts)
		r.Get("/account/{id:[0-9]+}", api.GetAccount)
		r.Get("/stats", api.Stats)
	})

	r.Get("/health", health.Health)

	return r
}
