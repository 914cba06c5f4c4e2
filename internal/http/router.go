package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rfalcao/stockwatch/internal/http/handlers"
	"github.com/rfalcao/stockwatch/internal/http/web"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// NewRouter wires the JSON API, the swagger UI and the four browser views.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RateLimitMiddleware)

	// Read-only API surface.
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/export", handlers.ExportProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)
	r.Get("/alerts/recent", handlers.GetRecentAlertsHandler)
	r.Post("/assistant", handlers.AskAssistantHandler)

	r.Post("/auth/register", handlers.RegisterHandler)
	r.Post("/auth/login", handlers.LoginHandler)

	// Mutating API surface, behind the bearer token.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/products/intake", handlers.IntakeProductHandler)
		r.Post("/products/intake/qr", handlers.ScanQRHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	// Browser views.
	r.Mount("/ui", web.Routes())
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/ui", http.StatusFound)
	})

	return r
}
