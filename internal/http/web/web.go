// Package web serves the four browser views: inventory dashboard,
// add-product form, QR intake and assistant chat. It renders on the server
// and drives the same intake, alert and export paths as the JSON API.
package web

import (
	"context"
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rfalcao/stockwatch/internal/alert"
	"github.com/rfalcao/stockwatch/internal/auth"
	"github.com/rfalcao/stockwatch/internal/intake"
	"github.com/rfalcao/stockwatch/internal/models"
	repo "github.com/rfalcao/stockwatch/internal/repo"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Assistant is the chat view's collaborator contract.
type Assistant interface {
	Ask(ctx context.Context, products []models.Product, question string) (string, error)
}

var (
	productRepo     repo.ProductRepository
	userRepo        repo.UserRepository
	metricsRepo     repo.MetricsRepository
	reconciler      *intake.Reconciler
	sweeper         *alert.Sweeper
	assistantClient Assistant
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetReconciler(r *intake.Reconciler) {
	reconciler = r
}

func SetSweeper(s *alert.Sweeper) {
	sweeper = s
}

func SetAssistant(a Assistant) {
	assistantClient = a
}

const sessionCookie = "stockwatch_token"

// requireLogin gates the mutating browser routes behind the session cookie.
// The cookie carries the same JWT the API accepts as a bearer token; a
// missing or invalid one redirects to the login form.
func requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(sessionCookie)
		if err != nil {
			http.Redirect(w, r, "/ui/login", http.StatusSeeOther)
			return
		}
		token, err := auth.ParseToken(c.Value)
		if err != nil || !token.Valid {
			http.Redirect(w, r, "/ui/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Routes returns the router for the browser views. The read-only views are
// open; everything that mutates the store requires a logged-in session, the
// same rule the JSON API enforces with bearer tokens.
func Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", InventoryPage)
	r.Get("/chat", ChatPage)
	r.Post("/chat", ChatSubmit)
	r.Get("/login", LoginPage)
	r.Post("/login", LoginSubmit)
	r.Post("/logout", Logout)

	r.Group(func(r chi.Router) {
		r.Use(requireLogin)
		r.Post("/delete/{id}", DeleteProduct)
		r.Get("/add", AddProductPage)
		r.Post("/add", AddProductSubmit)
		r.Get("/scan", ScanPage)
		r.Post("/scan", ScanSubmit)
	})
	return r
}

func render(w http.ResponseWriter, name string, data any) {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("failed to render %s: %v", name, err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
