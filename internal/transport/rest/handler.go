// Package rest exposes the core services over HTTP. It is the stand-in for
// the presentation layer: the core packages never depend on it.
package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/smartshoper/smartshoper/internal/account"
	"github.com/smartshoper/smartshoper/internal/catalog"
	"github.com/smartshoper/smartshoper/pkg/web"
)

// CatalogService is the catalog surface the handlers consume.
type CatalogService interface {
	Product(id string) (*catalog.Product, error)
	Categories() []catalog.Category
	Category(id string) (*catalog.Category, error)
	ProductsByCategory(id string) []catalog.Product
	Featured(limit int) []catalog.Product
	TodaysDeals(limit int) []catalog.Product
}

// SearchService is the query/search surface the handlers consume.
type SearchService interface {
	Search(query string, f catalog.Filter, key catalog.SortKey) []catalog.Product
	Suggestions(query string) []string
	Remember(ctx context.Context, query string) error
	History() []string
}

// WishlistService is the wishlist surface the handlers consume.
type WishlistService interface {
	Add(ctx context.Context, id string) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
	Toggle(ctx context.Context, id string) (bool, error)
	List() []string
	Count() int
}

// AccountService is the authentication surface the handlers consume.
type AccountService interface {
	SignUp(ctx context.Context, name, email, password string) (*account.Profile, error)
	LogIn(ctx context.Context, email, password string) (*account.Profile, error)
	LogOut(ctx context.Context) error
	Current(ctx context.Context) *account.Profile
}

type Handler struct {
	catalog  CatalogService
	search   SearchService
	wishlist WishlistService
	accounts AccountService
	validate *validator.Validate
	logger   *slog.Logger
}

// NewHandler creates the HTTP handler set over the core services.
func NewHandler(cat CatalogService, search SearchService, wishlist WishlistService, accounts AccountService, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:  cat,
		search:   search,
		wishlist: wishlist,
		accounts: accounts,
		validate: validator.New(),
		logger:   logger.With("component", "rest"),
	}
}

// RegisterRoutes registers the HTTP routes for the application.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.SearchProducts)
			r.Get("/featured", h.Featured)
			r.Get("/deals", h.TodaysDeals)
			r.Get("/{id}", h.FindProduct)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.Categories)
			r.Get("/{id}", h.FindCategory)
			r.Get("/{id}/products", h.ProductsByCategory)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", h.Wishlist)
			r.Put("/{id}", h.AddToWishlist)
			r.Delete("/{id}", h.RemoveFromWishlist)
			r.Post("/{id}/toggle", h.ToggleWishlist)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", h.SignUp)
			r.Post("/login", h.LogIn)
			r.Post("/logout", h.LogOut)
			r.Get("/me", h.Me)
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/suggestions", h.Suggestions)
			r.Get("/history", h.SearchHistory)
		})
	})

	r.Get("/healthz", h.HealthCheck)
}

// HealthCheck responds with a simple status to indicate the service is up.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	web.RespondJSON(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}

// loggerWithReqID returns the handler logger enriched with the request id.
func (h *Handler) loggerWithReqID(r *http.Request) *slog.Logger {
	if reqID, ok := web.GetRequestID(r.Context()); ok {
		return h.logger.With("request_id", reqID)
	}
	return h.logger
}
