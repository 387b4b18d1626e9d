// Package app contains the application setup for the Smartshoper services.
package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/smartshoper/smartshoper/internal/account"
	"github.com/smartshoper/smartshoper/internal/catalog"
	"github.com/smartshoper/smartshoper/internal/config"
	"github.com/smartshoper/smartshoper/internal/search"
	"github.com/smartshoper/smartshoper/internal/transport/rest"
	"github.com/smartshoper/smartshoper/internal/wishlist"
	"github.com/smartshoper/smartshoper/pkg/kvstore"
	"github.com/smartshoper/smartshoper/pkg/server"
)

type Dependencies struct {
	Catalog  *catalog.Service
	Search   *search.Service
	Wishlist *wishlist.Service
	Accounts *account.Service
	Logger   *slog.Logger
}

// SetupDependencies wires the core services over the given store. The
// catalog is initialized here: loaded from storage or synthesized.
func SetupDependencies(ctx context.Context, store kvstore.Store, cfg *config.Config, logger *slog.Logger) *Dependencies {
	cat := catalog.NewService(store, logger, cfg.Catalog.Size, cfg.Catalog.Seed)
	cat.Init(ctx)

	return &Dependencies{
		Catalog:  cat,
		Search:   search.NewService(ctx, cat, store, logger),
		Wishlist: wishlist.NewService(ctx, store, logger),
		Accounts: account.NewService(ctx, store, logger),
		Logger:   logger,
	}
}

// SetupHttpHandler initializes the HTTP routes over the core services.
// Used by tests to exercise the full handler stack without a listener.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(deps.Catalog, deps.Search, deps.Wishlist, deps.Accounts, deps.Logger)
	handler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures the HTTP server for the application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
