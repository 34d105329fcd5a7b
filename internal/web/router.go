package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/players/internal/middleware"
	"github.com/mcoot/players/internal/services/roster"
	"github.com/mcoot/players/internal/web/handler"
	webmw "github.com/mcoot/players/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger *slog.Logger
	Roster *roster.Service
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.RequestID())
	r.Use(webmw.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	rosterHandler := handler.NewRosterHandler(cfg.Roster, cfg.Logger)

	r.HandleFunc("/", rosterHandler.Index).Methods(http.MethodGet)
	r.HandleFunc("/roster/{id}", rosterHandler.View).Methods(http.MethodGet)

	return r
}
