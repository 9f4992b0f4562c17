// Package server provides the HTTP server for the REST API
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alchemix/barkeep/internal/infrastructure/config"
	"github.com/alchemix/barkeep/internal/infrastructure/http/handlers"
	"github.com/alchemix/barkeep/internal/infrastructure/http/middleware"
	"github.com/alchemix/barkeep/internal/ports/inbound"
	"github.com/alchemix/barkeep/pkg/healthcheck"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server represents the HTTP server
type Server struct {
	config           *config.Config
	logger           *zap.Logger
	router           *chi.Mux
	server           *http.Server
	recipeService    inbound.RecipeService
	inventoryService inbound.InventoryService
	checker          *healthcheck.Checker
	metrics          *middleware.Metrics
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	recipeService inbound.RecipeService,
	inventoryService inbound.InventoryService,
	checker *healthcheck.Checker,
) *Server {
	s := &Server{
		config:           cfg,
		logger:           logger,
		recipeService:    recipeService,
		inventoryService: inventoryService,
		checker:          checker,
	}

	if cfg.Server.EnableMetrics {
		s.metrics = middleware.NewMetrics()
	}

	s.router = s.setupRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))

	if s.metrics != nil {
		r.Use(s.metrics.Handler())
		r.Handle("/metrics", promhttp.Handler())
	}

	// Health check
	healthHandlers := handlers.NewHealthHandlers(s.checker, s.logger)
	r.Get("/health", healthHandlers.HealthCheck)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.JSONOnly())
		r.Use(middleware.Identify())
		s.setupAPIRoutes(r)
	})

	return r
}

// setupAPIRoutes configures REST API routes
func (s *Server) setupAPIRoutes(r chi.Router) {
	recipeHandlers := handlers.NewRecipeHandlers(s.recipeService, s.logger)
	assistantHandlers := handlers.NewAssistantHandlers(s.recipeService, s.logger)
	inventoryHandlers := handlers.NewInventoryHandlers(s.inventoryService, s.logger)

	// Recipe CRUD and formula
	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", recipeHandlers.ListRecipes)
		r.Post("/", recipeHandlers.CreateRecipe)
		r.Get("/{id}", recipeHandlers.GetRecipe)
		r.Put("/{id}", recipeHandlers.UpdateRecipe)
		r.Delete("/{id}", recipeHandlers.DeleteRecipe)
		r.Post("/{id}/publish", recipeHandlers.PublishRecipe)
		r.Get("/{id}/formula", recipeHandlers.GetFormula)
	})

	// Assistant message linking
	r.Post("/assistant/link", assistantHandlers.LinkMessage)

	// Bar inventory
	r.Route("/bar", func(r chi.Router) {
		r.Get("/items", inventoryHandlers.ListItems)
		r.Post("/items", inventoryHandlers.AddItem)
		r.Delete("/items/{id}", inventoryHandlers.RemoveItem)
		r.Get("/mixable", inventoryHandlers.MixableRecipes)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
