package server

import (
	"context"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"symptomcheck/internal/handlers"
	"symptomcheck/internal/handlers/api"
	"symptomcheck/internal/matcher"
	"symptomcheck/internal/middleware"
)

// Deps are the components routes are wired to.
type Deps struct {
	Matcher  *matcher.Matcher
	Pinger   api.Pinger // nil when history is in memory
	Gatherer prometheus.Gatherer
	Logger   zerolog.Logger
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, deps Deps) error {
	var verifier middleware.TokenVerifier

	// Auth routes - only when OIDC is configured
	if s.Cfg.IsOIDCEnabled() {
		authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg)
		if err != nil {
			return err
		}
		s.App.Get("/auth/login", authHandler.Login)
		s.App.Get("/auth/callback", authHandler.Callback)
		s.App.Get("/auth/logout", authHandler.Logout)
		verifier = authHandler.Verifier()
	} else {
		deps.Logger.Info().Msg("OIDC disabled, all clients share one search history")
	}

	authMiddleware := middleware.NewAuthMiddleware(verifier)
	symptomHandler := api.NewSymptomHandler(deps.Matcher, s.Cfg.RecurringThreshold, deps.Logger)
	healthHandler := api.NewHealthHandler(deps.Pinger)

	s.App.Get("/healthz", healthHandler.Check)
	if deps.Gatherer != nil {
		s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	symptoms := s.App.Group("/symptoms", authMiddleware.RequireOwner)
	symptoms.Post("/search", symptomHandler.Search)
	symptoms.Get("/history", symptomHandler.History)
	symptoms.Post("/history", symptomHandler.Record)
	symptoms.Get("/recurring", symptomHandler.Recurring)
	symptoms.Get("/common", symptomHandler.Common)
	symptoms.Get("/keywords", symptomHandler.Keywords)
	symptoms.Get("/ailments/:id", symptomHandler.Ailment)

	return nil
}
