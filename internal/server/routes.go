package server

import (
	"github.com/namewastaken/namewastaken/internal/core/engine"
	"github.com/namewastaken/namewastaken/internal/server/handlers"
)

// registerRoutes registers all HTTP routes
func (s *Server) registerRoutes(eng *engine.Orchestrator, cacheEnabled bool) {
	check := &handlers.CheckHandler{
		Engine:       eng,
		CacheEnabled: cacheEnabled,
	}

	s.router.Get("/api/check", check.CheckGet)
	s.router.Post("/api/check", check.CheckPost)
	s.router.Get("/api/platforms", handlers.PlatformsHandler)

	s.router.Get("/health", s.health.HealthHandler)
	s.router.Get("/health/live", s.health.LivenessHandler)
	s.router.Get("/health/ready", s.health.ReadinessHandler)

	s.router.Get("/version", handlers.VersionHandler)
}
