package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sageplan/sage-backend/internal/api/handlers"
	custommiddleware "github.com/sageplan/sage-backend/internal/api/middleware"
	"github.com/sageplan/sage-backend/internal/config"
	"github.com/sageplan/sage-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	portfolioService *service.PortfolioService,
	scenarioService *service.ScenarioService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		profileHandler := handlers.NewProfileHandler(portfolioService)
		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", profileHandler.Profiles)
			r.Route("/{profileId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDParam("profileId"))
				r.Get("/", profileHandler.Profile)
			})
		})

		portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
		r.Route("/portfolio/{profileId}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateUUIDParam("profileId"))
			r.Get("/", portfolioHandler.Portfolio)
			r.Get("/performance", portfolioHandler.Performance)
		})

		scenarioHandler := handlers.NewScenarioHandler(scenarioService)
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/quick", scenarioHandler.QuickScenarios)
			r.Route("/{userId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDParam("userId"))
				r.Get("/", scenarioHandler.ListScenarios)
				r.Post("/", scenarioHandler.SaveScenario)
				r.Post("/project", scenarioHandler.Project)
				r.Get("/overview", scenarioHandler.Overview)
				r.Route("/{scenarioId}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDParam("scenarioId"))
					r.Get("/", scenarioHandler.GetScenario)
					r.Delete("/", scenarioHandler.DeleteScenario)
				})
			})
		})

		r.Route("/scenario-consent/{userId}", func(r chi.Router) {
			r.Use(custommiddleware.ValidateUUIDParam("userId"))
			r.Post("/", scenarioHandler.Consent)
		})

		r.Route("/shared-scenarios", func(r chi.Router) {
			r.Get("/token/{token}", scenarioHandler.ShareByToken)
			r.Route("/{advisorId}/{clientId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDParam("advisorId"))
				r.Use(custommiddleware.ValidateUUIDParam("clientId"))
				r.Get("/", scenarioHandler.SharedScenarios)
			})
		})
	})

	return r
}
