package api

import (
	"net/http"
	"time"

	"euler_offline/internal/api/handler"
	"euler_offline/internal/app/service"
	"euler_offline/internal/common"
	"euler_offline/internal/common/security"
	"euler_offline/internal/platform/logging"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"go.uber.org/zap"
)

func NewRouter(problemService *service.ProblemService, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies a bearer token when present; admin routes add the Authenticator.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		common.RespondWithJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"problems": problemService.Count(r.Context()),
		})
	})

	r.Route("/api/v1", func(v1 chi.Router) {
		problemHandler := handler.NewProblemHandler(problemService)
		v1.Route("/problems", problemHandler.RegisterRoutes)

		adminHandler := handler.NewAdminHandler(problemService, logger)
		v1.Route("/admin", adminHandler.RegisterRoutes)
	})

	return r
}
