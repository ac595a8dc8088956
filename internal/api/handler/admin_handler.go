package handler

import (
	"net/http"

	"euler_offline/internal/api/middleware"
	"euler_offline/internal/app/service"
	"euler_offline/internal/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	problemService *service.ProblemService
	logger         *zap.Logger
}

func NewAdminHandler(ps *service.ProblemService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{problemService: ps, logger: logger}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Use(middleware.Authenticator)
	r.Use(middleware.AdminOnly)
	r.Post("/reload", h.reload) // POST /api/v1/admin/reload
}

func (h *AdminHandler) reload(w http.ResponseWriter, r *http.Request) {
	subject, _ := middleware.GetSubjectFromContext(r.Context())

	n, err := h.problemService.Reload(r.Context())
	if err != nil {
		h.logger.Warn("reload requested but failed", zap.String("subject", subject), zap.Error(err))
		common.RespondWithDomainError(w, err)
		return
	}
	h.logger.Info("reload requested", zap.String("subject", subject), zap.Int("problems", n))
	common.RespondWithJSON(w, http.StatusOK, map[string]int{"problems": n})
}
