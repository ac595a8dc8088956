package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"euler_offline/internal/app/service"
	"euler_offline/internal/common"

	"github.com/go-chi/chi/v5"
)

type ProblemHandler struct {
	problemService *service.ProblemService
}

func NewProblemHandler(ps *service.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: ps}
}

func (h *ProblemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listProblems)                    // GET /api/v1/problems
	r.Get("/{problemSlug}", h.getProblem)         // GET /api/v1/problems/problem-1
	r.Post("/{problemSlug}/check", h.checkAnswer) // POST /api/v1/problems/problem-1/check
}

func (h *ProblemHandler) listProblems(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page <= 0 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	search := r.URL.Query().Get("q")

	problems, total, err := h.problemService.ListProblems(r.Context(), page, pageSize, search)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	type PaginatedProblemsResponse struct {
		Problems []service.ProblemDetails `json:"problems"`
		Total    int                      `json:"total"`
		Page     int                      `json:"page"`
		PageSize int                      `json:"page_size"`
	}
	common.RespondWithJSON(w, http.StatusOK, PaginatedProblemsResponse{
		Problems: problems,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func (h *ProblemHandler) getProblem(w http.ResponseWriter, r *http.Request) {
	problemSlug := chi.URLParam(r, "problemSlug")

	problem, err := h.problemService.GetProblemDetails(r.Context(), problemSlug)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, problem)
}

func (h *ProblemHandler) checkAnswer(w http.ResponseWriter, r *http.Request) {
	problemSlug := chi.URLParam(r, "problemSlug")

	var req service.CheckAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithDomainError(w, common.Errorf("invalid request body (%v): %w", err, common.ErrBadRequest))
		return
	}

	attempt, err := h.problemService.CheckAnswer(r.Context(), clientKey(r), problemSlug, req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, attempt)
}

// clientKey is the caller's IP; RealIP middleware has already applied
// X-Forwarded-For / X-Real-IP to RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
