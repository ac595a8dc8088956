package service

import (
	"context"
	"math"
	"time"

	"euler_offline/internal/common"
	"euler_offline/internal/corpus"
	"euler_offline/internal/domain/model"
	"euler_offline/internal/domain/repository"
	"euler_offline/internal/platform/ratelimit"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CorpusSource yields the full corpus text.
type CorpusSource interface {
	ReadCorpus(ctx context.Context) (string, error)
}

type ProblemService struct {
	problemRepo repository.ProblemRepository
	source      CorpusSource
	limiter     ratelimit.Limiter
	logger      *zap.Logger
	now         func() time.Time
}

func NewProblemService(
	problemRepo repository.ProblemRepository,
	source CorpusSource,
	limiter ratelimit.Limiter,
	logger *zap.Logger,
) *ProblemService {
	if limiter == nil {
		limiter = ratelimit.Unlimited{}
	}
	return &ProblemService{
		problemRepo: problemRepo,
		source:      source,
		limiter:     limiter,
		logger:      logger,
		now:         time.Now,
	}
}

// ProblemDetails is the public view of a catalog entry. The answer digest is
// never exposed.
type ProblemDetails struct {
	Position       int    `json:"position"`
	Slug           string `json:"slug"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	HasKnownAnswer bool   `json:"has_known_answer"`
}

func detailsFromEntry(e model.CatalogEntry) ProblemDetails {
	return ProblemDetails{
		Position:       e.Position,
		Slug:           e.Slug,
		Title:          e.Problem.Title,
		Description:    e.Problem.Description,
		HasKnownAnswer: e.Problem.HasKnownAnswer(),
	}
}

type CheckAnswerRequest struct {
	Answer string `json:"answer"`
}

// Reload re-reads and re-parses the corpus. The catalog is only replaced when
// the whole corpus parses; on error the previous catalog keeps serving.
func (s *ProblemService) Reload(ctx context.Context) (int, error) {
	text, err := s.source.ReadCorpus(ctx)
	if err != nil {
		return 0, common.Errorf("failed to read corpus: %w", err)
	}

	problems, err := corpus.Parse(text)
	if err != nil {
		s.logger.Error("corpus rejected, keeping previous catalog", zap.Error(err))
		return 0, common.Errorf("failed to parse corpus: %w", err)
	}

	if err := s.problemRepo.ReplaceAll(ctx, problems); err != nil {
		return 0, common.Errorf("failed to replace catalog: %w", err)
	}

	s.logger.Info("corpus loaded", zap.Int("problems", len(problems)))
	return len(problems), nil
}

func (s *ProblemService) GetProblemDetails(ctx context.Context, problemSlug string) (*ProblemDetails, error) {
	entry, err := s.problemRepo.FindProblemBySlug(ctx, problemSlug)
	if err != nil {
		return nil, common.Errorf("problem %q: %w", problemSlug, err)
	}
	details := detailsFromEntry(*entry)
	return &details, nil
}

// ListProblems returns one page of the catalog. page is 1-based; a page whose
// offset does not fit in an int is rejected with common.ErrValidation.
func (s *ProblemService) ListProblems(ctx context.Context, page, pageSize int, searchTerm string) ([]ProblemDetails, int, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, common.Errorf("page %d of size %d: %w", page, pageSize, common.ErrValidation)
	}
	if page-1 > math.MaxInt/pageSize {
		return nil, 0, common.Errorf("page %d out of range: %w", page, common.ErrValidation)
	}
	limit := pageSize
	offset := (page - 1) * pageSize

	entries, total, err := s.problemRepo.ListProblems(ctx, limit, offset, searchTerm)
	if err != nil {
		return nil, 0, err
	}

	problems := make([]ProblemDetails, 0, len(entries))
	for _, e := range entries {
		problems = append(problems, detailsFromEntry(e))
	}
	return problems, total, nil
}

// Count reports how many problems the catalog currently serves.
func (s *ProblemService) Count(ctx context.Context) int {
	return s.problemRepo.Count(ctx)
}

// CheckAnswer verifies req.Answer exactly as submitted. clientKey scopes the
// rate limit (normally the caller's IP).
func (s *ProblemService) CheckAnswer(ctx context.Context, clientKey, problemSlug string, req CheckAnswerRequest) (*model.Attempt, error) {
	allowed, err := s.limiter.Allow(ctx, clientKey)
	if err != nil {
		// Limiter outages fail open.
		s.logger.Warn("rate limiter unavailable", zap.String("client", clientKey), zap.Error(err))
		allowed = true
	}
	if !allowed {
		return nil, common.Errorf("answer checks for %s: %w", clientKey, common.ErrTooManyRequests)
	}

	entry, err := s.problemRepo.FindProblemBySlug(ctx, problemSlug)
	if err != nil {
		return nil, common.Errorf("problem %q: %w", problemSlug, err)
	}

	correct, err := entry.Problem.CheckAnswer(req.Answer)
	if err != nil {
		return nil, common.Errorf("%s: %w", entry.Problem.Title, err)
	}

	attempt := &model.Attempt{
		ID:          uuid.NewString(),
		ProblemSlug: entry.Slug,
		Correct:     correct,
		CheckedAt:   s.now().UTC(),
	}
	s.logger.Info("answer checked",
		zap.String("attempt_id", attempt.ID),
		zap.String("problem", entry.Slug),
		zap.String("client", clientKey),
		zap.Bool("correct", correct),
	)
	return attempt, nil
}
