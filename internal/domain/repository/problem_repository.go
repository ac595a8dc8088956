package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"euler_offline/internal/common"
	"euler_offline/internal/domain/model"

	"github.com/gosimple/slug"
)

type ProblemRepository interface {
	// ReplaceAll swaps the whole catalog for problems, kept in the given order.
	ReplaceAll(ctx context.Context, problems []model.Problem) error
	FindProblemBySlug(ctx context.Context, slug string) (*model.CatalogEntry, error)
	ListProblems(ctx context.Context, limit, offset int, searchTerm string) ([]model.CatalogEntry, int, error)
	Count(ctx context.Context) int
}

type memProblemRepository struct {
	mu      sync.RWMutex
	entries []model.CatalogEntry
	bySlug  map[string]int
}

func NewMemProblemRepository() ProblemRepository {
	return &memProblemRepository{bySlug: map[string]int{}}
}

func (r *memProblemRepository) ReplaceAll(ctx context.Context, problems []model.Problem) error {
	entries := make([]model.CatalogEntry, 0, len(problems))
	bySlug := make(map[string]int, len(problems))

	for i, p := range problems {
		position := i + 1
		s := slug.Make(p.Title)
		if s == "" {
			s = fmt.Sprintf("problem-%d", position)
		}
		// Duplicate titles get the position appended, bumped until free.
		for base, n := s, position; ; n++ {
			if _, taken := bySlug[s]; !taken {
				break
			}
			s = fmt.Sprintf("%s-%d", base, n)
		}
		bySlug[s] = len(entries)
		entries = append(entries, model.CatalogEntry{Position: position, Slug: s, Problem: p})
	}

	r.mu.Lock()
	r.entries = entries
	r.bySlug = bySlug
	r.mu.Unlock()
	return nil
}

func (r *memProblemRepository) FindProblemBySlug(ctx context.Context, s string) (*model.CatalogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.bySlug[s]
	if !ok {
		return nil, common.ErrNotFound
	}
	entry := r.entries[i]
	return &entry, nil
}

// ListProblems filters by a case-insensitive match on title or description,
// then applies limit/offset. The total is the filtered count.
func (r *memProblemRepository) ListProblems(ctx context.Context, limit, offset int, searchTerm string) ([]model.CatalogEntry, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(searchTerm))
	matched := r.entries
	if needle != "" {
		matched = nil
		for _, e := range r.entries {
			if strings.Contains(strings.ToLower(e.Problem.Title), needle) ||
				strings.Contains(strings.ToLower(e.Problem.Description), needle) {
				matched = append(matched, e)
			}
		}
	}

	total := len(matched)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []model.CatalogEntry{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}

	page := make([]model.CatalogEntry, end-offset)
	copy(page, matched[offset:end])
	return page, total, nil
}

func (r *memProblemRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
