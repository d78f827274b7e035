package category

import (
	"context"
)

type Repository interface {
	FindCategory(ctx context.Context, memo string) (string, error)
	CreateRule(ctx context.Context, pattern, category string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest tries to find a category for the given statement memo.
// Returns empty string when no rule matches.
func (s *Service) Suggest(ctx context.Context, memo string) (string, error) {
	return s.repo.FindCategory(ctx, memo)
}

// Learn remembers a new mapping between a memo pattern and a category, so
// future imports of similar rows come pre-categorized.
func (s *Service) Learn(ctx context.Context, pattern, category string) error {
	return s.repo.CreateRule(ctx, pattern, category)
}
