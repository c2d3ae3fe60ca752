package question

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	apperrors "github.com/quizlab/trivia-api/internal/pkg/errors"
)

// Scope selects the candidate pool for a quiz round: either one category or
// every category. The zero value is not meaningful; use AllCategories or
// InCategory.
type Scope struct {
	All        bool
	CategoryID int
}

// AllCategories scopes the quiz to every question.
func AllCategories() Scope {
	return Scope{All: true}
}

// InCategory scopes the quiz to a single category.
func InCategory(id int) Scope {
	return Scope{CategoryID: id}
}

// Picker chooses an index in [0, n). n is always >= 1. Injectable so tests
// can seed the selection deterministically.
type Picker func(n int) int

func defaultPicker(n int) int {
	return rand.IntN(n)
}

// NextQuestion returns one uniformly random question from the scope's pool
// that is not in seen, or (nil, nil) when every question in the pool has been
// seen. A scoped category that does not exist fails with ErrValidation.
//
// Quiz progress is entirely caller-supplied: the server keeps no session
// state between calls.
func (s *Service) NextQuestion(ctx context.Context, scope Scope, seen []int) (*Question, error) {
	pool, err := s.quizPool(ctx, scope)
	if err != nil {
		return nil, err
	}

	seenSet := make(map[int]struct{}, len(seen))
	for _, id := range seen {
		seenSet[id] = struct{}{}
	}

	unseen := pool[:0:0]
	for _, q := range pool {
		if _, ok := seenSet[q.ID]; !ok {
			unseen = append(unseen, q)
		}
	}

	if len(unseen) == 0 {
		return nil, nil
	}

	next := unseen[s.pick(len(unseen))]
	return &next, nil
}

func (s *Service) quizPool(ctx context.Context, scope Scope) ([]Question, error) {
	if scope.All {
		pool, err := s.store.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list quiz pool: %w", err)
		}
		return pool, nil
	}

	if _, err := s.categories.GetByID(ctx, scope.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("quiz category %d: %w", scope.CategoryID, apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("resolve quiz category: %w", err)
	}

	pool, err := s.store.ListByCategory(ctx, scope.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("list quiz pool for category %d: %w", scope.CategoryID, err)
	}
	return pool, nil
}
