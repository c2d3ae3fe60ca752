package category

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	apperrors "github.com/quizlab/trivia-api/internal/pkg/errors"
)

// Category is a question category: a stable id and a display label.
type Category struct {
	ID   int
	Type string
}

// Store abstracts category reads. Implemented by the pgx-backed repository.
type Store interface {
	// ListOrdered returns every category ordered ascending by id.
	ListOrdered(ctx context.Context) ([]Category, error)
	// GetByID returns one category or apperrors.ErrNotFound.
	GetByID(ctx context.Context, id int) (Category, error)
}

// Service exposes the read-only category catalog.
type Service struct {
	store  Store
	logger zerolog.Logger
}

func NewService(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "category_service").Logger(),
	}
}

// List returns the catalog keyed by string id. An empty catalog is a
// configuration error, not a valid empty result, and fails with ErrNotFound.
func (s *Service) List(ctx context.Context) (map[string]string, error) {
	categories, err := s.store.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("category catalog is empty: %w", apperrors.ErrNotFound)
	}

	catalog := make(map[string]string, len(categories))
	for _, c := range categories {
		catalog[strconv.Itoa(c.ID)] = c.Type
	}
	return catalog, nil
}

// Get returns a single category by id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int) (Category, error) {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return c, nil
}
