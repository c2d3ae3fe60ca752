package category

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/quizlab/trivia-api/internal/pkg/errors"
)

type stubStore struct {
	listOrdered func(ctx context.Context) ([]Category, error)
	getByID     func(ctx context.Context, id int) (Category, error)
}

func (s *stubStore) ListOrdered(ctx context.Context) ([]Category, error) {
	if s.listOrdered == nil {
		return nil, errors.New("not implemented")
	}
	return s.listOrdered(ctx)
}

func (s *stubStore) GetByID(ctx context.Context, id int) (Category, error) {
	if s.getByID == nil {
		return Category{}, apperrors.ErrNotFound
	}
	return s.getByID(ctx, id)
}

func TestListBuildsCatalogKeyedByStringID(t *testing.T) {
	store := &stubStore{
		listOrdered: func(context.Context) ([]Category, error) {
			return []Category{
				{ID: 1, Type: "Science"},
				{ID: 2, Type: "Art"},
				{ID: 6, Type: "Sports"},
			}, nil
		},
	}
	svc := NewService(store, zerolog.Nop())

	catalog, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"1": "Science", "2": "Art", "6": "Sports"}, catalog)
}

func TestListEmptyCatalogIsNotFound(t *testing.T) {
	store := &stubStore{
		listOrdered: func(context.Context) ([]Category, error) {
			return nil, nil
		},
	}
	svc := NewService(store, zerolog.Nop())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetUnknownCategory(t *testing.T) {
	svc := NewService(&stubStore{}, zerolog.Nop())

	_, err := svc.Get(context.Background(), 1000)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetCategory(t *testing.T) {
	store := &stubStore{
		getByID: func(_ context.Context, id int) (Category, error) {
			return Category{ID: id, Type: "Geography"}, nil
		},
	}
	svc := NewService(store, zerolog.Nop())

	c, err := svc.Get(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, Category{ID: 3, Type: "Geography"}, c)
}
