package question

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/quizlab/trivia-api/internal/category"
	apperrors "github.com/quizlab/trivia-api/internal/pkg/errors"
)

type stubStore struct {
	listAll        func(ctx context.Context) ([]Question, error)
	listByCategory func(ctx context.Context, categoryID int) ([]Question, error)
	search         func(ctx context.Context, term string) ([]Question, error)
	insert         func(ctx context.Context, q Question) (Question, error)
	remove         func(ctx context.Context, id int) error
}

func (s *stubStore) ListAll(ctx context.Context) ([]Question, error) {
	if s.listAll == nil {
		return nil, errors.New("not implemented")
	}
	return s.listAll(ctx)
}

func (s *stubStore) ListByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	if s.listByCategory == nil {
		return nil, errors.New("not implemented")
	}
	return s.listByCategory(ctx, categoryID)
}

func (s *stubStore) Search(ctx context.Context, term string) ([]Question, error) {
	if s.search == nil {
		return nil, errors.New("not implemented")
	}
	return s.search(ctx, term)
}

func (s *stubStore) Insert(ctx context.Context, q Question) (Question, error) {
	if s.insert == nil {
		return Question{}, errors.New("not implemented")
	}
	return s.insert(ctx, q)
}

func (s *stubStore) Delete(ctx context.Context, id int) error {
	if s.remove == nil {
		return errors.New("not implemented")
	}
	return s.remove(ctx, id)
}

type stubCategoryStore struct {
	getByID func(ctx context.Context, id int) (category.Category, error)
}

func (s *stubCategoryStore) GetByID(ctx context.Context, id int) (category.Category, error) {
	if s.getByID == nil {
		return category.Category{}, apperrors.ErrNotFound
	}
	return s.getByID(ctx, id)
}

func knownCategories(ids ...int) *stubCategoryStore {
	return &stubCategoryStore{
		getByID: func(_ context.Context, id int) (category.Category, error) {
			for _, known := range ids {
				if known == id {
					return category.Category{ID: id, Type: "Science"}, nil
				}
			}
			return category.Category{}, apperrors.ErrNotFound
		},
	}
}

func newTestService(store Store, categories CategoryStore, opts ServiceOptions) *Service {
	return NewService(store, categories, opts, zerolog.Nop())
}

func sampleQuestions(ids ...int) []Question {
	questions := make([]Question, 0, len(ids))
	for _, id := range ids {
		questions = append(questions, Question{ID: id, Question: "q", Answer: "a", Category: 1, Difficulty: 2})
	}
	return questions
}

func TestListPageReturnsPage(t *testing.T) {
	store := &stubStore{
		listAll: func(context.Context) ([]Question, error) {
			return sampleQuestions(intRange(15)...), nil
		},
	}
	svc := newTestService(store, knownCategories(1), ServiceOptions{})

	result, err := svc.ListPage(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, result.Questions, 5)
	assert.Equal(t, 15, result.TotalQuestions)
	assert.Equal(t, 2, result.CurrentPage)
	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, 11, result.Questions[0].ID)
}

func TestListPageOutOfRangeIsNotFound(t *testing.T) {
	store := &stubStore{
		listAll: func(context.Context) ([]Question, error) {
			return sampleQuestions(1, 2, 3), nil
		},
	}
	svc := newTestService(store, knownCategories(1), ServiceOptions{})

	_, err := svc.ListPage(context.Background(), 1000)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListByCategoryEmptyIsNotFound(t *testing.T) {
	store := &stubStore{
		listByCategory: func(context.Context, int) ([]Question, error) {
			return nil, nil
		},
	}
	svc := newTestService(store, knownCategories(1), ServiceOptions{})

	_, err := svc.ListByCategory(context.Background(), 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSearchEmptyResultIsSuccess(t *testing.T) {
	store := &stubStore{
		search: func(context.Context, string) ([]Question, error) {
			return nil, nil
		},
	}
	svc := newTestService(store, knownCategories(1), ServiceOptions{})

	questions, err := svc.Search(context.Background(), "JHON SMITH")
	assert.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	inserts := 0
	store := &stubStore{
		insert: func(_ context.Context, q Question) (Question, error) {
			inserts++
			q.ID = 1
			return q, nil
		},
	}
	svc := newTestService(store, knownCategories(1), ServiceOptions{})

	_, err := svc.Create(context.Background(), CreateInput{
		Question:   "What is the last Assassin Creed",
		Answer:     "Mirage",
		Category:   1000,
		Difficulty: 4,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Zero(t, inserts, "no row may be written when the category does not exist")
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc := newTestService(&stubStore{}, knownCategories(1), ServiceOptions{})

	_, err := svc.Create(context.Background(), CreateInput{Answer: "Mirage", Category: 1, Difficulty: 4})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Create(context.Background(), CreateInput{Question: "q", Category: 1, Difficulty: 4})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateAssignsID(t *testing.T) {
	store := &stubStore{
		insert: func(_ context.Context, q Question) (Question, error) {
			q.ID = 42
			return q, nil
		},
	}
	svc := newTestService(store, knownCategories(1), ServiceOptions{})

	created, err := svc.Create(context.Background(), CreateInput{
		Question:   "q",
		Answer:     "a",
		Category:   1,
		Difficulty: 3,
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, created.ID)
}

func TestDeleteMissingQuestion(t *testing.T) {
	store := &stubStore{
		remove: func(context.Context, int) error {
			return apperrors.ErrNotFound
		},
	}
	svc := newTestService(store, knownCategories(1), ServiceOptions{})

	err := svc.Delete(context.Background(), 1000)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
