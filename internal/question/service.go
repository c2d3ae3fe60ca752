package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/quizlab/trivia-api/internal/category"
	apperrors "github.com/quizlab/trivia-api/internal/pkg/errors"
)

// Store abstracts question persistence. Every listing method returns rows
// ordered ascending by id; selection correctness depends on that contract.
type Store interface {
	ListAll(ctx context.Context) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	// Search matches the term case-insensitively against the question text
	// only, never the answer.
	Search(ctx context.Context, term string) ([]Question, error)
	Insert(ctx context.Context, q Question) (Question, error)
	// Delete removes one row or returns apperrors.ErrNotFound.
	Delete(ctx context.Context, id int) error
}

// CategoryStore is the slice of the category catalog this service needs for
// referential checks.
type CategoryStore interface {
	GetByID(ctx context.Context, id int) (category.Category, error)
}

// Service implements question listing, search, mutation and quiz selection.
type Service struct {
	store      Store
	categories CategoryStore
	pick       Picker
	logger     zerolog.Logger
}

// ServiceOptions tunes optional behavior.
type ServiceOptions struct {
	// Picker overrides the uniform random selection used by NextQuestion.
	Picker Picker
}

func NewService(store Store, categories CategoryStore, opts ServiceOptions, logger zerolog.Logger) *Service {
	pick := opts.Picker
	if pick == nil {
		pick = defaultPicker
	}
	return &Service{
		store:      store,
		categories: categories,
		pick:       pick,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// ListPage returns one page of the full question listing. An empty page is
// treated as ErrNotFound: the page number ran past the content.
func (s *Service) ListPage(ctx context.Context, page int) (PageResult, error) {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		return PageResult{}, fmt.Errorf("list questions: %w", err)
	}

	slice, currentPage, totalPages := Paginate(all, page, QuestionsPerPage)
	if len(slice) == 0 {
		return PageResult{}, fmt.Errorf("question page %d: %w", page, apperrors.ErrNotFound)
	}

	return PageResult{
		Questions:      slice,
		TotalQuestions: len(all),
		CurrentPage:    currentPage,
		TotalPages:     totalPages,
	}, nil
}

// ListByCategory returns every question of an existing category. An unknown
// category and a category without questions both fail with ErrNotFound; the
// handler distinguishes them by message.
func (s *Service) ListByCategory(ctx context.Context, categoryID int) (CategoryResult, error) {
	questions, err := s.store.ListByCategory(ctx, categoryID)
	if err != nil {
		return CategoryResult{}, fmt.Errorf("list questions for category %d: %w", categoryID, err)
	}
	if len(questions) == 0 {
		return CategoryResult{}, fmt.Errorf("no questions in category %d: %w", categoryID, apperrors.ErrNotFound)
	}
	return CategoryResult{Questions: questions, TotalQuestions: len(questions)}, nil
}

// Search returns questions whose text contains the term, case-insensitively.
// No matches is a valid empty result, not an error. The empty term never
// reaches this method; the handler dispatches it to creation instead.
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	questions, err := s.store.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions %q: %w", term, err)
	}
	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}

// Create validates and persists a new question. Missing fields and an
// unknown category fail with ErrValidation before any row is written.
func (s *Service) Create(ctx context.Context, input CreateInput) (Question, error) {
	if strings.TrimSpace(input.Question) == "" || strings.TrimSpace(input.Answer) == "" {
		return Question{}, fmt.Errorf("question and answer are required: %w", apperrors.ErrValidation)
	}

	if _, err := s.categories.GetByID(ctx, input.Category); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return Question{}, fmt.Errorf("category %d does not exist: %w", input.Category, apperrors.ErrValidation)
		}
		return Question{}, fmt.Errorf("resolve category %d: %w", input.Category, err)
	}

	created, err := s.store.Insert(ctx, Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   input.Category,
		Difficulty: input.Difficulty,
	})
	if err != nil {
		return Question{}, fmt.Errorf("insert question: %w", err)
	}

	s.logger.Info().Int("question_id", created.ID).Int("category", created.Category).Msg("question created")
	return created, nil
}

// Delete removes a question by id. A missing row surfaces as ErrNotFound;
// the handler maps every delete failure to unprocessable.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")
	return nil
}
