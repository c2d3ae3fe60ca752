package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizlab/trivia-api/internal/category"
	apperrors "github.com/quizlab/trivia-api/internal/pkg/errors"
)

// CategoryRepository is the pgx-backed implementation of category.Store.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// ListOrdered returns all categories ordered ascending by id.
func (r *CategoryRepository) ListOrdered(ctx context.Context) ([]category.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, type
		FROM categories
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

// GetByID returns one category or apperrors.ErrNotFound.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (category.Category, error) {
	var c category.Category
	err := r.pool.QueryRow(ctx, `
		SELECT id, type
		FROM categories
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return category.Category{}, apperrors.ErrNotFound
		}
		return category.Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}
