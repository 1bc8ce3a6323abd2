package repository

import (
	"context"

	"github.com/udatech/trivia-api/internal/db"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]db.Category, error)
	GetCategory(ctx context.Context, id int64) (db.Category, error)
}

// CategoryRepository exposes read access to the category table.
type CategoryRepository struct {
	store categoryStore
}

func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns all categories ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]db.Category, error) {
	return r.store.ListCategories(ctx)
}

// Get fetches one category; the store yields pgx.ErrNoRows when absent.
func (r *CategoryRepository) Get(ctx context.Context, id int64) (db.Category, error) {
	return r.store.GetCategory(ctx, id)
}
