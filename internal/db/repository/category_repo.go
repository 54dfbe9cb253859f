package repository

import (
	"context"
)

const (
	listCategoriesQuery  = `SELECT id, type FROM categories ORDER BY id`
	getCategoryByIDQuery = `SELECT id, type FROM categories WHERE id = $1`
)

// CategoryRepository exposes read access to seeded categories.
type CategoryRepository struct {
	db DBTX
}

// NewCategoryRepository wraps a database handle for category queries.
func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, listCategoriesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID fetches a single category. A missing row yields sql.ErrNoRows.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, getCategoryByIDQuery, id).Scan(&c.ID, &c.Type)
	return c, err
}
