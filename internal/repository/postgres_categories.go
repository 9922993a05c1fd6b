package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jaym93/gtpower/internal/domain"
)

// PostgresCategoriesRepository manages the category catalog.
type PostgresCategoriesRepository struct {
	db *sql.DB
}

func NewPostgresCategoriesRepository(db *sql.DB) *PostgresCategoriesRepository {
	return &PostgresCategoriesRepository{db: db}
}

var _ CategoriesRepository = (*PostgresCategoriesRepository)(nil)

func (r *PostgresCategoriesRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT cat_id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CatID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

func (r *PostgresCategoriesRepository) AddCategory(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
		name)
	if err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}
	return nil
}
