package repository

import (
	"context"

	"github.com/jaym93/gtpower/internal/domain"
)

// BuildingsRepository reads the buildings table and its category
// associations.
type BuildingsRepository interface {
	// ListBuildings returns every building, ordered by id.
	ListBuildings(ctx context.Context) ([]*domain.Building, error)

	// GetBuilding returns one building by id, or an error wrapping
	// domain.ErrNotFound.
	GetBuilding(ctx context.Context, bID string) (*domain.Building, error)

	// SearchBuildings matches buildings by partial, case-insensitive name.
	SearchBuildings(ctx context.Context, name string) ([]*domain.Building, error)

	// CategoriesForBuilding returns the category names associated with a
	// building (many-to-many).
	CategoriesForBuilding(ctx context.Context, bID string) ([]string, error)
}

// CategoriesRepository reads and extends the category catalog.
type CategoriesRepository interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	// AddCategory inserts a category if it does not already exist.
	// Re-adding an existing name is a no-op, not an error.
	AddCategory(ctx context.Context, name string) error
}
