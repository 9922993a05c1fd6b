package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jaym93/gtpower/internal/domain"
)

// PostgresBuildingsRepository reads the buildings tables.
type PostgresBuildingsRepository struct {
	db *sql.DB
}

func NewPostgresBuildingsRepository(db *sql.DB) *PostgresBuildingsRepository {
	return &PostgresBuildingsRepository{db: db}
}

var _ BuildingsRepository = (*PostgresBuildingsRepository)(nil)

const buildingColumns = `
	b_id, name, address, city, zipcode, phone_num,
	latitude, longitude, shape_coordinates, image_url, website_url`

func (r *PostgresBuildingsRepository) ListBuildings(ctx context.Context) ([]*domain.Building, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+buildingColumns+` FROM buildings ORDER BY b_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}
	defer rows.Close()

	return scanBuildings(rows)
}

func (r *PostgresBuildingsRepository) GetBuilding(ctx context.Context, bID string) (*domain.Building, error) {
	var b domain.Building
	err := r.db.QueryRowContext(ctx,
		`SELECT `+buildingColumns+` FROM buildings WHERE b_id = $1`, bID,
	).Scan(
		&b.BID, &b.Name, &b.Address, &b.City, &b.Zipcode, &b.Phone,
		&b.Latitude, &b.Longitude, &b.ShapeCoordinates, &b.ImageURL, &b.WebsiteURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("building %q: %w", bID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get building: %w", err)
	}
	return &b, nil
}

func (r *PostgresBuildingsRepository) SearchBuildings(ctx context.Context, name string) ([]*domain.Building, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+buildingColumns+` FROM buildings WHERE name ILIKE $1 ORDER BY b_id`,
		"%"+name+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search buildings: %w", err)
	}
	defer rows.Close()

	return scanBuildings(rows)
}

func (r *PostgresBuildingsRepository) CategoriesForBuilding(ctx context.Context, bID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.name
		FROM categories c
		JOIN building_categories bc ON bc.cat_id = c.cat_id
		WHERE bc.b_id = $1
		ORDER BY c.name`, bID)
	if err != nil {
		return nil, fmt.Errorf("failed to query building categories: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return names, nil
}

func scanBuildings(rows *sql.Rows) ([]*domain.Building, error) {
	buildings := []*domain.Building{}
	for rows.Next() {
		var b domain.Building
		if err := rows.Scan(
			&b.BID, &b.Name, &b.Address, &b.City, &b.Zipcode, &b.Phone,
			&b.Latitude, &b.Longitude, &b.ShapeCoordinates, &b.ImageURL, &b.WebsiteURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan building: %w", err)
		}
		buildings = append(buildings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate buildings: %w", err)
	}
	return buildings, nil
}
