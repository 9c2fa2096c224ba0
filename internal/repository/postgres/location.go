package postgres

import (
	"context"
	"database/sql"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
)

type locationRepository struct {
	db *sql.DB
}

func NewLocationRepository(db *sql.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) List(ctx context.Context) ([]domain.PickupLocation, error) {
	query := `SELECT id, name, type FROM pickup_locations ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []domain.PickupLocation
	for rows.Next() {
		var loc domain.PickupLocation
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Type); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*domain.PickupLocation, error) {
	loc := &domain.PickupLocation{}
	query := `SELECT id, name, type FROM pickup_locations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&loc.ID, &loc.Name, &loc.Type)
	if err != nil {
		return nil, err
	}
	return loc, nil
}
