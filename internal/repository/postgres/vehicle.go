package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"

	"github.com/lib/pq"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, make, model, year, license_plate, transmission, fuel_type, category, seats, base_price_per_day, weekend_price_per_day, image_urls, status, created_on, updated_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO cars (make, model, year, license_plate, transmission, fuel_type, category, seats, base_price_per_day, weekend_price_per_day, image_urls, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		v.Make, v.Model, v.Year, v.LicensePlate, v.Transmission, v.FuelType, v.Category, v.Seats,
		v.WeekdayRate, v.WeekendRate, pq.Array(v.ImageURLs), v.Status, now, now,
	).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM cars WHERE id = $1`
	return scanVehicle(r.db.QueryRowContext(ctx, query, id))
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE cars SET make=$1, model=$2, year=$3, license_plate=$4, transmission=$5, fuel_type=$6, category=$7, seats=$8, base_price_per_day=$9, weekend_price_per_day=$10, image_urls=$11, status=$12, updated_on=$13 WHERE id=$14`
	_, err := r.db.ExecContext(ctx, query,
		v.Make, v.Model, v.Year, v.LicensePlate, v.Transmission, v.FuelType, v.Category, v.Seats,
		v.WeekdayRate, v.WeekendRate, pq.Array(v.ImageURLs), v.Status, time.Now(), v.ID)
	return err
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	query := `UPDATE cars SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

func (r *vehicleRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	return err
}

func (r *vehicleRepository) List(ctx context.Context, filter repository.VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + vehicleColumns + ` FROM cars WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if filter.Query != "" {
		query += fmt.Sprintf(" AND (make ILIKE $%d OR model ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Query+"%")
		argIdx++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, filter.Category)
		argIdx++
	}
	if filter.Transmission != "" {
		query += fmt.Sprintf(" AND transmission = $%d", argIdx)
		args = append(args, filter.Transmission)
		argIdx++
	}
	if filter.MaxDailyRate > 0 {
		query += fmt.Sprintf(" AND base_price_per_day <= $%d", argIdx)
		args = append(args, filter.MaxDailyRate)
		argIdx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.AvailableFrom != "" && filter.AvailableTo != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, domain.VehicleStatusAvailable)
		argIdx++
		query += fmt.Sprintf(` AND id NOT IN (
			SELECT car_id FROM rentals
			WHERE status = ANY($%d)
			  AND start_date <= $%d::date
			  AND COALESCE(return_date, end_date) >= $%d::date)`, argIdx, argIdx+1, argIdx+2)
		args = append(args, pq.Array(blockingStatusStrings()), filter.AvailableTo, filter.AvailableFrom)
		argIdx += 3
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on ASC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicleRow(rows)
		if err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, *v)
	}
	return vehicles, count, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	return scanVehicleRow(row)
}

func scanVehicleRow(row rowScanner) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	var images pq.StringArray
	err := row.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.LicensePlate, &v.Transmission, &v.FuelType,
		&v.Category, &v.Seats, &v.WeekdayRate, &v.WeekendRate, &images, &v.Status, &v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		return nil, err
	}
	v.ImageURLs = images
	return v, nil
}
