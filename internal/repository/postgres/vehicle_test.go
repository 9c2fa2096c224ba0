package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
	"atlasrent-backend/internal/repository/postgres"
)

func vehicleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "make", "model", "year", "license_plate", "transmission", "fuel_type",
		"category", "seats", "base_price_per_day", "weekend_price_per_day", "image_urls",
		"status", "created_on", "updated_on",
	})
}

func TestVehicleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	vehicle := &domain.Vehicle{
		Make:         "Dacia",
		Model:        "Logan",
		Year:         2023,
		LicensePlate: "12345-A-6",
		Transmission: "Manual",
		FuelType:     "diesel",
		Category:     "economy",
		Seats:        5,
		WeekdayRate:  500,
		WeekendRate:  700,
		ImageURLs:    []string{"https://cdn.example.com/logan.jpg"},
		Status:       domain.VehicleStatusAvailable,
	}

	mock.ExpectQuery("INSERT INTO cars").
		WithArgs(vehicle.Make, vehicle.Model, vehicle.Year, vehicle.LicensePlate, vehicle.Transmission,
			vehicle.FuelType, vehicle.Category, vehicle.Seats, vehicle.WeekdayRate, vehicle.WeekendRate,
			sqlmock.AnyArg(), vehicle.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	err = repo.Create(ctx, vehicle)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), vehicle.ID)
}

func TestVehicleRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	rows := vehicleRows().
		AddRow(7, "Dacia", "Logan", 2023, "12345-A-6", "Manual", "diesel",
			"economy", 5, 500, 700, "{https://cdn.example.com/logan.jpg}",
			"Available", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
		WithArgs(int32(7)).
		WillReturnRows(rows)

	vehicle, err := repo.GetByID(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, "Dacia", vehicle.Make)
	assert.Equal(t, int64(500), vehicle.WeekdayRate)
	assert.Equal(t, int64(700), vehicle.WeekendRate)
	assert.Equal(t, []string{"https://cdn.example.com/logan.jpg"}, vehicle.ImageURLs)
	assert.Equal(t, domain.VehicleStatusAvailable, vehicle.Status)
}

func TestVehicleRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("FilterByCategory", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM").
			WithArgs("economy").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := vehicleRows().
			AddRow(7, "Dacia", "Logan", 2023, "12345-A-6", "Manual", "diesel",
				"economy", 5, 500, 700, "{}", "Available", time.Now(), time.Now())
		mock.ExpectQuery("SELECT (.+) FROM cars WHERE 1=1 AND category = \\$1").
			WithArgs("economy", int32(20), int32(0)).
			WillReturnRows(rows)

		vehicles, total, err := repo.List(ctx, repository.VehicleFilter{Category: "economy"}, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, vehicles, 1)
	})

	t.Run("AvailabilityWindowExcludesBeforePagination", func(t *testing.T) {
		// The blocked-vehicle exclusion must be part of both the count and
		// the page query, ahead of LIMIT/OFFSET.
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM \\(SELECT (.+) AND id NOT IN").
			WithArgs(domain.VehicleStatusAvailable, sqlmock.AnyArg(), "2024-07-05", "2024-07-01").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

		rows := vehicleRows().
			AddRow(1, "Dacia", "Logan", 2023, "12345-A-6", "Manual", "diesel",
				"economy", 5, 500, 700, "{}", "Available", time.Now(), time.Now())
		mock.ExpectQuery("SELECT (.+) FROM cars WHERE 1=1 AND status = \\$1 AND id NOT IN").
			WithArgs(domain.VehicleStatusAvailable, sqlmock.AnyArg(), "2024-07-05", "2024-07-01", int32(1), int32(1)).
			WillReturnRows(rows)

		filter := repository.VehicleFilter{AvailableFrom: "2024-07-01", AvailableTo: "2024-07-05"}
		vehicles, total, err := repo.List(ctx, filter, 2, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(6), total)
		assert.Len(t, vehicles, 1)
	})

	t.Run("NoFilters", func(t *testing.T) {
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("SELECT (.+) FROM cars WHERE 1=1 ORDER BY created_on ASC").
			WithArgs(int32(20), int32(0)).
			WillReturnRows(vehicleRows())

		vehicles, total, err := repo.List(ctx, repository.VehicleFilter{}, 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), total)
		assert.Empty(t, vehicles)
	})
}
