package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository/postgres"
)

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "car_id", "car_make", "car_model", "car_image", "car_transmission",
		"start_date", "end_date", "return_date", "rental_days", "free_days", "daily_price", "total_price",
		"payment_method", "pickup_location", "insurance_name", "insurance_price_per_day", "insurance_total",
		"id_document_url", "driving_license_url", "passport_url", "status", "created_on", "updated_on",
	})
}

func TestReservationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		reservation := &domain.Reservation{
			UserID:          9,
			VehicleID:       7,
			CarMake:         "Dacia",
			CarModel:        "Logan",
			CarTransmission: "manual",
			StartDate:       "2024-07-01",
			EndDate:         "2024-07-05",
			RentalDays:      4,
			FreeDays:        1,
			DailyPrice:      500,
			TotalPrice:      2000,
			PaymentMethod:   "cash",
			PickupLocation:  "Casablanca Agency",
			Status:          domain.ReservationStatusPending,
		}

		mock.ExpectQuery("INSERT INTO rentals").
			WithArgs(reservation.UserID, reservation.VehicleID, reservation.CarMake, reservation.CarModel,
				reservation.CarImage, reservation.CarTransmission, reservation.StartDate, reservation.EndDate,
				nil, reservation.RentalDays, reservation.FreeDays, reservation.DailyPrice, reservation.TotalPrice,
				reservation.PaymentMethod, reservation.PickupLocation, nil, nil, nil, nil, nil, nil,
				reservation.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		err := repo.Create(ctx, reservation)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), reservation.ID)
	})
}

func TestReservationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC)
		ret := time.Date(2024, 7, 6, 0, 0, 0, 0, time.UTC)
		rows := reservationRows().
			AddRow(1, 9, 7, "Dacia", "Logan", "", "manual",
				start, end, ret, 4, 1, 500, 2000,
				"cash", "Casablanca Agency", nil, nil, nil,
				nil, nil, nil, "confirmed", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		reservation, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "2024-07-01", reservation.StartDate)
		assert.Equal(t, "2024-07-05", reservation.EndDate)
		if assert.NotNil(t, reservation.ReturnDate) {
			assert.Equal(t, "2024-07-06", *reservation.ReturnDate)
		}
		assert.Equal(t, domain.ReservationStatusConfirmed, reservation.Status)
	})

	t.Run("NullReturnDate", func(t *testing.T) {
		start := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 8, 3, 0, 0, 0, 0, time.UTC)
		rows := reservationRows().
			AddRow(2, 9, 7, "Dacia", "Logan", "", "manual",
				start, end, nil, 2, 0, 500, 1000,
				"card", "Casablanca Agency", nil, nil, nil,
				nil, nil, nil, "pending", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(2)).
			WillReturnRows(rows)

		reservation, err := repo.GetByID(ctx, 2)
		assert.NoError(t, err)
		assert.Nil(t, reservation.ReturnDate)
	})
}

func TestReservationRepository_ListBlockingByVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	rows := reservationRows().
		AddRow(1, 9, 7, "Dacia", "Logan", "", "manual",
			time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC), nil,
			4, 0, 500, 2000, "cash", "Casablanca Agency", nil, nil, nil,
			nil, nil, nil, "active", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE car_id = \\$1 AND status = ANY\\(\\$2\\)").
		WithArgs(int32(7), sqlmock.AnyArg()).
		WillReturnRows(rows)

	reservations, err := repo.ListBlockingByVehicle(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, reservations, 1)
	assert.Equal(t, domain.ReservationStatusActive, reservations[0].Status)
}

func TestReservationRepository_ListBlockedVehicleIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT DISTINCT car_id FROM rentals").
		WithArgs(sqlmock.AnyArg(), "2024-07-01", "2024-07-05").
		WillReturnRows(sqlmock.NewRows([]string{"car_id"}).AddRow(7).AddRow(12))

	ids, err := repo.ListBlockedVehicleIDs(ctx, "2024-07-01", "2024-07-05")
	assert.NoError(t, err)
	assert.Equal(t, []int32{7, 12}, ids)
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE rentals SET status=\\$1").
		WithArgs(domain.ReservationStatusConfirmed, sqlmock.AnyArg(), int32(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateStatus(ctx, 5, domain.ReservationStatusConfirmed)
	assert.NoError(t, err)
}
