package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"atlasrent-backend/internal/booking"
	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"

	"github.com/lib/pq"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, user_id, car_id, car_make, car_model, car_image, car_transmission, start_date, end_date, return_date, rental_days, free_days, daily_price, total_price, payment_method, pickup_location, insurance_name, insurance_price_per_day, insurance_total, id_document_url, driving_license_url, passport_url, status, created_on, updated_on`

func (r *reservationRepository) Create(ctx context.Context, rs *domain.Reservation) error {
	query := `INSERT INTO rentals (user_id, car_id, car_make, car_model, car_image, car_transmission, start_date, end_date, return_date, rental_days, free_days, daily_price, total_price, payment_method, pickup_location, insurance_name, insurance_price_per_day, insurance_total, id_document_url, driving_license_url, passport_url, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		rs.UserID, rs.VehicleID, rs.CarMake, rs.CarModel, rs.CarImage, rs.CarTransmission,
		rs.StartDate, rs.EndDate, rs.ReturnDate, rs.RentalDays, rs.FreeDays, rs.DailyPrice, rs.TotalPrice,
		rs.PaymentMethod, rs.PickupLocation, rs.InsuranceName, rs.InsurancePerDay, rs.InsuranceTotal,
		rs.IDDocumentURL, rs.LicenseURL, rs.PassportURL, rs.Status, now, now,
	).Scan(&rs.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM rentals WHERE id = $1`
	return scanReservation(r.db.QueryRowContext(ctx, query, id))
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	query := `UPDATE rentals SET status=$1, updated_on=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + reservationColumns + ` FROM rentals WHERE user_id = $1`

	args := []interface{}{userID}
	argIdx := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	reservations, err := r.queryReservations(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return reservations, count, nil
}

func (r *reservationRepository) ListAll(ctx context.Context, status, query string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	offset := (page - 1) * pageSize
	sqlQuery := `SELECT ` + reservationColumns + ` FROM rentals WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if status != "" {
		sqlQuery += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	if query != "" {
		sqlQuery += fmt.Sprintf(" AND (car_make ILIKE $%d OR car_model ILIKE $%d OR pickup_location ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+query+"%")
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + sqlQuery + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	sqlQuery += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	reservations, err := r.queryReservations(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	return reservations, count, nil
}

func (r *reservationRepository) ListBlockingByVehicle(ctx context.Context, vehicleID int32) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM rentals WHERE car_id = $1 AND status = ANY($2) ORDER BY start_date ASC`
	return r.queryReservations(ctx, query, vehicleID, pq.Array(blockingStatusStrings()))
}

func (r *reservationRepository) ListBlockedVehicleIDs(ctx context.Context, startDate, endDate string) ([]int32, error) {
	// A reservation blocks when [start_date, coalesce(return_date, end_date)]
	// intersects the requested window (closed intervals).
	query := `SELECT DISTINCT car_id FROM rentals
	          WHERE status = ANY($1)
	            AND start_date <= $3::date
	            AND COALESCE(return_date, end_date) >= $2::date`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(blockingStatusStrings()), startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *reservationRepository) queryReservations(ctx context.Context, query string, args ...interface{}) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		rs, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *rs)
	}
	return reservations, rows.Err()
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	rs := &domain.Reservation{}
	var start, end time.Time
	var ret sql.NullTime
	err := row.Scan(&rs.ID, &rs.UserID, &rs.VehicleID, &rs.CarMake, &rs.CarModel, &rs.CarImage, &rs.CarTransmission,
		&start, &end, &ret, &rs.RentalDays, &rs.FreeDays, &rs.DailyPrice, &rs.TotalPrice,
		&rs.PaymentMethod, &rs.PickupLocation, &rs.InsuranceName, &rs.InsurancePerDay, &rs.InsuranceTotal,
		&rs.IDDocumentURL, &rs.LicenseURL, &rs.PassportURL, &rs.Status, &rs.CreatedOn, &rs.UpdatedOn)
	if err != nil {
		return nil, err
	}
	rs.StartDate = booking.FormatDate(start)
	rs.EndDate = booking.FormatDate(end)
	if ret.Valid {
		formatted := booking.FormatDate(ret.Time)
		rs.ReturnDate = &formatted
	}
	return rs, nil
}

func blockingStatusStrings() []string {
	statuses := domain.BlockingStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
