package jobs

import (
	"context"
	"time"

	"atlasrent-backend/internal/booking"
	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/logger"
)

// ActivateDueReservations moves confirmed reservations whose start date has
// arrived into active status.
func (jr *JobRunner) ActivateDueReservations() {
	jr.runWithRecovery("ActivateDueReservations", func() {
		ctx := context.Background()

		query := `
			UPDATE rentals
			SET status = 'active',
			    updated_on = NOW()
			WHERE status = 'confirmed'
			  AND start_date <= $1::date
			RETURNING id, car_id, start_date
		`

		rows, err := jr.db.QueryContext(ctx, query, booking.FormatDate(time.Now().UTC()))
		if err != nil {
			logger.Error("Failed to activate due reservations", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, carID int32
			var startDate time.Time
			if err := rows.Scan(&id, &carID, &startDate); err != nil {
				logger.Error("Failed to scan activated reservation", "error", err)
				continue
			}
			logger.Debug("Activated reservation",
				"reservation_id", id,
				"car_id", carID,
				"start_date", booking.FormatDate(startDate))
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating activated reservations", "error", err)
			return
		}

		logger.Info("Activated due reservations", "count", count)
	})
}

// CompleteFinishedReservations completes active reservations once the
// effective return date has passed.
func (jr *JobRunner) CompleteFinishedReservations() {
	jr.runWithRecovery("CompleteFinishedReservations", func() {
		ctx := context.Background()

		query := `
			UPDATE rentals
			SET status = 'completed',
			    updated_on = NOW()
			WHERE status = 'active'
			  AND COALESCE(return_date, end_date) < $1::date
			RETURNING id, car_id
		`

		rows, err := jr.db.QueryContext(ctx, query, booking.FormatDate(time.Now().UTC()))
		if err != nil {
			logger.Error("Failed to complete finished reservations", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, carID int32
			if err := rows.Scan(&id, &carID); err != nil {
				logger.Error("Failed to scan completed reservation", "error", err)
				continue
			}
			logger.Debug("Completed reservation", "reservation_id", id, "car_id", carID)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating completed reservations", "error", err)
			return
		}

		logger.Info("Completed finished reservations", "count", count)
	})
}

// ExpireStalePendingReservations cancels pending reservations that were never
// confirmed within the configured window, releasing their dates.
func (jr *JobRunner) ExpireStalePendingReservations() {
	jr.runWithRecovery("ExpireStalePendingReservations", func() {
		ctx := context.Background()

		expiryDays := jr.config.Booking.PendingExpiryDays
		if expiryDays <= 0 {
			expiryDays = 3
		}
		cutoff := time.Now().UTC().AddDate(0, 0, -expiryDays)

		query := `
			UPDATE rentals
			SET status = 'cancelled',
			    updated_on = NOW()
			WHERE status = 'pending'
			  AND created_on < $1
			RETURNING id, user_id, car_id
		`

		rows, err := jr.db.QueryContext(ctx, query, cutoff)
		if err != nil {
			logger.Error("Failed to expire stale pending reservations", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var id, userID, carID int32
			if err := rows.Scan(&id, &userID, &carID); err != nil {
				logger.Error("Failed to scan expired reservation", "error", err)
				continue
			}
			logger.Debug("Expired stale pending reservation",
				"reservation_id", id,
				"user_id", userID,
				"car_id", carID)
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating expired reservations", "error", err)
			return
		}

		logger.Info("Expired stale pending reservations", "count", count, "cutoff", cutoff.Format(time.RFC3339))
	})
}

// SyncVehicleStatus reconciles car status with the rental calendar: cars with
// an active rental covering today become rented, rented cars without one
// return to available. Maintenance is left alone.
func (jr *JobRunner) SyncVehicleStatus() {
	jr.runWithRecovery("SyncVehicleStatus", func() {
		ctx := context.Background()
		today := booking.FormatDate(time.Now().UTC())

		// Vehicle statuses are stored capitalized ("Available", "Rented"),
		// so they are bound from the domain constants, never spelled inline.
		markRented := `
			UPDATE cars
			SET status = $1,
			    updated_on = NOW()
			WHERE status = $2
			  AND id IN (
			      SELECT car_id FROM rentals
			      WHERE status = 'active'
			        AND start_date <= $3::date
			        AND COALESCE(return_date, end_date) >= $3::date
			  )
		`
		res, err := jr.db.ExecContext(ctx, markRented, domain.VehicleStatusRented, domain.VehicleStatusAvailable, today)
		if err != nil {
			logger.Error("Failed to mark cars as rented", "error", err)
			return
		}
		rented, _ := res.RowsAffected()

		markAvailable := `
			UPDATE cars
			SET status = $1,
			    updated_on = NOW()
			WHERE status = $2
			  AND id NOT IN (
			      SELECT car_id FROM rentals
			      WHERE status = 'active'
			        AND start_date <= $3::date
			        AND COALESCE(return_date, end_date) >= $3::date
			  )
		`
		res, err = jr.db.ExecContext(ctx, markAvailable, domain.VehicleStatusAvailable, domain.VehicleStatusRented, today)
		if err != nil {
			logger.Error("Failed to release rented cars", "error", err)
			return
		}
		released, _ := res.RowsAffected()

		logger.Info("Synced vehicle status", "marked_rented", rented, "released", released)
	})
}
