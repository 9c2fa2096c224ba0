package jobs

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"atlasrent-backend/internal/config"
	"atlasrent-backend/internal/domain"
)

func newTestJobRunner(t *testing.T) (*JobRunner, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{Booking: config.BookingConfig{PendingExpiryDays: 3}}
	return NewJobRunner(db, nil, &Services{}, cfg), mock
}

func TestActivateDueReservations(t *testing.T) {
	runner, mock := newTestJobRunner(t)

	rows := sqlmock.NewRows([]string{"id", "car_id", "start_date"}).
		AddRow(1, 7, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)).
		AddRow(2, 9, time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery("UPDATE rentals\\s+SET status = 'active'(.+|\\s)+WHERE status = 'confirmed'").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	runner.ActivateDueReservations()
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteFinishedReservations(t *testing.T) {
	runner, mock := newTestJobRunner(t)

	mock.ExpectQuery("UPDATE rentals\\s+SET status = 'completed'(.+|\\s)+WHERE status = 'active'").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "car_id"}).AddRow(3, 7))

	runner.CompleteFinishedReservations()
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireStalePendingReservations(t *testing.T) {
	runner, mock := newTestJobRunner(t)

	// The cutoff is the configured number of days before now.
	mock.ExpectQuery("UPDATE rentals\\s+SET status = 'cancelled'(.+|\\s)+WHERE status = 'pending'").
		WithArgs(cutoffAround(t, 3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "car_id"}).AddRow(4, 9, 7))

	runner.ExpireStalePendingReservations()
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSyncVehicleStatus pins the status values bound into the car updates to
// the domain constants: the stored statuses are capitalized, so an inline
// lowercase literal would match zero rows and turn the job into a no-op.
func TestSyncVehicleStatus(t *testing.T) {
	runner, mock := newTestJobRunner(t)

	mock.ExpectExec("UPDATE cars").
		WithArgs(domain.VehicleStatusRented, domain.VehicleStatusAvailable, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE cars").
		WithArgs(domain.VehicleStatusAvailable, domain.VehicleStatusRented, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	runner.SyncVehicleStatus()
	assert.NoError(t, mock.ExpectationsWereMet())
}

// cutoffAround matches a timestamp close to now minus the given days.
func cutoffAround(t *testing.T, days int) sqlmock.Argument {
	t.Helper()
	return cutoffMatcher{expected: time.Now().UTC().AddDate(0, 0, -days)}
}

type cutoffMatcher struct {
	expected time.Time
}

func (m cutoffMatcher) Match(v driver.Value) bool {
	ts, ok := v.(time.Time)
	if !ok {
		return false
	}
	diff := ts.Sub(m.expected)
	if diff < 0 {
		diff = -diff
	}
	return diff < time.Minute
}
