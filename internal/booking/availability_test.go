package booking

import (
	"testing"

	"atlasrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBlockingInterval(t *testing.T) {
	t.Run("Uses end date by default", func(t *testing.T) {
		res := domain.Reservation{StartDate: "2024-06-01", EndDate: "2024-06-05"}
		blocked, err := BlockingInterval(&res)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-01", FormatDate(blocked.Start))
		assert.Equal(t, "2024-06-05", FormatDate(blocked.End))
	})

	t.Run("Return date extends the block", func(t *testing.T) {
		res := domain.Reservation{
			StartDate:  "2024-06-01",
			EndDate:    "2024-06-05",
			ReturnDate: strPtr("2024-06-07"),
		}
		blocked, err := BlockingInterval(&res)
		require.NoError(t, err)
		assert.Equal(t, "2024-06-07", FormatDate(blocked.End))
	})

	t.Run("Malformed date", func(t *testing.T) {
		res := domain.Reservation{StartDate: "June 1st", EndDate: "2024-06-05"}
		_, err := BlockingInterval(&res)
		assert.Error(t, err)
	})
}

func TestFindConflict(t *testing.T) {
	reservations := []domain.Reservation{
		{StartDate: "2024-06-01", EndDate: "2024-06-05", Status: domain.ReservationStatusConfirmed},
	}

	t.Run("Overlapping candidate reports the blocking interval", func(t *testing.T) {
		start, _ := ParseDate("2024-06-04")
		end, _ := ParseDate("2024-06-08")
		conflict, err := FindConflict(start, end, reservations)
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, "2024-06-01", FormatDate(conflict.Start))
		assert.Equal(t, "2024-06-05", FormatDate(conflict.End))
	})

	t.Run("Day after blocking end is free", func(t *testing.T) {
		start, _ := ParseDate("2024-06-06")
		end, _ := ParseDate("2024-06-10")
		conflict, err := FindConflict(start, end, reservations)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("First conflict in caller order wins", func(t *testing.T) {
		many := []domain.Reservation{
			{StartDate: "2024-06-10", EndDate: "2024-06-12"},
			{StartDate: "2024-06-01", EndDate: "2024-06-05"},
		}
		start, _ := ParseDate("2024-06-03")
		end, _ := ParseDate("2024-06-11")
		conflict, err := FindConflict(start, end, many)
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, "2024-06-10", FormatDate(conflict.Start))
	})

	t.Run("No reservations", func(t *testing.T) {
		start, _ := ParseDate("2024-06-01")
		end, _ := ParseDate("2024-06-05")
		conflict, err := FindConflict(start, end, nil)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})
}
