package booking

import (
	"testing"
	"time"

	"atlasrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestDailyRate(t *testing.T) {
	vehicle := &domain.Vehicle{WeekdayRate: 500, WeekendRate: 700}

	t.Run("Weekday", func(t *testing.T) {
		// 2024-06-05 is a Wednesday.
		at := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, int64(500), DailyRate(vehicle, at))
	})

	t.Run("Saturday", func(t *testing.T) {
		at := time.Date(2024, 6, 8, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, int64(700), DailyRate(vehicle, at))
	})

	t.Run("Sunday", func(t *testing.T) {
		at := time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, int64(700), DailyRate(vehicle, at))
	})
}

func TestComputeQuote(t *testing.T) {
	t.Run("No insurance", func(t *testing.T) {
		quote := ComputeQuote(500, 4, 0)
		assert.Equal(t, int64(2000), quote.Subtotal)
		assert.Equal(t, int64(0), quote.InsuranceCost)
		assert.Equal(t, int64(2000), quote.Total)
	})

	t.Run("With insurance", func(t *testing.T) {
		quote := ComputeQuote(500, 4, 50)
		assert.Equal(t, int64(2000), quote.Subtotal)
		assert.Equal(t, int64(200), quote.InsuranceCost)
		assert.Equal(t, int64(2200), quote.Total)
	})

	t.Run("Zero days", func(t *testing.T) {
		quote := ComputeQuote(500, 0, 50)
		assert.Equal(t, int64(0), quote.Total)
	})
}
