package booking

import (
	"time"

	"atlasrent-backend/internal/domain"
)

// Quote is the price breakdown for a candidate booking. All amounts are
// whole MAD.
type Quote struct {
	DailyRate     int64 `json:"daily_price"`
	RentalDays    int   `json:"rental_days"`
	Subtotal      int64 `json:"subtotal"`
	InsuranceCost int64 `json:"insurance_cost"`
	Total         int64 `json:"total_price"`
}

// DailyRate selects the single day-rate used for the entire booking: the
// weekend rate when the evaluation date falls on a Saturday or Sunday, the
// weekday rate otherwise. The rate is fixed once at evaluation time and does
// not vary day-by-day across the range.
func DailyRate(v *domain.Vehicle, at time.Time) int64 {
	switch at.Weekday() {
	case time.Saturday, time.Sunday:
		return v.WeekendRate
	default:
		return v.WeekdayRate
	}
}

// ComputeQuote prices a rental of rentalDays at dailyRate with an optional
// per-day insurance add-on (0 for none). Free-day bonuses never reduce the
// total; they only extend the return date.
func ComputeQuote(dailyRate int64, rentalDays int, insurancePerDay int64) Quote {
	days := int64(rentalDays)
	subtotal := days * dailyRate
	insurance := days * insurancePerDay
	return Quote{
		DailyRate:     dailyRate,
		RentalDays:    rentalDays,
		Subtotal:      subtotal,
		InsuranceCost: insurance,
		Total:         subtotal + insurance,
	}
}
