package booking

import (
	"time"

	"atlasrent-backend/internal/domain"
)

// InsuranceSelection is the insurance snapshot carried on a draft.
type InsuranceSelection struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	PricePerDay int64  `json:"price_per_day"`
	TotalCost   int64  `json:"total_cost"`
}

// Draft is a fully evaluated booking, ready to persist as a pending
// reservation. It is a pure value; assembling it has no side effects and
// identical inputs always yield identical drafts.
type Draft struct {
	VehicleID      int32               `json:"car_id"`
	LocationID     string              `json:"pickup_location_id"`
	LocationName   string              `json:"pickup_location_name"`
	StartDate      string              `json:"start_date"`
	EndDate        string              `json:"end_date"`
	ReturnDate     string              `json:"return_date"`
	RentalDays     int                 `json:"rental_days"`
	DailyRate      int64               `json:"daily_price"`
	FreeDays       int                 `json:"free_days"`
	DiscountAmount int64               `json:"discount_amount"`
	Insurance      *InsuranceSelection `json:"insurance,omitempty"`
	TotalPrice     int64               `json:"total_price"`
	PaymentMethod  string              `json:"payment_method"`
}

// EvaluateInput is the snapshot a single evaluation runs over. Reservations
// must already be filtered to blocking statuses and tiers sorted ascending
// by MinRentalDays. PriceDate is the date whose weekday/weekend status picks
// the day rate; callers pass it explicitly instead of reading the clock.
type EvaluateInput struct {
	Vehicle       *domain.Vehicle
	Location      *domain.PickupLocation
	StartDate     string
	EndDate       string
	PaymentMethod string
	Insurance     *domain.InsuranceOption
	Reservations  []domain.Reservation
	Tiers         []domain.FreeDaysTier
	PriceDate     time.Time
}

// Evaluate validates a candidate booking and assembles its draft. Checks run
// in order (location, dates, vehicle, availability) and the first failure
// aborts with no partial draft: a *ValidationError for input problems, a
// *ConflictError when the range overlaps an existing blocking reservation.
func Evaluate(in EvaluateInput) (*Draft, error) {
	if in.Location == nil {
		return nil, &ValidationError{Field: "location", Reason: "pickup location not selected"}
	}
	if in.StartDate == "" || in.EndDate == "" {
		return nil, &ValidationError{Field: "dates", Reason: "rental dates not selected"}
	}

	start, err := ParseDate(in.StartDate)
	if err != nil {
		return nil, &ValidationError{Field: "dates", Reason: err.Error()}
	}
	end, err := ParseDate(in.EndDate)
	if err != nil {
		return nil, &ValidationError{Field: "dates", Reason: err.Error()}
	}

	rentalDays := DaysBetween(start, end)
	if rentalDays <= 0 {
		return nil, &ValidationError{Field: "dates", Reason: "end date must be after start date"}
	}

	if in.Vehicle == nil {
		return nil, &ValidationError{Field: "vehicle", Reason: "vehicle not selected"}
	}
	if in.Vehicle.Status != domain.VehicleStatusAvailable {
		return nil, &ValidationError{Field: "vehicle", Reason: "vehicle is not available for booking"}
	}

	conflict, err := FindConflict(start, end, in.Reservations)
	if err != nil {
		return nil, &ValidationError{Field: "reservations", Reason: err.Error()}
	}
	if conflict != nil {
		return nil, &ConflictError{Conflict: *conflict}
	}

	dailyRate := DailyRate(in.Vehicle, in.PriceDate)
	freeDays := ResolveFreeDays(in.Tiers, rentalDays)

	var insurancePerDay int64
	if in.Insurance != nil {
		insurancePerDay = in.Insurance.PricePerDay
	}
	quote := ComputeQuote(dailyRate, rentalDays, insurancePerDay)

	draft := &Draft{
		VehicleID:      in.Vehicle.ID,
		LocationID:     in.Location.ID,
		LocationName:   in.Location.Name,
		StartDate:      FormatDate(start),
		EndDate:        FormatDate(end),
		ReturnDate:     FormatDate(end.AddDate(0, 0, freeDays)),
		RentalDays:     rentalDays,
		DailyRate:      dailyRate,
		FreeDays:       freeDays,
		DiscountAmount: int64(freeDays) * dailyRate,
		TotalPrice:     quote.Total,
		PaymentMethod:  in.PaymentMethod,
	}
	if in.Insurance != nil {
		draft.Insurance = &InsuranceSelection{
			ID:          in.Insurance.ID,
			Name:        in.Insurance.Name,
			PricePerDay: in.Insurance.PricePerDay,
			TotalCost:   quote.InsuranceCost,
		}
	}
	return draft, nil
}

// ValidateTiers rejects tier sets that would make the step function
// ambiguous: duplicate minimums, non-positive minimums or bonuses. Used at
// the admin boundary before tiers reach the evaluator.
func ValidateTiers(tiers []domain.FreeDaysTier) error {
	seen := make(map[int32]bool, len(tiers))
	for _, tier := range tiers {
		if tier.MinRentalDays < 1 {
			return &ConfigurationError{Reason: "minimum rental days must be at least 1"}
		}
		if tier.FreeDays < 1 {
			return &ConfigurationError{Reason: "free days must be at least 1"}
		}
		if seen[tier.MinRentalDays] {
			return &ConfigurationError{Reason: "duplicate minimum rental days across tiers"}
		}
		seen[tier.MinRentalDays] = true
	}
	return nil
}
