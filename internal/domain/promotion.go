package domain

// FreeDaysTier awards bonus days once a rental reaches MinRentalDays.
// Tiers behave as a step function: the largest qualifying tier wins.
// MinRentalDays is unique across tiers.
type FreeDaysTier struct {
	ID            int32 `json:"id"`
	MinRentalDays int32 `json:"min_days"`
	FreeDays      int32 `json:"free_days"`
}

// InsuranceOption is an optional per-day add-on chosen at booking time.
type InsuranceOption struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PricePerDay int64  `json:"price_per_day"`
}
