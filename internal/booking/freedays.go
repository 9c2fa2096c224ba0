package booking

import "atlasrent-backend/internal/domain"

// ResolveFreeDays returns the free-day bonus for a rental of the given
// length. Tiers are expected sorted ascending by MinRentalDays; the last
// tier whose minimum does not exceed rentalDays wins, so larger tiers
// overwrite earlier matches. A rental below every tier earns nothing.
func ResolveFreeDays(tiers []domain.FreeDaysTier, rentalDays int) int {
	if rentalDays < 1 || len(tiers) == 0 {
		return 0
	}
	free := 0
	for _, tier := range tiers {
		if rentalDays >= int(tier.MinRentalDays) {
			free = int(tier.FreeDays)
		}
	}
	return free
}
