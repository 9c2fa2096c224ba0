package domain

type LocationType string

const (
	LocationTypeAgency  LocationType = "agency"
	LocationTypeAirport LocationType = "airport"
	LocationTypePort    LocationType = "port"
	LocationTypeStation LocationType = "station"
)

// PickupLocation is a place where a rental can start. IDs are stable slugs
// ("tng-airport") referenced from reservations.
type PickupLocation struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type LocationType `json:"type"`
}
