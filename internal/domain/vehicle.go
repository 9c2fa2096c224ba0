package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "Available"
	VehicleStatusRented      VehicleStatus = "Rented"
	VehicleStatusMaintenance VehicleStatus = "Maintenance"
)

type VehicleTransmission string

const (
	TransmissionAutomatic VehicleTransmission = "Automatic"
	TransmissionManual    VehicleTransmission = "Manual"
)

// Vehicle is a fleet car. Day rates are whole MAD amounts; the weekend rate
// applies when the booking is priced on a Saturday or Sunday.
type Vehicle struct {
	ID           int32               `json:"id"`
	Make         string              `json:"make"`
	Model        string              `json:"model"`
	Year         int32               `json:"year"`
	LicensePlate string              `json:"license_plate"`
	Transmission VehicleTransmission `json:"transmission"`
	FuelType     string              `json:"fuel_type"`
	Category     string              `json:"category"`
	Seats        int32               `json:"seats"`
	WeekdayRate  int64               `json:"base_price_per_day"`
	WeekendRate  int64               `json:"weekend_price_per_day"`
	ImageURLs    []string            `json:"image_urls"`
	Status       VehicleStatus       `json:"status"`
	CreatedOn    time.Time           `json:"created_on"`
	UpdatedOn    time.Time           `json:"updated_on"`
}
