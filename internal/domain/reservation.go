package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusActive    ReservationStatus = "active"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// BlockingStatuses are the reservation states that keep a vehicle off the
// calendar. Completed and cancelled reservations never block.
func BlockingStatuses() []ReservationStatus {
	return []ReservationStatus{
		ReservationStatusPending,
		ReservationStatusConfirmed,
		ReservationStatusActive,
	}
}

// Reservation is a booked rental. Car fields are a snapshot captured at
// booking time so history survives fleet edits. Dates are stored as
// yyyy-mm-dd strings; ReturnDate is EndDate pushed out by awarded free days
// and, when set, extends the blocking interval.
type Reservation struct {
	ID              int32             `json:"id"`
	UserID          int32             `json:"user_id"`
	VehicleID       int32             `json:"car_id"`
	CarMake         string            `json:"car_make"`
	CarModel        string            `json:"car_model"`
	CarImage        string            `json:"car_image,omitempty"`
	CarTransmission string            `json:"car_transmission"`
	StartDate       string            `json:"start_date"`
	EndDate         string            `json:"end_date"`
	ReturnDate      *string           `json:"return_date,omitempty"`
	RentalDays      int32             `json:"rental_days"`
	FreeDays        int32             `json:"free_days"`
	DailyPrice      int64             `json:"daily_price"`
	TotalPrice      int64             `json:"total_price"`
	PaymentMethod   string            `json:"payment_method"`
	PickupLocation  string            `json:"pickup_location"`
	InsuranceName   *string           `json:"insurance_name,omitempty"`
	InsurancePerDay *int64            `json:"insurance_price_per_day,omitempty"`
	InsuranceTotal  *int64            `json:"insurance_total,omitempty"`
	IDDocumentURL   *string           `json:"id_document_url,omitempty"`
	LicenseURL      *string           `json:"driving_license_url,omitempty"`
	PassportURL     *string           `json:"passport_url,omitempty"`
	Status          ReservationStatus `json:"status"`
	CreatedOn       time.Time         `json:"created_on"`
	UpdatedOn       time.Time         `json:"updated_on"`
}

// BlockingEnd returns the last blocked day of the reservation: the return
// date when free days were awarded, the end date otherwise.
func (r *Reservation) BlockingEnd() string {
	if r.ReturnDate != nil && *r.ReturnDate != "" {
		return *r.ReturnDate
	}
	return r.EndDate
}
