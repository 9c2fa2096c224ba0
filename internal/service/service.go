package service

import (
	"context"
	"io"

	"atlasrent-backend/internal/booking"
	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, email, password, name, phone string) (*domain.User, string, error) // user, access token
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, phone string) (*domain.User, error)
}

// QuoteRequest carries the user's in-flight booking selections.
type QuoteRequest struct {
	VehicleID     int32  `json:"car_id"`
	LocationID    string `json:"pickup_location_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	PaymentMethod string `json:"payment_method"`
	InsuranceID   *int32 `json:"insurance_id,omitempty"`
}

// DocumentURLs are the uploaded rental document links attached at checkout.
type DocumentURLs struct {
	IDDocument     *string `json:"id_document_url,omitempty"`
	DrivingLicense *string `json:"driving_license_url,omitempty"`
	Passport       *string `json:"passport_url,omitempty"`
}

type CreateReservationRequest struct {
	QuoteRequest
	Documents DocumentURLs `json:"documents"`
}

type BookingService interface {
	// Quote evaluates a candidate booking without persisting anything.
	Quote(ctx context.Context, req QuoteRequest) (*booking.Draft, error)
	Create(ctx context.Context, userID int32, req CreateReservationRequest) (*domain.Reservation, error)
	Get(ctx context.Context, userID int32, id int32) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
	Cancel(ctx context.Context, userID int32, id int32) (*domain.Reservation, error)
	// BlockedIntervals powers the booking calendar for one vehicle.
	BlockedIntervals(ctx context.Context, vehicleID int32) ([]booking.Interval, error)

	// Admin surface.
	ListAll(ctx context.Context, status, query string, page, pageSize int32) ([]domain.Reservation, int32, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) (*domain.Reservation, error)
}

type FleetService interface {
	AddVehicle(ctx context.Context, v *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id int32) error
	// ListVehicles filters the fleet; when startDate and endDate are both
	// set, vehicles blocked anywhere in that window are excluded.
	ListVehicles(ctx context.Context, filter repository.VehicleFilter, startDate, endDate string, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type PromotionService interface {
	ListFreeDaysTiers(ctx context.Context) ([]domain.FreeDaysTier, error)
	SaveFreeDaysTiers(ctx context.Context, tiers []domain.FreeDaysTier) ([]domain.FreeDaysTier, error)
	ListInsuranceOptions(ctx context.Context) ([]domain.InsuranceOption, error)
	SaveInsuranceOption(ctx context.Context, opt *domain.InsuranceOption) error
	DeleteInsuranceOption(ctx context.Context, id int32) error
}

type ContentService interface {
	GetSection(ctx context.Context, sectionKey string) (*domain.SiteContent, error)
	SaveSection(ctx context.Context, sectionKey string, content []byte) (*domain.SiteContent, error)
	ListSections(ctx context.Context) ([]domain.SiteContent, error)
	ListLocations(ctx context.Context) ([]domain.PickupLocation, error)
}

type ReviewService interface {
	Submit(ctx context.Context, userID *int32, author string, rating int32, comment string) (*domain.Review, error)
	ListPublic(ctx context.Context, limit int32) ([]domain.Review, error)
	ListAll(ctx context.Context, page, pageSize int32) ([]domain.Review, int32, error)
	Moderate(ctx context.Context, id int32, approved bool) error
	Delete(ctx context.Context, id int32) error
}

type DocumentService interface {
	// Upload stores one rental document and returns its public URL.
	Upload(ctx context.Context, userID int32, docType, filename, contentType string, size int64, body io.Reader) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, to, name string, r *domain.Reservation) error
	SendStatusUpdate(ctx context.Context, to, name string, r *domain.Reservation) error
}
