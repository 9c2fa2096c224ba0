package repository

import (
	"context"

	"atlasrent-backend/internal/domain"
)

// VehicleFilter narrows fleet listings. Zero values mean "no filter".
// When AvailableFrom and AvailableTo are both set, the listing keeps only
// vehicles in Available status with no blocking reservation overlapping that
// window; the exclusion runs in SQL so pagination and totals stay consistent.
type VehicleFilter struct {
	Query         string
	Category      string
	Transmission  string
	MaxDailyRate  int64
	Status        string
	AvailableFrom string
	AvailableTo   string
}

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, filter VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int32, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error)
	ListAll(ctx context.Context, status, query string, page, pageSize int32) ([]domain.Reservation, int32, error)
	// ListBlockingByVehicle returns reservations in blocking statuses
	// (pending, confirmed, active) for one vehicle, oldest first.
	ListBlockingByVehicle(ctx context.Context, vehicleID int32) ([]domain.Reservation, error)
	// ListBlockedVehicleIDs returns vehicles with a blocking reservation
	// overlapping [startDate, endDate].
	ListBlockedVehicleIDs(ctx context.Context, startDate, endDate string) ([]int32, error)
}

type PromotionRepository interface {
	ListFreeDaysTiers(ctx context.Context) ([]domain.FreeDaysTier, error)
	ReplaceFreeDaysTiers(ctx context.Context, tiers []domain.FreeDaysTier) error
	ListInsuranceOptions(ctx context.Context) ([]domain.InsuranceOption, error)
	GetInsuranceOption(ctx context.Context, id int32) (*domain.InsuranceOption, error)
	CreateInsuranceOption(ctx context.Context, opt *domain.InsuranceOption) error
	UpdateInsuranceOption(ctx context.Context, opt *domain.InsuranceOption) error
	DeleteInsuranceOption(ctx context.Context, id int32) error
}

type LocationRepository interface {
	List(ctx context.Context) ([]domain.PickupLocation, error)
	GetByID(ctx context.Context, id string) (*domain.PickupLocation, error)
}

type ContentRepository interface {
	GetSection(ctx context.Context, sectionKey string) (*domain.SiteContent, error)
	UpsertSection(ctx context.Context, content *domain.SiteContent) error
	ListSections(ctx context.Context) ([]domain.SiteContent, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListApproved(ctx context.Context, limit int32) ([]domain.Review, error)
	ListAll(ctx context.Context, page, pageSize int32) ([]domain.Review, int32, error)
	SetApproved(ctx context.Context, id int32, approved bool) error
	Delete(ctx context.Context, id int32) error
}
