package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"atlasrent-backend/internal/booking"
	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/logger"
	"atlasrent-backend/internal/repository"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidTransition rejects admin status changes that skip the
	// pending -> confirmed -> active -> completed lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")
)

type bookingService struct {
	reservationRepo repository.ReservationRepository
	vehicleRepo     repository.VehicleRepository
	promoRepo       repository.PromotionRepository
	locationRepo    repository.LocationRepository
	userRepo        repository.UserRepository
	emailSvc        EmailService
	now             func() time.Time
}

func NewBookingService(
	reservationRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	promoRepo repository.PromotionRepository,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		promoRepo:       promoRepo,
		locationRepo:    locationRepo,
		userRepo:        userRepo,
		emailSvc:        emailSvc,
		now:             time.Now,
	}
}

// evaluate fetches the snapshot a single evaluation needs and runs the
// evaluator over it. The price-selection date is the current time; the
// evaluator itself never reads the clock.
func (s *bookingService) evaluate(ctx context.Context, req QuoteRequest) (*booking.Draft, *domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("vehicle %d: %w", req.VehicleID, ErrNotFound)
		}
		return nil, nil, err
	}

	var location *domain.PickupLocation
	if req.LocationID != "" {
		location, err = s.locationRepo.GetByID(ctx, req.LocationID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, nil, err
		}
	}

	reservations, err := s.reservationRepo.ListBlockingByVehicle(ctx, req.VehicleID)
	if err != nil {
		return nil, nil, err
	}
	tiers, err := s.promoRepo.ListFreeDaysTiers(ctx)
	if err != nil {
		return nil, nil, err
	}

	var insurance *domain.InsuranceOption
	if req.InsuranceID != nil {
		insurance, err = s.promoRepo.GetInsuranceOption(ctx, *req.InsuranceID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil, fmt.Errorf("insurance option %d: %w", *req.InsuranceID, ErrNotFound)
			}
			return nil, nil, err
		}
	}

	draft, err := booking.Evaluate(booking.EvaluateInput{
		Vehicle:       vehicle,
		Location:      location,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		PaymentMethod: req.PaymentMethod,
		Insurance:     insurance,
		Reservations:  reservations,
		Tiers:         tiers,
		PriceDate:     s.now(),
	})
	if err != nil {
		return nil, nil, err
	}

	// The awarded free days extend the return window beyond the range the
	// evaluator checked, so re-validate the full blocked interval before
	// anything is persisted.
	if draft.FreeDays > 0 {
		start, _ := booking.ParseDate(draft.StartDate)
		ret, _ := booking.ParseDate(draft.ReturnDate)
		conflict, err := booking.FindConflict(start, ret, reservations)
		if err != nil {
			return nil, nil, err
		}
		if conflict != nil {
			return nil, nil, &booking.ConflictError{Conflict: *conflict}
		}
	}

	return draft, vehicle, nil
}

func (s *bookingService) Quote(ctx context.Context, req QuoteRequest) (*booking.Draft, error) {
	draft, _, err := s.evaluate(ctx, req)
	return draft, err
}

func (s *bookingService) Create(ctx context.Context, userID int32, req CreateReservationRequest) (*domain.Reservation, error) {
	draft, vehicle, err := s.evaluate(ctx, req.QuoteRequest)
	if err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		UserID:          userID,
		VehicleID:       vehicle.ID,
		CarMake:         vehicle.Make,
		CarModel:        vehicle.Model,
		CarTransmission: string(vehicle.Transmission),
		StartDate:       draft.StartDate,
		EndDate:         draft.EndDate,
		RentalDays:      int32(draft.RentalDays),
		FreeDays:        int32(draft.FreeDays),
		DailyPrice:      draft.DailyRate,
		TotalPrice:      draft.TotalPrice,
		PaymentMethod:   draft.PaymentMethod,
		PickupLocation:  draft.LocationName,
		IDDocumentURL:   req.Documents.IDDocument,
		LicenseURL:      req.Documents.DrivingLicense,
		PassportURL:     req.Documents.Passport,
		Status:          domain.ReservationStatusPending,
	}
	if len(vehicle.ImageURLs) > 0 {
		reservation.CarImage = vehicle.ImageURLs[0]
	}
	if draft.FreeDays > 0 {
		ret := draft.ReturnDate
		reservation.ReturnDate = &ret
	}
	if draft.Insurance != nil {
		reservation.InsuranceName = &draft.Insurance.Name
		reservation.InsurancePerDay = &draft.Insurance.PricePerDay
		reservation.InsuranceTotal = &draft.Insurance.TotalCost
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	// Confirmation email is best-effort: the reservation is already booked.
	if user, uerr := s.userRepo.GetByID(ctx, userID); uerr == nil {
		if merr := s.emailSvc.SendBookingConfirmation(ctx, user.Email, user.Name, reservation); merr != nil {
			logger.Warn("Failed to send booking confirmation", "reservation_id", reservation.ID, "error", merr)
		}
	}

	logger.Info("Reservation created",
		"reservation_id", reservation.ID,
		"car_id", reservation.VehicleID,
		"start_date", reservation.StartDate,
		"end_date", reservation.EndDate,
		"total_price", reservation.TotalPrice)
	return reservation, nil
}

func (s *bookingService) Get(ctx context.Context, userID, id int32) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if reservation.UserID != userID {
		return nil, ErrUnauthorized
	}
	return reservation, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return s.reservationRepo.ListByUser(ctx, userID, status, page, pageSize)
}

func (s *bookingService) Cancel(ctx context.Context, userID, id int32) (*domain.Reservation, error) {
	reservation, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	switch reservation.Status {
	case domain.ReservationStatusPending, domain.ReservationStatusConfirmed:
	default:
		return nil, fmt.Errorf("cannot cancel a %s reservation: %w", reservation.Status, ErrInvalidTransition)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.ReservationStatusCancelled); err != nil {
		return nil, err
	}
	reservation.Status = domain.ReservationStatusCancelled
	return reservation, nil
}

func (s *bookingService) BlockedIntervals(ctx context.Context, vehicleID int32) ([]booking.Interval, error) {
	reservations, err := s.reservationRepo.ListBlockingByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	intervals := make([]booking.Interval, 0, len(reservations))
	for i := range reservations {
		blocked, err := booking.BlockingInterval(&reservations[i])
		if err != nil {
			logger.Warn("Skipping reservation with malformed dates", "reservation_id", reservations[i].ID, "error", err)
			continue
		}
		intervals = append(intervals, blocked)
	}
	return intervals, nil
}

func (s *bookingService) ListAll(ctx context.Context, status, query string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	return s.reservationRepo.ListAll(ctx, status, query, page, pageSize)
}

var allowedTransitions = map[domain.ReservationStatus][]domain.ReservationStatus{
	domain.ReservationStatusPending:   {domain.ReservationStatusConfirmed, domain.ReservationStatusCancelled},
	domain.ReservationStatusConfirmed: {domain.ReservationStatusActive, domain.ReservationStatusCancelled},
	domain.ReservationStatusActive:    {domain.ReservationStatusCompleted},
}

func (s *bookingService) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	allowed := false
	for _, next := range allowedTransitions[reservation.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%s -> %s: %w", reservation.Status, status, ErrInvalidTransition)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	reservation.Status = status

	if user, uerr := s.userRepo.GetByID(ctx, reservation.UserID); uerr == nil {
		if merr := s.emailSvc.SendStatusUpdate(ctx, user.Email, user.Name, reservation); merr != nil {
			logger.Warn("Failed to send status update", "reservation_id", id, "error", merr)
		}
	}
	return reservation, nil
}
