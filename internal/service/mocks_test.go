package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
)

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) UpdateStatus(ctx context.Context, id int32, status domain.ReservationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockReservationRepo) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}
func (m *MockReservationRepo) ListAll(ctx context.Context, status, query string, page, pageSize int32) ([]domain.Reservation, int32, error) {
	args := m.Called(ctx, status, query, page, pageSize)
	return args.Get(0).([]domain.Reservation), args.Get(1).(int32), args.Error(2)
}
func (m *MockReservationRepo) ListBlockingByVehicle(ctx context.Context, vehicleID int32) ([]domain.Reservation, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListBlockedVehicleIDs(ctx context.Context, startDate, endDate string) ([]int32, error) {
	args := m.Called(ctx, startDate, endDate)
	return args.Get(0).([]int32), args.Error(1)
}

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context, filter repository.VehicleFilter, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Vehicle), args.Get(1).(int32), args.Error(2)
}

// MockPromotionRepo
type MockPromotionRepo struct {
	mock.Mock
}

func (m *MockPromotionRepo) ListFreeDaysTiers(ctx context.Context) ([]domain.FreeDaysTier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FreeDaysTier), args.Error(1)
}
func (m *MockPromotionRepo) ReplaceFreeDaysTiers(ctx context.Context, tiers []domain.FreeDaysTier) error {
	args := m.Called(ctx, tiers)
	return args.Error(0)
}
func (m *MockPromotionRepo) ListInsuranceOptions(ctx context.Context) ([]domain.InsuranceOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.InsuranceOption), args.Error(1)
}
func (m *MockPromotionRepo) GetInsuranceOption(ctx context.Context, id int32) (*domain.InsuranceOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InsuranceOption), args.Error(1)
}
func (m *MockPromotionRepo) CreateInsuranceOption(ctx context.Context, opt *domain.InsuranceOption) error {
	args := m.Called(ctx, opt)
	return args.Error(0)
}
func (m *MockPromotionRepo) UpdateInsuranceOption(ctx context.Context, opt *domain.InsuranceOption) error {
	args := m.Called(ctx, opt)
	return args.Error(0)
}
func (m *MockPromotionRepo) DeleteInsuranceOption(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLocationRepo
type MockLocationRepo struct {
	mock.Mock
}

func (m *MockLocationRepo) List(ctx context.Context) ([]domain.PickupLocation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PickupLocation), args.Error(1)
}
func (m *MockLocationRepo) GetByID(ctx context.Context, id string) (*domain.PickupLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PickupLocation), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, to, name string, r *domain.Reservation) error {
	args := m.Called(ctx, to, name, r)
	return args.Error(0)
}
func (m *MockEmailService) SendStatusUpdate(ctx context.Context, to, name string, r *domain.Reservation) error {
	args := m.Called(ctx, to, name, r)
	return args.Error(0)
}
