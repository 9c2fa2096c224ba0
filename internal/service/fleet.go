package service

import (
	"context"
	"database/sql"
	"errors"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
)

type fleetService struct {
	vehicleRepo repository.VehicleRepository
}

func NewFleetService(vehicleRepo repository.VehicleRepository) FleetService {
	return &fleetService{vehicleRepo: vehicleRepo}
}

func (s *fleetService) AddVehicle(ctx context.Context, v *domain.Vehicle) error {
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	return s.vehicleRepo.Create(ctx, v)
}

func (s *fleetService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *fleetService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	return s.vehicleRepo.Update(ctx, v)
}

func (s *fleetService) DeleteVehicle(ctx context.Context, id int32) error {
	return s.vehicleRepo.Delete(ctx, id)
}

// ListVehicles lists the fleet. A date window becomes part of the repository
// filter so the availability exclusion happens before LIMIT/OFFSET and the
// returned total counts every matching vehicle, not just the current page.
func (s *fleetService) ListVehicles(ctx context.Context, filter repository.VehicleFilter, startDate, endDate string, page, pageSize int32) ([]domain.Vehicle, int32, error) {
	if startDate != "" && endDate != "" {
		filter.AvailableFrom = startDate
		filter.AvailableTo = endDate
	}
	return s.vehicleRepo.List(ctx, filter, page, pageSize)
}
