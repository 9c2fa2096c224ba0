package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"atlasrent-backend/internal/domain"
	"atlasrent-backend/internal/repository"
)

func TestFleetService_ListVehicles(t *testing.T) {
	ctx := context.Background()

	fleet := []domain.Vehicle{
		{ID: 1, Make: "Dacia", Model: "Logan", Status: domain.VehicleStatusAvailable},
		{ID: 2, Make: "Renault", Model: "Clio", Status: domain.VehicleStatusAvailable},
	}

	t.Run("NoDateWindow", func(t *testing.T) {
		vehicles := new(MockVehicleRepo)
		svc := NewFleetService(vehicles)

		vehicles.On("List", ctx, repository.VehicleFilter{}, int32(1), int32(20)).Return(fleet, int32(2), nil)

		listed, total, err := svc.ListVehicles(ctx, repository.VehicleFilter{}, "", "", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), total)
		assert.Len(t, listed, 2)
	})

	t.Run("DateWindowJoinsTheFilter", func(t *testing.T) {
		// The window must reach the repository as filter fields so the
		// exclusion runs before LIMIT/OFFSET.
		vehicles := new(MockVehicleRepo)
		svc := NewFleetService(vehicles)

		windowed := repository.VehicleFilter{AvailableFrom: "2024-07-01", AvailableTo: "2024-07-05"}
		vehicles.On("List", ctx, windowed, int32(2), int32(1)).Return(fleet[:1], int32(6), nil)

		listed, total, err := svc.ListVehicles(ctx, repository.VehicleFilter{}, "2024-07-01", "2024-07-05", 2, 1)
		assert.NoError(t, err)
		assert.Len(t, listed, 1)
		// The total is the repository's fleet-wide count, not the page size.
		assert.Equal(t, int32(6), total)
		vehicles.AssertExpectations(t)
	})

	t.Run("HalfOpenWindowIgnored", func(t *testing.T) {
		vehicles := new(MockVehicleRepo)
		svc := NewFleetService(vehicles)

		vehicles.On("List", ctx, repository.VehicleFilter{}, int32(1), int32(20)).Return(fleet, int32(2), nil)

		_, _, err := svc.ListVehicles(ctx, repository.VehicleFilter{}, "2024-07-01", "", 1, 20)
		assert.NoError(t, err)
		vehicles.AssertExpectations(t)
	})
}

func TestFleetService_AddVehicle(t *testing.T) {
	ctx := context.Background()
	vehicles := new(MockVehicleRepo)
	svc := NewFleetService(vehicles)

	vehicles.On("Create", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
		return v.Status == domain.VehicleStatusAvailable
	})).Return(nil)

	v := &domain.Vehicle{Make: "Dacia", Model: "Logan"}
	assert.NoError(t, svc.AddVehicle(ctx, v))
	assert.Equal(t, domain.VehicleStatusAvailable, v.Status)
}
