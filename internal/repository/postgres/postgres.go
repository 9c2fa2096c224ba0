package postgres

import (
	"database/sql"

	"atlasrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.VehicleRepository
	repository.ReservationRepository
	repository.PromotionRepository
	repository.LocationRepository
	repository.ContentRepository
	repository.UserRepository
	repository.ReviewRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		VehicleRepository:     NewVehicleRepository(db),
		ReservationRepository: NewReservationRepository(db),
		PromotionRepository:   NewPromotionRepository(db),
		LocationRepository:    NewLocationRepository(db),
		ContentRepository:     NewContentRepository(db),
		UserRepository:        NewUserRepository(db),
		ReviewRepository:      NewReviewRepository(db),
	}
}
