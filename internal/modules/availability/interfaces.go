package availability

import (
	"context"
	"time"

	"bookings/internal/domain"
)

// ReservationRepository defines the reservation and restriction storage the service needs
type ReservationRepository interface {
	HasAvailability(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// RoomRepository defines the interface for room lookups
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	Available(ctx context.Context, start, end time.Time) ([]domain.Room, error)
}
