package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"bookings/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).First(&room, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &room, nil
}

func (r *RoomRepository) All(ctx context.Context) ([]domain.Room, error) {
	var rooms []domain.Room
	tx := r.db.WithContext(ctx).Order("id").Find(&rooms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rooms, nil
}

// Available lists rooms with no restriction overlapping [start, end].
func (r *RoomRepository) Available(ctx context.Context, start, end time.Time) ([]domain.Room, error) {
	busy := r.db.Model(&domain.RoomRestriction{}).
		Select("room_id").
		Where("? < end_date AND ? > start_date", start, end)

	var rooms []domain.Room
	tx := r.db.WithContext(ctx).Where("id NOT IN (?)", busy).Order("id").Find(&rooms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rooms, nil
}
