package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"bookings/internal/domain"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// HasAvailability returns true when no restriction on roomID overlaps [start, end].
func (r *ReservationRepository) HasAvailability(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&domain.RoomRestriction{}).
		Where("room_id = ? AND ? < end_date AND ? > start_date", roomID, start, end).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt == 0, nil
}

// Create stores the reservation and its room restriction atomically.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Room").Create(res).Error; err != nil {
			return err
		}

		id := res.ID
		restriction := domain.RoomRestriction{
			StartDate:     res.StartDate,
			EndDate:       res.EndDate,
			RoomID:        res.RoomID,
			ReservationID: &id,
			RestrictionID: domain.RestrictionReservation,
		}
		return tx.Create(&restriction).Error
	})
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	tx := r.db.WithContext(ctx).Preload("Room").First(&res, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &res, nil
}

// InsertBlock adds an owner block for roomID covering [start, end].
func (r *ReservationRepository) InsertBlock(ctx context.Context, roomID int64, start, end time.Time) error {
	block := domain.RoomRestriction{
		StartDate:     start,
		EndDate:       end,
		RoomID:        roomID,
		RestrictionID: domain.RestrictionOwnerBlock,
	}
	return r.db.WithContext(ctx).Create(&block).Error
}

// DeleteExpiredBlocks removes owner blocks that ended before cutoff.
func (r *ReservationRepository) DeleteExpiredBlocks(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("restriction_id = ? AND reservation_id IS NULL AND end_date < ?", domain.RestrictionOwnerBlock, cutoff).
		Delete(&domain.RoomRestriction{})
	return tx.RowsAffected, tx.Error
}
