package domain

import "time"

// RoomID is the opaque room token passed between the booking page and the
// availability endpoint.
type RoomID string

const (
	RoomGeneralsQuarters RoomID = "1"
	RoomMajorsSuite      RoomID = "2"
)

// Valid reports whether id names one of the bookable rooms.
func (id RoomID) Valid() bool {
	return id == RoomGeneralsQuarters || id == RoomMajorsSuite
}

type Room struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	RoomName  string    `json:"room_name" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RestrictionKind int64

const (
	RestrictionReservation RestrictionKind = 1
	RestrictionOwnerBlock  RestrictionKind = 2
)

type Restriction struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	RestrictionName string    `json:"restriction_name"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
