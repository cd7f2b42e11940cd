package domain

import "time"

// DateLayout is the wire format for every date exchanged with the browser.
const DateLayout = "2006-01-02"

type Reservation struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name" validate:"required,min=3"`
	LastName  string    `json:"last_name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	RoomID    int64     `json:"room_id"`
	Processed bool      `json:"processed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

type RoomRestriction struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	StartDate     time.Time       `json:"start_date" gorm:"index"`
	EndDate       time.Time       `json:"end_date" gorm:"index"`
	RoomID        int64           `json:"room_id" gorm:"index"`
	ReservationID *int64          `json:"reservation_id,omitempty"`
	RestrictionID RestrictionKind `json:"restriction_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AvailabilityResult is the JSON body returned by the availability endpoint.
// RoomID, StartDate and EndDate are only meaningful when OK is true.
type AvailabilityResult struct {
	OK        bool   `json:"ok"`
	Message   string `json:"message,omitempty"`
	RoomID    string `json:"room_id,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}
