package availability

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrInvalidDates        = errors.New("invalid date range")
	ErrUnknownRoom         = errors.New("unknown room")
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotAvailable        = errors.New("room not available")
	ErrOverbooking         = errors.New("overbooking constraint violation")
)
