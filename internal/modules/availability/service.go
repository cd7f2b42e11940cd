package availability

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"bookings/internal/database"
	"bookings/internal/domain"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type Service struct {
	reservations ReservationRepository
	rooms        RoomRepository
	clock        clockwork.Clock
}

func NewService(reservations ReservationRepository, rooms RoomRepository, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{reservations: reservations, rooms: rooms, clock: clock}
}

// Search checks one room for the given dates.
func (s *Service) Search(ctx context.Context, req SearchRequest) (domain.AvailabilityResult, error) {
	room := domain.RoomID(strings.TrimSpace(req.RoomID))
	if !room.Valid() {
		return domain.AvailabilityResult{}, ErrUnknownRoom
	}
	start, end, err := parseRange(req.Start, req.End)
	if err != nil {
		return domain.AvailabilityResult{}, err
	}
	roomID, err := strconv.ParseInt(string(room), 10, 64)
	if err != nil {
		return domain.AvailabilityResult{}, ErrUnknownRoom
	}

	ok, err := s.reservations.HasAvailability(ctx, roomID, start, end)
	if err != nil {
		return domain.AvailabilityResult{}, fmt.Errorf("search availability for room %d: %w", roomID, err)
	}
	if !ok {
		return domain.AvailabilityResult{OK: false}, nil
	}
	return domain.AvailabilityResult{
		OK:        true,
		RoomID:    string(room),
		StartDate: start.Format(domain.DateLayout),
		EndDate:   end.Format(domain.DateLayout),
	}, nil
}

// AvailableRooms lists every room that is free for the given dates.
func (s *Service) AvailableRooms(ctx context.Context, req SearchAllRequest) ([]domain.Room, error) {
	start, end, err := parseRange(req.Start, req.End)
	if err != nil {
		return nil, err
	}
	rooms, err := s.rooms.Available(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("search available rooms: %w", err)
	}
	return rooms, nil
}

// Draft resolves a booking link into the reservation form's starting data.
func (s *Service) Draft(ctx context.Context, q BookRoomQuery) (*ReservationDraft, error) {
	roomID, err := strconv.ParseInt(strings.TrimSpace(q.ID), 10, 64)
	if err != nil || roomID <= 0 {
		return nil, ErrValidation
	}
	start, end, err := parseRange(q.Start, q.End)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	return &ReservationDraft{
		RoomID:    room.ID,
		RoomName:  room.RoomName,
		StartDate: start.Format(domain.DateLayout),
		EndDate:   end.Format(domain.DateLayout),
	}, nil
}

// MakeReservation books the room if the dates are still free. Field-level
// validation happens in the handler.
func (s *Service) MakeReservation(ctx context.Context, req MakeReservationRequest) (*domain.Reservation, error) {
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if start.Before(s.today()) {
		return nil, ErrInvalidDates
	}

	if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	ok, err := s.reservations.HasAvailability(ctx, req.RoomID, start, end)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAvailable
	}

	res := &domain.Reservation{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		StartDate: start,
		EndDate:   end,
		RoomID:    req.RoomID,
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		if isOverbooking(err) {
			return nil, ErrOverbooking
		}
		return nil, err
	}
	return res, nil
}

func (s *Service) Reservation(ctx context.Context, id int64) (*ReservationSummary, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	out := &ReservationSummary{
		ID:        res.ID,
		FirstName: res.FirstName,
		LastName:  res.LastName,
		Email:     res.Email,
		Phone:     res.Phone,
		RoomID:    res.RoomID,
		StartDate: res.StartDate.Format(domain.DateLayout),
		EndDate:   res.EndDate.Format(domain.DateLayout),
	}
	if res.Room != nil {
		out.RoomName = res.Room.RoomName
	}
	return out, nil
}

func (s *Service) today() time.Time {
	y, m, d := s.clock.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// parseRange parses two yyyy-mm-dd dates and rejects start after end.
func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(domain.DateLayout, strings.TrimSpace(startStr))
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDates
	}
	end, err := time.Parse(domain.DateLayout, strings.TrimSpace(endStr))
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDates
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvalidDates
	}
	return start, end, nil
}

func isOverbooking(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgExclusionViolation:
		return true
	case pgUniqueViolation:
		return pgErr.ConstraintName == database.OverbookingConstraint
	}
	return false
}
