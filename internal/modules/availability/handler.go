package availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/justinas/nosurf"
	"go.uber.org/zap"

	"bookings/internal/domain"
	"bookings/internal/pkg/response"
	"bookings/internal/pkg/validator"
)

const (
	msgInvalidRequest = "Invalid request"
	msgInvalidDates   = "Invalid dates"
	msgUnknownRoom    = "Unknown room"
	msgQueryFailed    = "Error querying database"
)

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// RegisterRoutes mounts the booking endpoints. searchMW wraps the two
// availability searches.
func (h *Handler) RegisterRoutes(r gin.IRouter, searchMW ...gin.HandlerFunc) {
	chain := func(final gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, searchMW...), final)
	}

	r.GET("/csrf-token", h.CSRFToken)
	r.POST("/search-json", chain(h.SearchJSON)...)
	r.POST("/search-availability", chain(h.SearchAvailability)...)
	r.GET("/book-room", h.BookRoom)
	r.POST("/make-reservation", h.MakeReservation)
	r.GET("/reservations/:id", h.GetReservation)
}

func (h *Handler) CSRFToken(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"csrf_token": nosurf.Token(c.Request)})
}

// SearchJSON answers the check-availability dialog. Every response body is
// an AvailabilityResult, errors included.
func (h *Handler) SearchJSON(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Availability(c, http.StatusBadRequest, domain.AvailabilityResult{Message: msgInvalidRequest})
		return
	}

	res, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDates):
			response.Availability(c, http.StatusBadRequest, domain.AvailabilityResult{Message: msgInvalidDates})
		case errors.Is(err, ErrUnknownRoom):
			response.Availability(c, http.StatusBadRequest, domain.AvailabilityResult{Message: msgUnknownRoom})
		default:
			_ = c.Error(err)
			response.Availability(c, http.StatusInternalServerError, domain.AvailabilityResult{Message: msgQueryFailed})
		}
		return
	}

	h.log.Debug("availability searched",
		zap.String("room_id", req.RoomID),
		zap.String("start", req.Start),
		zap.String("end", req.End),
		zap.Bool("ok", res.OK),
	)
	response.Availability(c, http.StatusOK, res)
}

func (h *Handler) SearchAvailability(c *gin.Context) {
	var req SearchAllRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rooms, err := h.service.AvailableRooms(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidDates) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", msgInvalidDates)
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", msgQueryFailed)
		return
	}

	if len(rooms) == 0 {
		response.Error(c, http.StatusNotFound, "NO_AVAILABILITY", "No availability")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) BookRoom(c *gin.Context) {
	var q BookRoomQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking link")
		return
	}

	draft, err := h.service.Draft(c.Request.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		case errors.Is(err, ErrInvalidDates):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", msgInvalidDates)
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load room")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": draft})
}

func (h *Handler) MakeReservation(c *gin.Context) {
	var req MakeReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation", errs)
		return
	}

	res, err := h.service.MakeReservation(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDates):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", msgInvalidDates)
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.Is(err, ErrNotAvailable), errors.Is(err, ErrOverbooking):
			response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Room is not available for the selected dates")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create reservation")
		}
		return
	}

	h.log.Info("reservation created",
		zap.Int64("reservation_id", res.ID),
		zap.Int64("room_id", res.RoomID),
	)
	response.Success(c, http.StatusCreated, gin.H{
		"reservation": gin.H{
			"id":         res.ID,
			"room_id":    res.RoomID,
			"start_date": res.StartDate.Format(domain.DateLayout),
			"end_date":   res.EndDate.Format(domain.DateLayout),
		},
	})
}

func (h *Handler) GetReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation id")
		return
	}

	summary, err := h.service.Reservation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load reservation")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reservation": summary})
}
