package availability

// SearchRequest is the form posted by the check-availability dialog.
type SearchRequest struct {
	Start     string `form:"start"`
	End       string `form:"end"`
	RoomID    string `form:"room_id"`
	CSRFToken string `form:"csrf_token"`
}

type SearchAllRequest struct {
	Start string `form:"start"`
	End   string `form:"end"`
}

// BookRoomQuery carries the parameters of a booking link.
type BookRoomQuery struct {
	ID    string `form:"id"`
	Start string `form:"s"`
	End   string `form:"e"`
}

type ReservationDraft struct {
	RoomID    int64  `json:"room_id"`
	RoomName  string `json:"room_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type MakeReservationRequest struct {
	FirstName string `json:"first_name" validate:"required,min=3"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	RoomID    int64  `json:"room_id" validate:"required,gt=0"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type ReservationSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	RoomID    int64  `json:"room_id"`
	RoomName  string `json:"room_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
