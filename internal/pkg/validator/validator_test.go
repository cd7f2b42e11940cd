package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type reservationForm struct {
	FirstName string `json:"first_name" validate:"required,min=3"`
	Email     string `json:"email,omitempty" validate:"required,email"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	Notes     string `validate:"max=5"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(reservationForm{
		FirstName: "Alice",
		Email:     "alice@example.com",
		StartDate: "2030-05-01",
	}))

	errs := Validate(reservationForm{
		FirstName: "Al",
		Email:     "nope",
		StartDate: "05/01/2030",
		Notes:     "too long",
	})
	assert.Equal(t, map[string]string{
		"first_name": "min",
		"email":      "email",
		"start_date": "datetime",
		"Notes":      "max",
	}, errs)
}

func TestValidate_NotAStruct(t *testing.T) {
	errs := Validate("plain string")
	assert.Contains(t, errs, "_")
}
