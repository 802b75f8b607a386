package domain

import (
	"errors"
)

var (
	MessageSuccessCreateReservation = "reservation request received successfully"
	MessageFailedCreateReservation  = "failed to submit reservation request"

	ErrReservationDateInPast = errors.New("reservation date must be in the future")
)

type (
	CreateReservationRequest struct {
		Name            string `json:"name" validate:"required,min=2"`
		Email           string `json:"email" validate:"required,email"`
		Phone           string `json:"phone" validate:"required,min=10"`
		Date            string `json:"date" validate:"required"`
		Time            string `json:"time" validate:"required"`
		Guests          string `json:"guests" validate:"required"`
		SpecialRequests string `json:"special_requests" validate:"omitempty"`
	}

	CreateReservationResponse struct {
		ReferenceID string `json:"reference_id"`
		Name        string `json:"name"`
		Date        string `json:"date"`
		Time        string `json:"time"`
		Guests      string `json:"guests"`
		Status      string `json:"status"`
	}
)
