package reservation

import (
	"context"
	"testing"
	"time"

	"rumbles-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() domain.CreateReservationRequest {
	return domain.CreateReservationRequest{
		Name:   "Sarah M.",
		Email:  "sarah@example.com",
		Phone:  "01279902532",
		Date:   time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Time:   "18:00",
		Guests: "2 Guests",
	}
}

func TestCreateReservation(t *testing.T) {
	service := &reservationService{}

	res, err := service.CreateReservation(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, res.ReferenceID)
	assert.Equal(t, "Sarah M.", res.Name)
	assert.Equal(t, "Confirmed", res.Status)
}

func TestCreateReservationRejectsPastDate(t *testing.T) {
	service := &reservationService{}

	req := validRequest()
	req.Date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := service.CreateReservation(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrReservationDateInPast)
}

func TestCreateReservationRejectsMalformedDate(t *testing.T) {
	service := &reservationService{}

	req := validRequest()
	req.Date = "next friday"

	_, err := service.CreateReservation(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrReservationDateInPast)
}

func TestCreateReservationGeneratesUniqueReferences(t *testing.T) {
	service := &reservationService{}

	first, err := service.CreateReservation(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := service.CreateReservation(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ReferenceID, second.ReferenceID)
}
