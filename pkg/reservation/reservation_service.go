package reservation

import (
	"context"
	"fmt"
	"log"
	"time"

	"rumbles-backend/domain"
	"rumbles-backend/internal/utils"
	"rumbles-backend/internal/utils/mailing"

	"github.com/google/uuid"
)

// There is no real booking system behind this endpoint. Submissions are
// validated, held for a fixed processing delay, logged, and acknowledged;
// a notification mail goes out when SMTP is configured.
const defaultProcessingDelay = 1500 * time.Millisecond

type (
	ReservationService interface {
		CreateReservation(ctx context.Context, req domain.CreateReservationRequest) (domain.CreateReservationResponse, error)
	}

	reservationService struct {
		processingDelay time.Duration
	}
)

func NewReservationService() ReservationService {
	return &reservationService{processingDelay: defaultProcessingDelay}
}

func (s *reservationService) CreateReservation(_ context.Context, req domain.CreateReservationRequest) (domain.CreateReservationResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return domain.CreateReservationResponse{}, domain.ErrReservationDateInPast
	}
	if !date.After(time.Now().Truncate(24 * time.Hour)) {
		return domain.CreateReservationResponse{}, domain.ErrReservationDateInPast
	}

	time.Sleep(s.processingDelay)

	referenceID := uuid.New().String()
	log.Printf("reservation request %s: name=%s date=%s time=%s guests=%s", referenceID, req.Name, req.Date, req.Time, req.Guests)

	if mailing.Enabled() {
		go func() {
			body := fmt.Sprintf(
				"<p>New reservation request <b>%s</b></p><p>%s (%s, %s)<br>%s at %s for %s</p><p>%s</p>",
				referenceID, req.Name, req.Email, req.Phone, req.Date, req.Time, req.Guests, req.SpecialRequests,
			)
			if err := mailing.SendMail(utils.GetConfig("NOTIFY_EMAIL"), "New table reservation", body); err != nil {
				log.Printf("failed to send reservation notification %s: %v", referenceID, err)
			}
		}()
	}

	return domain.CreateReservationResponse{
		ReferenceID: referenceID,
		Name:        req.Name,
		Date:        req.Date,
		Time:        req.Time,
		Guests:      req.Guests,
		Status:      "Confirmed",
	}, nil
}
