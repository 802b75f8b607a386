package contact

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

const defaultProcessingDelay = 1000 * time.Millisecond

type (
	ContactService interface {
		SendMessage(ctx context.Context, req domain.SendContactMessageRequest) (domain.SendContactMessageResponse, error)
	}

	contactService struct {
		processingDelay time.Duration
	}
)

func NewContactService() ContactService {
	return &contactService{processingDelay: defaultProcessingDelay}
}

// SendMessage simulates delivery: fixed delay, log line, optional
// notification mail. There is no failure path for the caller.
func (s *contactService) SendMessage(_ context.Context, req domain.SendContactMessageRequest) (domain.SendContactMessageResponse, error) {
	time.Sleep(s.processingDelay)

	referenceID := uuid.New().String()
	log.Printf("contact message %s: name=%s email=%s", referenceID, req.Name, req.Email)

	if mailing.Enabled() {
		go func() {
			body := fmt.Sprintf(
				"<p>New contact message <b>%s</b></p><p>%s (%s, %s)</p><p>%s</p>",
				referenceID, req.Name, req.Email, req.Phone, req.Message,
			)
			if err := mailing.SendMail(utils.GetConfig("NOTIFY_EMAIL"), "New contact message", body); err != nil {
				log.Printf("failed to send contact notification %s: %v", referenceID, err)
			}
		}()
	}

	return domain.SendContactMessageResponse{
		ReferenceID: referenceID,
		Status:      "Received",
	}, nil
}
