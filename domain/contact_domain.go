package domain

var (
	MessageSuccessSendContactMessage = "contact message sent successfully"
	MessageFailedSendContactMessage  = "failed to send contact message"
)

type (
	SendContactMessageRequest struct {
		Name    string `json:"name" validate:"required,min=2"`
		Email   string `json:"email" validate:"required,email"`
		Phone   string `json:"phone" validate:"omitempty"`
		Message string `json:"message" validate:"required,min=10"`
	}

	SendContactMessageResponse struct {
		ReferenceID string `json:"reference_id"`
		Status      string `json:"status"`
	}
)
