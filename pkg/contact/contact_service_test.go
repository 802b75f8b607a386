package contact

import (
	"context"
	"testing"

	"rumbles-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	service := &contactService{}

	res, err := service.SendMessage(context.Background(), domain.SendContactMessageRequest{
		Name:    "James T.",
		Email:   "james@example.com",
		Message: "Do you cater for gluten-free batter?",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ReferenceID)
	assert.Equal(t, "Received", res.Status)
}
