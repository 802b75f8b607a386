package review

import (
	"context"
	"testing"

	"rumbles-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReviews(t *testing.T) {
	service := NewReviewService()

	reviews, err := service.GetReviews(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, reviews)

	for _, r := range reviews {
		assert.GreaterOrEqual(t, r.Rating, 1)
		assert.LessOrEqual(t, r.Rating, 5)
		assert.NotEmpty(t, r.Title)
	}
}

func TestSubmitReview(t *testing.T) {
	service := &reviewService{}

	res, err := service.SubmitReview(context.Background(), domain.SubmitReviewRequest{
		Name:   "Emma W.",
		Email:  "emma@example.com",
		Rating: 5,
		Title:  "Great food, lovely staff",
		Body:   "Always a pleasure visiting Rumbles. The mushy peas are homemade and delicious.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ReferenceID)
	assert.Equal(t, "Pending Moderation", res.Status)
}

func TestSubmitReviewDoesNotPublishImmediately(t *testing.T) {
	service := &reviewService{}

	before, err := service.GetReviews(context.Background())
	require.NoError(t, err)

	_, err = service.SubmitReview(context.Background(), domain.SubmitReviewRequest{
		Name: "D.", Email: "d@example.com", Rating: 4, Title: "Solid chippy",
		Body: "Good portions, quick service, will be back again soon for sure.",
	})
	require.NoError(t, err)

	after, err := service.GetReviews(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
