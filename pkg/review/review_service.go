package review

import (
	"context"
	"log"
	"time"

	"rumbles-backend/domain"

	"github.com/google/uuid"
)

const defaultProcessingDelay = 1000 * time.Millisecond

// Published customer reviews shown on the reviews page. Submitted reviews
// are acknowledged but not published automatically.
var publishedReviews = []domain.Review{
	{ID: "1", Name: "Sarah M.", Rating: 5, Title: "Best fish and chips in Hertfordshire!", Body: "We've been coming to Rumbles for years and the quality never disappoints. The fish is always fresh, perfectly battered, and the chips are proper chippy chips. Staff are friendly and the portions are generous. Highly recommend the cod!", Date: "2024-01-15"},
	{ID: "2", Name: "James T.", Rating: 5, Title: "A local gem", Body: "Found this place after moving to Sawbridgeworth and it's become our go-to for Friday night dinner. The kebabs are excellent too - proper doner, not the processed stuff. Quick service even when busy.", Date: "2024-01-10"},
	{ID: "3", Name: "Emma W.", Rating: 4, Title: "Great food, lovely staff", Body: "Always a pleasure visiting Rumbles. The mushy peas are homemade and delicious. Only reason for 4 stars is sometimes the wait can be a bit long on Saturday evenings, but worth it for the quality.", Date: "2024-01-05"},
	{ID: "4", Name: "David H.", Rating: 5, Title: "Traditional chippy done right", Body: "In a world of average takeaways, Rumbles stands out. Everything tastes fresh and made with care. The kids meal portions are perfect for little ones. We're customers for life!", Date: "2023-12-28"},
}

type (
	ReviewService interface {
		GetReviews(ctx context.Context) ([]domain.Review, error)
		SubmitReview(ctx context.Context, req domain.SubmitReviewRequest) (domain.SubmitReviewResponse, error)
	}

	reviewService struct {
		processingDelay time.Duration
	}
)

func NewReviewService() ReviewService {
	return &reviewService{processingDelay: defaultProcessingDelay}
}

func (s *reviewService) GetReviews(_ context.Context) ([]domain.Review, error) {
	reviews := make([]domain.Review, len(publishedReviews))
	copy(reviews, publishedReviews)
	return reviews, nil
}

// SubmitReview simulates submission: fixed delay, log line, acknowledgment.
func (s *reviewService) SubmitReview(_ context.Context, req domain.SubmitReviewRequest) (domain.SubmitReviewResponse, error) {
	time.Sleep(s.processingDelay)

	referenceID := uuid.New().String()
	log.Printf("review submission %s: name=%s rating=%d title=%q", referenceID, req.Name, req.Rating, req.Title)

	return domain.SubmitReviewResponse{
		ReferenceID: referenceID,
		Status:      "Pending Moderation",
	}, nil
}
