package domain

var (
	MessageSuccessGetReviews   = "reviews retrieved successfully"
	MessageSuccessSubmitReview = "review submitted successfully"

	MessageFailedGetReviews   = "failed to retrieve reviews"
	MessageFailedSubmitReview = "failed to submit review"
)

type (
	Review struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Rating int    `json:"rating"`
		Title  string `json:"title"`
		Body   string `json:"body"`
		Date   string `json:"date"`
	}

	SubmitReviewRequest struct {
		Name   string `json:"name" validate:"required,min=2"`
		Email  string `json:"email" validate:"required,email"`
		Rating int    `json:"rating" validate:"required,min=1,max=5"`
		Title  string `json:"title" validate:"required,min=3"`
		Body   string `json:"body" validate:"required,min=20"`
	}

	SubmitReviewResponse struct {
		ReferenceID string `json:"reference_id"`
		Status      string `json:"status"`
	}
)
