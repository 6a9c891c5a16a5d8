package dto

import "time"

// CreateReviewRequest is the payload for reviewing a completed swap.
type CreateReviewRequest struct {
	SwapRequestID string `json:"swap_request_id" validate:"required,uuid4"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment" validate:"max=2000"`
}

// ReviewItem is one review annotated for display.
type ReviewItem struct {
	ID        string    `db:"id" json:"id"`
	FromUser  string    `db:"from_user" json:"from_user"`
	Rating    int       `db:"rating" json:"rating"`
	Comment   string    `db:"comment" json:"comment"`
	Skill     string    `db:"skill" json:"skill"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ReviewSummary bundles a user's reviews with rating aggregates.
type ReviewSummary struct {
	Reviews       []ReviewItem `json:"reviews"`
	AverageRating float64      `json:"average_rating"`
	TotalReviews  int          `json:"total_reviews"`
}

// RatingAggregate is the single-pass aggregate result per reviewed user.
type RatingAggregate struct {
	UserID    string  `db:"to_user_id"`
	AvgRating float64 `db:"avg_rating"`
	Count     int     `db:"review_count"`
}
