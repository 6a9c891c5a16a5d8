package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
)

// ReviewRepository manages review rows and rating aggregates.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository constructs a ReviewRepository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review. A second review for the same
// (from_user, swap_request) pair violates the unique constraint and is
// returned as ErrDuplicate.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO reviews (id, from_user_id, to_user_id, swap_request_id, rating, comment, created_at)
		VALUES (:id, :from_user_id, :to_user_id, :swap_request_id, :rating, :comment, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, review); err != nil {
		return translateUnique(err)
	}
	return nil
}

// ListForUser returns reviews received by a user, most recent first, each
// annotated with the reviewer's name and the requested skill.
func (r *ReviewRepository) ListForUser(ctx context.Context, userID string) ([]dto.ReviewItem, error) {
	const query = `SELECT r.id, u.username AS from_user, r.rating, r.comment, s.name AS skill, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.from_user_id
		JOIN swap_requests sr ON sr.id = r.swap_request_id
		JOIN skills s ON s.id = sr.requested_skill_id
		WHERE r.to_user_id = $1
		ORDER BY r.created_at DESC, r.id DESC`
	var items []dto.ReviewItem
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return items, nil
}

// AggregateForUser computes the rating mean and count for one user in a
// single aggregate query.
func (r *ReviewRepository) AggregateForUser(ctx context.Context, userID string) (float64, int, error) {
	const query = `SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count FROM reviews WHERE to_user_id = $1`
	var agg struct {
		AvgRating   float64 `db:"avg_rating"`
		ReviewCount int     `db:"review_count"`
	}
	if err := r.db.GetContext(ctx, &agg, query, userID); err != nil {
		return 0, 0, fmt.Errorf("aggregate reviews: %w", err)
	}
	return agg.AvgRating, agg.ReviewCount, nil
}

// AggregateForUsers computes rating means for a batch of users in one
// grouped query. Users without reviews are simply absent from the result.
func (r *ReviewRepository) AggregateForUsers(ctx context.Context, userIDs []string) ([]dto.RatingAggregate, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	const query = `SELECT to_user_id, AVG(rating) AS avg_rating, COUNT(*) AS review_count
		FROM reviews
		WHERE to_user_id = ANY($1)
		GROUP BY to_user_id`
	var aggregates []dto.RatingAggregate
	if err := r.db.SelectContext(ctx, &aggregates, query, pq.Array(userIDs)); err != nil {
		return nil, fmt.Errorf("aggregate reviews batch: %w", err)
	}
	return aggregates, nil
}
