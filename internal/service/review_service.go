package service

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/repository"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
)

type reviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListForUser(ctx context.Context, userID string) ([]dto.ReviewItem, error)
	AggregateForUser(ctx context.Context, userID string) (float64, int, error)
}

type completedSwapFinder interface {
	FindCompletedBySender(ctx context.Context, requestID, senderID string) (*models.SwapRequest, error)
}

// ReviewService gates review creation and serves reputation listings.
type ReviewService struct {
	repo      reviewRepository
	swaps     completedSwapFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReviewService constructs a ReviewService.
func NewReviewService(repo reviewRepository, swaps completedSwapFinder, validate *validator.Validate, logger *zap.Logger) *ReviewService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{repo: repo, swaps: swaps, validator: validate, logger: logger}
}

// Create records a review for a completed swap. Eligibility is a single
// filtered lookup: the swap must exist, be completed and have been initiated
// by the actor; any other combination reads as not found.
func (s *ReviewService) Create(ctx context.Context, actorID string, req dto.CreateReviewRequest) (*models.Review, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid review payload")
	}

	request, err := s.swaps.FindCompletedBySender(ctx, req.SwapRequestID, actorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "swap request not found or not completed")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load swap request")
	}

	review := &models.Review{
		FromUserID:    actorID,
		ToUserID:      request.ToUserID,
		SwapRequestID: request.ID,
		Rating:        req.Rating,
		Comment:       strings.TrimSpace(req.Comment),
	}
	if err := s.repo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "review already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create review")
	}
	return review, nil
}

// ListForUser returns a user's received reviews newest first, with the
// rating mean computed by the store in a single aggregate query.
func (s *ReviewService) ListForUser(ctx context.Context, targetUserID string) (*dto.ReviewSummary, error) {
	reviews, err := s.repo.ListForUser(ctx, targetUserID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list reviews")
	}
	if reviews == nil {
		reviews = []dto.ReviewItem{}
	}

	avg, count, err := s.repo.AggregateForUser(ctx, targetUserID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate ratings")
	}

	return &dto.ReviewSummary{
		Reviews:       reviews,
		AverageRating: roundRating(avg),
		TotalReviews:  count,
	}, nil
}

// roundRating rounds to one decimal place.
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
