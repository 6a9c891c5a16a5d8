package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/repository"
	"github.com/skillswap/skillswap-api/pkg/config"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
)

type swapRepository interface {
	Create(ctx context.Context, request *models.SwapRequest) error
	UpdateStatusForRecipient(ctx context.Context, requestID, recipientID, status string) (*models.SwapRequest, error)
	ListSent(ctx context.Context, userID string) ([]dto.SwapItem, error)
	ListReceived(ctx context.Context, userID string) ([]dto.SwapItem, error)
}

type swapUserResolver interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

type swapSkillResolver interface {
	FindSkillByID(ctx context.Context, id string) (*models.Skill, error)
}

// SwapService runs the swap request lifecycle: creation, recipient-gated
// status transitions and the sent/received listing.
type SwapService struct {
	repo      swapRepository
	users     swapUserResolver
	catalog   swapSkillResolver
	validator *validator.Validate
	logger    *zap.Logger
	policy    config.SwapConfig
}

// NewSwapService constructs a SwapService.
func NewSwapService(repo swapRepository, users swapUserResolver, catalog swapSkillResolver, validate *validator.Validate, logger *zap.Logger, policy config.SwapConfig) *SwapService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SwapService{repo: repo, users: users, catalog: catalog, validator: validate, logger: logger, policy: policy}
}

// Create proposes a new swap. The duplicate-pending invariant is enforced by
// the store in the same statement as the insert, so concurrent duplicates
// yield exactly one success.
func (s *SwapService) Create(ctx context.Context, fromUserID string, req dto.CreateSwapRequest) (*models.SwapRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid swap request payload")
	}

	if s.policy.ForbidSelfRequest && req.ToUserID == fromUserID {
		return nil, appErrors.Clone(appErrors.ErrValidation, "cannot send a swap request to yourself")
	}

	exists, err := s.users.ExistsByID(ctx, req.ToUserID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve recipient")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "recipient not found")
	}

	if _, err := s.catalog.FindSkillByID(ctx, req.RequestedSkillID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "requested skill not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve requested skill")
	}

	request := &models.SwapRequest{
		FromUserID:       fromUserID,
		ToUserID:         req.ToUserID,
		RequestedSkillID: req.RequestedSkillID,
		Message:          strings.TrimSpace(req.Message),
	}
	if req.OfferedSkillID != "" {
		if _, err := s.catalog.FindSkillByID(ctx, req.OfferedSkillID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "offered skill not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve offered skill")
		}
		offered := req.OfferedSkillID
		request.OfferedSkillID = &offered
	}

	if err := s.repo.Create(ctx, request); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrConflict, "request already sent")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create swap request")
	}
	return request, nil
}

// Transition stores a new status on a request addressed to the actor. A
// request that exists but belongs to a different recipient reads the same
// as one that does not exist.
func (s *SwapService) Transition(ctx context.Context, actorID, requestID, newStatus string) (*models.SwapRequest, error) {
	status := strings.TrimSpace(newStatus)
	if status == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "status is required")
	}
	if s.policy.StrictTransitions {
		if !models.ValidSwapStatus(status) || status == models.SwapStatusPending {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid status value")
		}
	}

	request, err := s.repo.UpdateStatusForRecipient(ctx, requestID, actorID, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update swap request")
	}
	return request, nil
}

// ListForUser returns the user's sent and received requests, each list in
// creation order, produced with one query per direction.
func (s *SwapService) ListForUser(ctx context.Context, userID string) (*dto.SwapLists, error) {
	sent, err := s.repo.ListSent(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sent requests")
	}
	received, err := s.repo.ListReceived(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list received requests")
	}

	lists := &dto.SwapLists{Sent: sent, Received: received}
	if lists.Sent == nil {
		lists.Sent = []dto.SwapItem{}
	}
	if lists.Received == nil {
		lists.Received = []dto.SwapItem{}
	}
	return lists, nil
}
