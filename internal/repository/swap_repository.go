package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
)

// SwapRepository manages the swap request lifecycle rows.
type SwapRepository struct {
	db *sqlx.DB
}

// NewSwapRepository constructs a SwapRepository.
func NewSwapRepository(db *sqlx.DB) *SwapRepository {
	return &SwapRepository{db: db}
}

// Create inserts a new pending swap request. A concurrent duplicate for the
// same (from, to, requested_skill) pending key trips the partial unique
// index and is returned as ErrDuplicate.
func (r *SwapRepository) Create(ctx context.Context, request *models.SwapRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	request.UpdatedAt = now
	request.Status = models.SwapStatusPending

	const query = `INSERT INTO swap_requests (id, from_user_id, to_user_id, requested_skill_id, offered_skill_id, message, status, created_at, updated_at)
		VALUES (:id, :from_user_id, :to_user_id, :requested_skill_id, :offered_skill_id, :message, :status, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, request); err != nil {
		return translateUnique(err)
	}
	return nil
}

// UpdateStatusForRecipient overwrites the status of a request owned by the
// given recipient. sql.ErrNoRows covers both an absent request and one that
// belongs to a different recipient.
func (r *SwapRepository) UpdateStatusForRecipient(ctx context.Context, requestID, recipientID, status string) (*models.SwapRequest, error) {
	const query = `UPDATE swap_requests SET status = $1, updated_at = $2
		WHERE id = $3 AND to_user_id = $4
		RETURNING id, from_user_id, to_user_id, requested_skill_id, offered_skill_id, message, status, created_at, updated_at`
	var request models.SwapRequest
	if err := r.db.GetContext(ctx, &request, query, status, time.Now().UTC(), requestID, recipientID); err != nil {
		return nil, err
	}
	return &request, nil
}

// ListSent returns requests initiated by the user in creation order, each
// carrying the recipient's username and skill names. One query, no per-row
// lookups.
func (r *SwapRepository) ListSent(ctx context.Context, userID string) ([]dto.SwapItem, error) {
	const query = `SELECT sr.id, u.username AS counterpart, rs.name AS requested_skill, os.name AS offered_skill, sr.message, sr.status, sr.created_at
		FROM swap_requests sr
		JOIN users u ON u.id = sr.to_user_id
		JOIN skills rs ON rs.id = sr.requested_skill_id
		LEFT JOIN skills os ON os.id = sr.offered_skill_id
		WHERE sr.from_user_id = $1
		ORDER BY sr.created_at, sr.id`
	var items []dto.SwapItem
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, fmt.Errorf("list sent requests: %w", err)
	}
	return items, nil
}

// ListReceived returns requests addressed to the user in creation order,
// each carrying the sender's username and skill names.
func (r *SwapRepository) ListReceived(ctx context.Context, userID string) ([]dto.SwapItem, error) {
	const query = `SELECT sr.id, u.username AS counterpart, rs.name AS requested_skill, os.name AS offered_skill, sr.message, sr.status, sr.created_at
		FROM swap_requests sr
		JOIN users u ON u.id = sr.from_user_id
		JOIN skills rs ON rs.id = sr.requested_skill_id
		LEFT JOIN skills os ON os.id = sr.offered_skill_id
		WHERE sr.to_user_id = $1
		ORDER BY sr.created_at, sr.id`
	var items []dto.SwapItem
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, fmt.Errorf("list received requests: %w", err)
	}
	return items, nil
}

// FindCompletedBySender looks up a swap request by id, sender and completed
// status in one filtered query. Absent, not-completed and not-owned rows are
// indistinguishable to the caller.
func (r *SwapRepository) FindCompletedBySender(ctx context.Context, requestID, senderID string) (*models.SwapRequest, error) {
	const query = `SELECT id, from_user_id, to_user_id, requested_skill_id, offered_skill_id, message, status, created_at, updated_at
		FROM swap_requests
		WHERE id = $1 AND from_user_id = $2 AND status = $3`
	var request models.SwapRequest
	if err := r.db.GetContext(ctx, &request, query, requestID, senderID, models.SwapStatusCompleted); err != nil {
		return nil, err
	}
	return &request, nil
}
