package models

import "time"

// Swap request statuses. A request starts pending; the recipient moves it
// onward. Without strict transitions enabled any status string supplied by
// the recipient is stored as-is.
const (
	SwapStatusPending   = "pending"
	SwapStatusAccepted  = "accepted"
	SwapStatusRejected  = "rejected"
	SwapStatusCompleted = "completed"
)

// ValidSwapStatus reports whether status is one of the enumerated values.
func ValidSwapStatus(status string) bool {
	switch status {
	case SwapStatusPending, SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted:
		return true
	}
	return false
}

// SwapRequest is a proposal from one user to another to exchange skill
// instruction. Rows are append-only; only status and updated_at change.
type SwapRequest struct {
	ID               string    `db:"id" json:"id"`
	FromUserID       string    `db:"from_user_id" json:"from_user_id"`
	ToUserID         string    `db:"to_user_id" json:"to_user_id"`
	RequestedSkillID string    `db:"requested_skill_id" json:"requested_skill_id"`
	OfferedSkillID   *string   `db:"offered_skill_id" json:"offered_skill_id,omitempty"`
	Message          string    `db:"message" json:"message"`
	Status           string    `db:"status" json:"status"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
