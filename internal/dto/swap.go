package dto

import "time"

// CreateSwapRequest is the payload for proposing a swap.
type CreateSwapRequest struct {
	ToUserID         string `json:"to_user_id" validate:"required,uuid4"`
	RequestedSkillID string `json:"requested_skill_id" validate:"required,uuid4"`
	OfferedSkillID   string `json:"offered_skill_id" validate:"omitempty,uuid4"`
	Message          string `json:"message" validate:"max=2000"`
}

// TransitionSwapRequest carries the status the recipient wants to store.
type TransitionSwapRequest struct {
	Status string `json:"status" validate:"required,max=20"`
}

// SwapItem is one row in a sent/received listing, denormalized for display.
type SwapItem struct {
	ID             string    `db:"id" json:"id"`
	Counterpart    string    `db:"counterpart" json:"counterpart"`
	RequestedSkill string    `db:"requested_skill" json:"requested_skill"`
	OfferedSkill   *string   `db:"offered_skill" json:"offered_skill"`
	Message        string    `db:"message" json:"message"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// SwapLists bundles both directions of a user's swap history.
type SwapLists struct {
	Sent     []SwapItem `json:"sent_requests"`
	Received []SwapItem `json:"received_requests"`
}
