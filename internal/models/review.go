package models

import "time"

// Review records a rating left by a swap request's initiator after
// completion. One review per (from_user, swap_request); immutable.
type Review struct {
	ID            string    `db:"id" json:"id"`
	FromUserID    string    `db:"from_user_id" json:"from_user_id"`
	ToUserID      string    `db:"to_user_id" json:"to_user_id"`
	SwapRequestID string    `db:"swap_request_id" json:"swap_request_id"`
	Rating        int       `db:"rating" json:"rating"`
	Comment       string    `db:"comment" json:"comment"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
