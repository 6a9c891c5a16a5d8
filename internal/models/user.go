package models

import "time"

// User represents a registered account.
type User struct {
	ID           string    `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Profile extends a user with public display fields.
type Profile struct {
	UserID    string    `db:"user_id" json:"user_id"`
	Bio       string    `db:"bio" json:"bio"`
	Location  string    `db:"location" json:"location"`
	Phone     string    `db:"phone" json:"phone"`
	AvatarURL string    `db:"avatar_url" json:"avatar_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
