package models

import "time"

// Category groups related skills (Programming, Languages, Music, ...).
type Category struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Skill is a single teachable subject within a category.
type Skill struct {
	ID          string    `db:"id" json:"id"`
	CategoryID  string    `db:"category_id" json:"category_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// SkillFilter captures the optional filters for listing skills.
type SkillFilter struct {
	CategoryID string
	Search     string
}
