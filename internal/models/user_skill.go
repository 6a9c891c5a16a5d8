package models

import "time"

// Experience levels a user may claim for a skill.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// ValidExperienceLevel reports whether level is one of the enumerated values.
func ValidExperienceLevel(level string) bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// UserSkill links a user to a skill they can teach or want to learn.
// At most one row exists per (user, skill); re-assignment overwrites in place.
type UserSkill struct {
	ID              string    `db:"id" json:"id"`
	UserID          string    `db:"user_id" json:"user_id"`
	SkillID         string    `db:"skill_id" json:"skill_id"`
	CanTeach        bool      `db:"can_teach" json:"can_teach"`
	ExperienceLevel string    `db:"experience_level" json:"experience_level"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
