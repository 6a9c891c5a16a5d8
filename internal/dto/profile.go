package dto

// UpdateProfileRequest carries the editable profile fields. Absent fields
// keep their stored value.
type UpdateProfileRequest struct {
	Bio      *string `json:"bio" validate:"omitempty,max=2000"`
	Location *string `json:"location" validate:"omitempty,max=100"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
}

// ProfileResponse is the authenticated user's profile with their skills.
type ProfileResponse struct {
	ID       string           `json:"id"`
	Username string           `json:"username"`
	Email    string           `json:"email"`
	Bio      string           `json:"bio"`
	Location string           `json:"location"`
	Phone    string           `json:"phone"`
	Skills   []AssignmentItem `json:"skills"`
}

// UpsertUserSkillRequest is the payload for claiming a skill.
type UpsertUserSkillRequest struct {
	SkillID         string `json:"skill_id" validate:"required,uuid4"`
	CanTeach        *bool  `json:"can_teach"`
	ExperienceLevel string `json:"experience_level"`
}

// AssignmentItem is a user's skill claim denormalized for display.
type AssignmentItem struct {
	ID              string `db:"id" json:"id"`
	SkillID         string `db:"skill_id" json:"skill_id"`
	SkillName       string `db:"skill_name" json:"name"`
	Category        string `db:"category" json:"category"`
	CanTeach        bool   `db:"can_teach" json:"can_teach"`
	ExperienceLevel string `db:"experience_level" json:"experience_level"`
}
