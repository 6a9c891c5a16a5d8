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

// UserSkillRepository manages the (user, skill) assignment ledger.
type UserSkillRepository struct {
	db *sqlx.DB
}

// NewUserSkillRepository constructs a UserSkillRepository.
func NewUserSkillRepository(db *sqlx.DB) *UserSkillRepository {
	return &UserSkillRepository{db: db}
}

// Upsert creates the (user, skill) row or overwrites can_teach and
// experience_level in place. Idempotent for identical arguments.
func (r *UserSkillRepository) Upsert(ctx context.Context, assignment *models.UserSkill) error {
	if assignment.ID == "" {
		assignment.ID = uuid.NewString()
	}
	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO user_skills (id, user_id, skill_id, can_teach, experience_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, skill_id)
		DO UPDATE SET can_teach = EXCLUDED.can_teach, experience_level = EXCLUDED.experience_level
		RETURNING id, created_at`
	row := r.db.QueryRowxContext(ctx, query,
		assignment.ID,
		assignment.UserID,
		assignment.SkillID,
		assignment.CanTeach,
		assignment.ExperienceLevel,
		assignment.CreatedAt,
	)
	if err := row.Scan(&assignment.ID, &assignment.CreatedAt); err != nil {
		return fmt.Errorf("upsert user skill: %w", err)
	}
	return nil
}

// ListByUser returns a user's assignments in insertion order with
// denormalized skill and category names.
func (r *UserSkillRepository) ListByUser(ctx context.Context, userID string) ([]dto.AssignmentItem, error) {
	const query = `SELECT us.id, us.skill_id, s.name AS skill_name, c.name AS category, us.can_teach, us.experience_level
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		JOIN categories c ON c.id = s.category_id
		WHERE us.user_id = $1
		ORDER BY us.created_at, us.id`
	var items []dto.AssignmentItem
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, fmt.Errorf("list user skills: %w", err)
	}
	return items, nil
}
