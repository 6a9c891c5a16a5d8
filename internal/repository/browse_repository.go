package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/skillswap/skillswap-api/internal/dto"
)

// BrowseRepository answers the teacher-discovery query.
type BrowseRepository struct {
	db *sqlx.DB
}

// NewBrowseRepository constructs a BrowseRepository.
func NewBrowseRepository(db *sqlx.DB) *BrowseRepository {
	return &BrowseRepository{db: db}
}

// ListTeaching returns one flat row per (teaching assignment) matching the
// filters, joined to skill, category and profile data. Assignment insertion
// order determines both group membership order and teacher order within a
// group. A single query regardless of how many rows match.
func (r *BrowseRepository) ListTeaching(ctx context.Context, filter dto.BrowseFilter) ([]dto.TeachingRow, error) {
	base := `SELECT s.id AS skill_id, s.name AS skill_name, c.name AS category_name, s.description AS skill_description,
			u.id AS user_id, u.username, COALESCE(p.location, '') AS location, us.experience_level
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		JOIN categories c ON c.id = s.category_id
		JOIN users u ON u.id = us.user_id
		LEFT JOIN profiles p ON p.user_id = u.id
		WHERE us.can_teach = TRUE`

	var conditions []string
	var args []interface{}

	if filter.Location != "" {
		conditions = append(conditions, fmt.Sprintf("p.location ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Location+"%")
	}
	if filter.CategoryID != "" {
		conditions = append(conditions, fmt.Sprintf("s.category_id = $%d", len(args)+1))
		args = append(args, filter.CategoryID)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		conditions = append(conditions, fmt.Sprintf("(s.name ILIKE $%d OR s.description ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, search)
	}

	query := base
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY us.created_at, us.id"

	var rows []dto.TeachingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teaching assignments: %w", err)
	}
	return rows, nil
}
