package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/skillswap/skillswap-api/internal/models"
)

// CatalogRepository reads the category/skill catalog. The catalog is
// read-only from this service's perspective.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository constructs a CatalogRepository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListCategories returns all categories ordered by name.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	const query = `SELECT id, name, description, created_at FROM categories ORDER BY name`
	var categories []models.Category
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// ListSkills returns skills matching the optional category/search filters.
func (r *CatalogRepository) ListSkills(ctx context.Context, filter models.SkillFilter) ([]models.Skill, error) {
	base := `SELECT id, category_id, name, description, created_at FROM skills WHERE 1=1`
	var conditions []string
	var args []interface{}

	if filter.CategoryID != "" {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", len(args)+1))
		args = append(args, filter.CategoryID)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, search)
	}

	query := base
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name"

	var skills []models.Skill
	if err := r.db.SelectContext(ctx, &skills, query, args...); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

// FindSkillByID fetches a skill by ID.
func (r *CatalogRepository) FindSkillByID(ctx context.Context, id string) (*models.Skill, error) {
	const query = `SELECT id, category_id, name, description, created_at FROM skills WHERE id = $1`
	var skill models.Skill
	if err := r.db.GetContext(ctx, &skill, query, id); err != nil {
		return nil, err
	}
	return &skill, nil
}

// FindCategoryByID fetches a category by ID.
func (r *CatalogRepository) FindCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	const query = `SELECT id, name, description, created_at FROM categories WHERE id = $1`
	var category models.Category
	if err := r.db.GetContext(ctx, &category, query, id); err != nil {
		return nil, err
	}
	return &category, nil
}
