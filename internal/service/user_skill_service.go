package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
)

type userSkillRepository interface {
	Upsert(ctx context.Context, assignment *models.UserSkill) error
	ListByUser(ctx context.Context, userID string) ([]dto.AssignmentItem, error)
}

type skillResolver interface {
	FindSkillByID(ctx context.Context, id string) (*models.Skill, error)
}

// UserSkillService maintains the skill assignment ledger.
type UserSkillService struct {
	repo      userSkillRepository
	catalog   skillResolver
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserSkillService constructs a UserSkillService.
func NewUserSkillService(repo userSkillRepository, catalog skillResolver, validate *validator.Validate, logger *zap.Logger) *UserSkillService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserSkillService{repo: repo, catalog: catalog, validator: validate, logger: logger}
}

// Upsert claims a skill for the user, overwriting any previous claim for
// the same skill.
func (s *UserSkillService) Upsert(ctx context.Context, userID string, req dto.UpsertUserSkillRequest) (*models.UserSkill, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid skill payload")
	}

	level := req.ExperienceLevel
	if level == "" {
		level = models.LevelIntermediate
	}
	if !models.ValidExperienceLevel(level) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unrecognized experience level")
	}

	if _, err := s.catalog.FindSkillByID(ctx, req.SkillID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "skill not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve skill")
	}

	canTeach := true
	if req.CanTeach != nil {
		canTeach = *req.CanTeach
	}

	assignment := &models.UserSkill{
		UserID:          userID,
		SkillID:         req.SkillID,
		CanTeach:        canTeach,
		ExperienceLevel: level,
	}
	if err := s.repo.Upsert(ctx, assignment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save skill assignment")
	}
	return assignment, nil
}

// List returns the user's assignments in insertion order.
func (s *UserSkillService) List(ctx context.Context, userID string) ([]dto.AssignmentItem, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list skill assignments")
	}
	if items == nil {
		items = []dto.AssignmentItem{}
	}
	return items, nil
}
