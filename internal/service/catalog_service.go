package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/models"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
)

const categoriesCacheKey = "catalog:categories"

type catalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListSkills(ctx context.Context, filter models.SkillFilter) ([]models.Skill, error)
}

// CatalogService serves the read-only category/skill catalog, with an
// optional Redis cache in front of the category listing.
type CatalogService struct {
	repo     catalogRepository
	cache    *redis.Client
	cacheTTL time.Duration
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewCatalogService constructs a CatalogService. cache may be nil, which
// disables caching entirely.
func NewCatalogService(repo catalogRepository, cache *redis.Client, cacheTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, cache: cache, cacheTTL: cacheTTL, metrics: metrics, logger: logger}
}

// ListCategories returns all categories, served from cache when possible.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, categoriesCacheKey).Bytes(); err == nil {
			var categories []models.Category
			if err := json.Unmarshal(cached, &categories); err == nil {
				s.metrics.IncCacheHit()
				return categories, nil
			}
		} else if err != redis.Nil {
			s.logger.Debug("category cache read failed", zap.Error(err))
		}
		s.metrics.IncCacheMiss()
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list categories")
	}
	if categories == nil {
		categories = []models.Category{}
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(categories); err == nil {
			if err := s.cache.Set(ctx, categoriesCacheKey, encoded, s.cacheTTL).Err(); err != nil {
				s.logger.Debug("category cache write failed", zap.Error(err))
			}
		}
	}
	return categories, nil
}

// ListSkills returns skills matching the optional filters.
func (s *CatalogService) ListSkills(ctx context.Context, filter models.SkillFilter) ([]models.Skill, error) {
	skills, err := s.repo.ListSkills(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list skills")
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	return skills, nil
}
