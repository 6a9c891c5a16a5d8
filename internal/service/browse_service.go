package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
)

type teachingLister interface {
	ListTeaching(ctx context.Context, filter dto.BrowseFilter) ([]dto.TeachingRow, error)
}

type ratingAggregator interface {
	AggregateForUsers(ctx context.Context, userIDs []string) ([]dto.RatingAggregate, error)
}

// BrowseService answers "who can teach what" with grouped results. The
// shape is fixed at two store round trips: one join over the matching
// assignment rows, one batched rating aggregate over the distinct teachers.
type BrowseService struct {
	assignments teachingLister
	ratings     ratingAggregator
	logger      *zap.Logger
}

// NewBrowseService constructs a BrowseService.
func NewBrowseService(assignments teachingLister, ratings ratingAggregator, logger *zap.Logger) *BrowseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrowseService{assignments: assignments, ratings: ratings, logger: logger}
}

// Browse groups teachable skills with their teachers, annotated with each
// teacher's average rating. Skill groups appear in order of the earliest
// assignment, teachers within a group in assignment insertion order.
func (s *BrowseService) Browse(ctx context.Context, filter dto.BrowseFilter) ([]dto.SkillGroup, *models.Pagination, error) {
	rows, err := s.assignments.ListTeaching(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}

	teacherIDs := make([]string, 0, len(rows))
	seenTeachers := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := seenTeachers[row.UserID]; ok {
			continue
		}
		seenTeachers[row.UserID] = struct{}{}
		teacherIDs = append(teacherIDs, row.UserID)
	}

	aggregates, err := s.ratings.AggregateForUsers(ctx, teacherIDs)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to aggregate ratings")
	}
	ratingByTeacher := make(map[string]float64, len(aggregates))
	for _, agg := range aggregates {
		ratingByTeacher[agg.UserID] = roundRating(agg.AvgRating)
	}

	groups := make([]dto.SkillGroup, 0)
	groupIndex := make(map[string]int)
	for _, row := range rows {
		idx, ok := groupIndex[row.SkillID]
		if !ok {
			groups = append(groups, dto.SkillGroup{
				SkillID:     row.SkillID,
				Name:        row.SkillName,
				Category:    row.CategoryName,
				Description: row.SkillDescription,
				Teachers:    []dto.TeacherEntry{},
			})
			idx = len(groups) - 1
			groupIndex[row.SkillID] = idx
		}
		groups[idx].Teachers = append(groups[idx].Teachers, dto.TeacherEntry{
			UserID:          row.UserID,
			Username:        row.Username,
			Location:        row.Location,
			ExperienceLevel: row.ExperienceLevel,
			AvgRating:       ratingByTeacher[row.UserID],
		})
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 50
	}
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: len(groups)}

	start := (page - 1) * size
	if start >= len(groups) {
		return []dto.SkillGroup{}, pagination, nil
	}
	end := start + size
	if end > len(groups) {
		end = len(groups)
	}
	return groups[start:end], pagination, nil
}
