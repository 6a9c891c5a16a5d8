package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/service"
)

type stubTeachingLister struct {
	rows     []dto.TeachingRow
	lastSeen dto.BrowseFilter
}

func (s *stubTeachingLister) ListTeaching(_ context.Context, filter dto.BrowseFilter) ([]dto.TeachingRow, error) {
	s.lastSeen = filter
	return s.rows, nil
}

type stubRatingAggregator struct {
	aggregates []dto.RatingAggregate
}

func (s *stubRatingAggregator) AggregateForUsers(_ context.Context, _ []string) ([]dto.RatingAggregate, error) {
	return s.aggregates, nil
}

func newBrowseRouter(lister *stubTeachingLister, ratings *stubRatingAggregator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBrowseHandler(service.NewBrowseService(lister, ratings, nil))

	r := gin.New()
	r.GET("/api/v1/browse", h.Browse)
	return r
}

func TestBrowseHandler(t *testing.T) {
	lister := &stubTeachingLister{rows: []dto.TeachingRow{
		{SkillID: "s1", SkillName: "Python", CategoryName: "Programming", UserID: "u1", Username: "alice", Location: "Berlin", ExperienceLevel: "advanced"},
		{SkillID: "s1", SkillName: "Python", CategoryName: "Programming", UserID: "u2", Username: "bob", ExperienceLevel: "beginner"},
	}}
	ratings := &stubRatingAggregator{aggregates: []dto.RatingAggregate{{UserID: "u1", AvgRating: 4.75, Count: 4}}}
	r := newBrowseRouter(lister, ratings)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/browse?location=berlin&search=py", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "berlin", lister.lastSeen.Location)
	assert.Equal(t, "py", lister.lastSeen.Search)

	var envelope struct {
		Data       []dto.SkillGroup `json:"data"`
		Pagination *struct {
			TotalCount int `json:"total_count"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Python", envelope.Data[0].Name)
	require.Len(t, envelope.Data[0].Teachers, 2)
	assert.Equal(t, 4.8, envelope.Data[0].Teachers[0].AvgRating)
	assert.Zero(t, envelope.Data[0].Teachers[1].AvgRating)
	require.NotNil(t, envelope.Pagination)
	assert.Equal(t, 1, envelope.Pagination.TotalCount)
}

func TestBrowseHandlerEmpty(t *testing.T) {
	r := newBrowseRouter(&stubTeachingLister{}, &stubRatingAggregator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/browse", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data []dto.SkillGroup `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Empty(t, envelope.Data)
}

func TestBrowseHandlerPagingParams(t *testing.T) {
	rows := []dto.TeachingRow{}
	for _, id := range []string{"s1", "s2", "s3"} {
		rows = append(rows, dto.TeachingRow{SkillID: id, SkillName: id, UserID: "u-" + id, Username: "t"})
	}
	r := newBrowseRouter(&stubTeachingLister{rows: rows}, &stubRatingAggregator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/browse?page=2&limit=2", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data []dto.SkillGroup `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "s3", envelope.Data[0].SkillID)
}
