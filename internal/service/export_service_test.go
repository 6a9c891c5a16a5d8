package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/skillswap-api/internal/dto"
)

type stubSwapHistorySource struct {
	lists *dto.SwapLists
}

func (s *stubSwapHistorySource) ListForUser(_ context.Context, _ string) (*dto.SwapLists, error) {
	return s.lists, nil
}

type stubReputationSource struct {
	summary *dto.ReviewSummary
}

func (s *stubReputationSource) ListForUser(_ context.Context, _ string) (*dto.ReviewSummary, error) {
	return s.summary, nil
}

func TestExportServiceSwapHistoryCSV(t *testing.T) {
	offered := "Spanish"
	created := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	source := &stubSwapHistorySource{lists: &dto.SwapLists{
		Sent: []dto.SwapItem{
			{Counterpart: "bob", RequestedSkill: "Python", OfferedSkill: &offered, Status: "pending", CreatedAt: created},
		},
		Received: []dto.SwapItem{
			{Counterpart: "carol", RequestedSkill: "Guitar", Status: "completed", CreatedAt: created},
		},
	}}
	svc := NewExportService(source, &stubReputationSource{}, nil)

	rendered, err := svc.SwapHistoryCSV(context.Background(), "u1")
	require.NoError(t, err)

	content := string(rendered)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "direction,counterpart,requested_skill,offered_skill,status,created_at", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "sent,bob,Python,Spanish,pending")
	assert.Contains(t, lines[2], "received,carol,Guitar,,completed")
	assert.Contains(t, lines[1], "2026-03-14T12:00:00Z")
}

func TestExportServiceSwapHistoryCSVEmpty(t *testing.T) {
	source := &stubSwapHistorySource{lists: &dto.SwapLists{Sent: []dto.SwapItem{}, Received: []dto.SwapItem{}}}
	svc := NewExportService(source, &stubReputationSource{}, nil)

	rendered, err := svc.SwapHistoryCSV(context.Background(), "u1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(rendered)), "\n")
	assert.Len(t, lines, 1)
}

func TestExportServiceReputationPDF(t *testing.T) {
	source := &stubReputationSource{summary: &dto.ReviewSummary{
		Reviews: []dto.ReviewItem{
			{FromUser: "alice", Skill: "Python", Rating: 5, Comment: "great", CreatedAt: time.Now()},
		},
		AverageRating: 4.5,
		TotalReviews:  2,
	}}
	svc := NewExportService(&stubSwapHistorySource{}, source, nil)

	rendered, err := svc.ReputationPDF(context.Background(), "u2")
	require.NoError(t, err)
	require.NotEmpty(t, rendered)
	assert.True(t, strings.HasPrefix(string(rendered), "%PDF"))
}
