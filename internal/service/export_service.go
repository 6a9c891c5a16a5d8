package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/dto"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
	"github.com/skillswap/skillswap-api/pkg/export"
)

type swapHistorySource interface {
	ListForUser(ctx context.Context, userID string) (*dto.SwapLists, error)
}

type reputationSource interface {
	ListForUser(ctx context.Context, targetUserID string) (*dto.ReviewSummary, error)
}

// ExportService renders swap histories and reputation reports as files.
type ExportService struct {
	swaps   swapHistorySource
	reviews reputationSource
	csv     *export.CSVExporter
	pdf     *export.PDFExporter
	logger  *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(swaps swapHistorySource, reviews reputationSource, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		swaps:   swaps,
		reviews: reviews,
		csv:     export.NewCSVExporter(),
		pdf:     export.NewPDFExporter(),
		logger:  logger,
	}
}

// SwapHistoryCSV renders the caller's sent and received requests as CSV.
func (s *ExportService) SwapHistoryCSV(ctx context.Context, userID string) ([]byte, error) {
	lists, err := s.swaps.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"direction", "counterpart", "requested_skill", "offered_skill", "status", "created_at"},
	}
	appendRows := func(direction string, items []dto.SwapItem) {
		for _, item := range items {
			offered := ""
			if item.OfferedSkill != nil {
				offered = *item.OfferedSkill
			}
			dataset.Rows = append(dataset.Rows, map[string]string{
				"direction":       direction,
				"counterpart":     item.Counterpart,
				"requested_skill": item.RequestedSkill,
				"offered_skill":   offered,
				"status":          item.Status,
				"created_at":      item.CreatedAt.Format(time.RFC3339),
			})
		}
	}
	appendRows("sent", lists.Sent)
	appendRows("received", lists.Received)

	rendered, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render swap history")
	}
	return rendered, nil
}

// ReputationPDF renders a user's review summary as a PDF report.
func (s *ExportService) ReputationPDF(ctx context.Context, targetUserID string) ([]byte, error) {
	summary, err := s.reviews.ListForUser(ctx, targetUserID)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"reviewer", "skill", "rating", "comment", "date"},
	}
	for _, review := range summary.Reviews {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"reviewer": review.FromUser,
			"skill":    review.Skill,
			"rating":   strconv.Itoa(review.Rating),
			"comment":  review.Comment,
			"date":     review.CreatedAt.Format("2006-01-02"),
		})
	}

	title := fmt.Sprintf("Reputation report (avg %.1f, %d reviews)", summary.AverageRating, summary.TotalReviews)
	rendered, err := s.pdf.Render(dataset, title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render reputation report")
	}
	return rendered, nil
}
