package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/service"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
	"github.com/skillswap/skillswap-api/pkg/response"
)

// ReviewHandler wires review creation and reputation reads to HTTP routes.
type ReviewHandler struct {
	reviews *service.ReviewService
	exports *service.ExportService
}

// NewReviewHandler constructs a new ReviewHandler.
func NewReviewHandler(reviews *service.ReviewService, exports *service.ExportService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, exports: exports}
}

// Create godoc
// @Summary Review a completed swap
// @Tags Reviews
// @Accept json
// @Produce json
// @Param payload body dto.CreateReviewRequest true "Review payload"
// @Success 201 {object} response.Envelope
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid review payload"))
		return
	}
	review, err := h.reviews.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"review_id": review.ID})
}

// ListForUser godoc
// @Summary List reviews received by a user, with rating aggregates
// @Tags Reviews
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Envelope
// @Router /users/{id}/reviews [get]
func (h *ReviewHandler) ListForUser(c *gin.Context) {
	summary, err := h.reviews.ListForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// ExportForUser godoc
// @Summary Download a user's reputation report as PDF
// @Tags Reviews
// @Produce application/pdf
// @Param id path string true "User ID"
// @Success 200
// @Router /users/{id}/reviews/export [get]
func (h *ReviewHandler) ExportForUser(c *gin.Context) {
	rendered, err := h.exports.ReputationPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("reputation-%s.pdf", c.Param("id"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", rendered)
}
