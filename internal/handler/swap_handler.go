package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/service"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
	"github.com/skillswap/skillswap-api/pkg/response"
)

// SwapHandler wires the swap request lifecycle to HTTP routes.
type SwapHandler struct {
	swaps   *service.SwapService
	exports *service.ExportService
}

// NewSwapHandler constructs a new SwapHandler.
func NewSwapHandler(swaps *service.SwapService, exports *service.ExportService) *SwapHandler {
	return &SwapHandler{swaps: swaps, exports: exports}
}

// Create godoc
// @Summary Send a swap request
// @Tags Swaps
// @Accept json
// @Produce json
// @Param payload body dto.CreateSwapRequest true "Swap request payload"
// @Success 201 {object} response.Envelope
// @Router /swaps [post]
func (h *SwapHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid swap request payload"))
		return
	}
	request, err := h.swaps.Create(c.Request.Context(), claims.UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"request_id": request.ID})
}

// Transition godoc
// @Summary Accept, reject or complete a received swap request
// @Tags Swaps
// @Accept json
// @Produce json
// @Param id path string true "Swap request ID"
// @Param payload body dto.TransitionSwapRequest true "New status"
// @Success 200 {object} response.Envelope
// @Router /swaps/{id} [patch]
func (h *SwapHandler) Transition(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req dto.TransitionSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid transition payload"))
		return
	}
	request, err := h.swaps.Transition(c.Request.Context(), claims.UserID, c.Param("id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": request.ID, "status": request.Status}, nil)
}

// List godoc
// @Summary List the authenticated user's sent and received swap requests
// @Tags Swaps
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /swaps [get]
func (h *SwapHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	lists, err := h.swaps.ListForUser(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, lists, nil)
}

// Export godoc
// @Summary Download the authenticated user's swap history as CSV
// @Tags Swaps
// @Produce text/csv
// @Success 200
// @Router /swaps/export [get]
func (h *SwapHandler) Export(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	rendered, err := h.exports.SwapHistoryCSV(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("swap-history-%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", rendered)
}
