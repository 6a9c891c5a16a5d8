package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/service"
	"github.com/skillswap/skillswap-api/pkg/response"
)

// BrowseHandler wires the teacher-discovery query to HTTP routes.
type BrowseHandler struct {
	browse *service.BrowseService
}

// NewBrowseHandler constructs a new BrowseHandler.
func NewBrowseHandler(browse *service.BrowseService) *BrowseHandler {
	return &BrowseHandler{browse: browse}
}

// Browse godoc
// @Summary Browse teachable skills grouped with their teachers
// @Tags Browse
// @Produce json
// @Param location query string false "Substring match on teacher location"
// @Param category_id query string false "Filter skills by category"
// @Param search query string false "Substring match on skill name/description"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /browse [get]
func (h *BrowseHandler) Browse(c *gin.Context) {
	filter := dto.BrowseFilter{
		Location:   strings.TrimSpace(c.Query("location")),
		CategoryID: strings.TrimSpace(c.Query("category_id")),
		Search:     strings.TrimSpace(c.Query("search")),
	}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil {
		filter.PageSize = size
	}

	groups, pagination, err := h.browse.Browse(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, groups, pagination)
}
