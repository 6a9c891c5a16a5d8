package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/service"
	"github.com/skillswap/skillswap-api/pkg/response"
)

// CatalogHandler wires the read-only catalog to HTTP routes.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs a new CatalogHandler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCategories godoc
// @Summary List skill categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, categories, nil)
}

// ListSkills godoc
// @Summary List skills with optional category/search filters
// @Tags Catalog
// @Produce json
// @Param category_id query string false "Filter by category"
// @Param search query string false "Substring match on name/description"
// @Success 200 {object} response.Envelope
// @Router /skills [get]
func (h *CatalogHandler) ListSkills(c *gin.Context) {
	filter := models.SkillFilter{
		CategoryID: strings.TrimSpace(c.Query("category_id")),
		Search:     strings.TrimSpace(c.Query("search")),
	}
	skills, err := h.catalog.ListSkills(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, skills, nil)
}
