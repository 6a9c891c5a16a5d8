package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/skillswap/skillswap-api/internal/middleware"
	"github.com/skillswap/skillswap-api/internal/service"
)

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Catalog *CatalogHandler
	Browse  *BrowseHandler
	Swap    *SwapHandler
	Review  *ReviewHandler
	Metrics *MetricsHandler
}

// RegisterRoutes mounts all API routes under the given prefix. Write paths
// require a valid token; browse and reputation reads are public, with an
// identity attached opportunistically when a token is supplied.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers, auth *service.AuthService) {
	api := r.Group(prefix)

	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	public := api.Group("")
	public.Use(middleware.OptionalJWT(auth))
	{
		public.GET("/categories", h.Catalog.ListCategories)
		public.GET("/skills", h.Catalog.ListSkills)
		public.GET("/browse", h.Browse.Browse)
		public.GET("/users/:id/reviews", h.Review.ListForUser)
		public.GET("/users/:id/reviews/export", h.Review.ExportForUser)
	}

	private := api.Group("")
	private.Use(middleware.JWT(auth))
	{
		private.GET("/profile", h.Profile.Get)
		private.PUT("/profile", h.Profile.Update)
		private.GET("/profile/skills", h.Profile.ListSkills)
		private.POST("/profile/skills", h.Profile.UpsertSkill)

		private.POST("/swaps", h.Swap.Create)
		private.GET("/swaps", h.Swap.List)
		private.GET("/swaps/export", h.Swap.Export)
		private.PATCH("/swaps/:id", h.Swap.Transition)

		private.POST("/reviews", h.Review.Create)
	}
}
