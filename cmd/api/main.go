package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/skillswap/skillswap-api/api/swagger"
	"github.com/skillswap/skillswap-api/internal/handler"
	"github.com/skillswap/skillswap-api/internal/middleware"
	"github.com/skillswap/skillswap-api/internal/repository"
	"github.com/skillswap/skillswap-api/internal/service"
	"github.com/skillswap/skillswap-api/pkg/cache"
	"github.com/skillswap/skillswap-api/pkg/config"
	"github.com/skillswap/skillswap-api/pkg/database"
	"github.com/skillswap/skillswap-api/pkg/logger"
	corsmiddleware "github.com/skillswap/skillswap-api/pkg/middleware/cors"
	reqidmiddleware "github.com/skillswap/skillswap-api/pkg/middleware/requestid"
)

// @title SkillSwap API
// @version 1.0.0
// @description Peer-to-peer skill exchange: browse teachers, negotiate swaps, leave reviews.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, catalog cache disabled", "error", err)
		redisClient = nil
	}
	if !cfg.Catalog.CacheEnabled {
		redisClient = nil
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	userSkillRepo := repository.NewUserSkillRepository(db)
	swapRepo := repository.NewSwapRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	browseRepo := repository.NewBrowseRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: cfg.JWT.Expiration,
		Issuer:            cfg.JWT.Issuer,
	})
	userSkillSvc := service.NewUserSkillService(userSkillRepo, catalogRepo, validate, logr)
	profileSvc := service.NewProfileService(userRepo, userSkillRepo, validate, logr)
	catalogSvc := service.NewCatalogService(catalogRepo, redisClient, cfg.Catalog.CacheTTL, metrics, logr)
	swapSvc := service.NewSwapService(swapRepo, userRepo, catalogRepo, validate, logr, cfg.Swap)
	reviewSvc := service.NewReviewService(reviewRepo, swapRepo, validate, logr)
	browseSvc := service.NewBrowseService(browseRepo, reviewRepo, logr)
	exportSvc := service.NewExportService(swapSvc, reviewSvc, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	metricsHandler := handler.NewMetricsHandler(metrics)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Auth:    handler.NewAuthHandler(authSvc),
		Profile: handler.NewProfileHandler(profileSvc, userSkillSvc),
		Catalog: handler.NewCatalogHandler(catalogSvc),
		Browse:  handler.NewBrowseHandler(browseSvc),
		Swap:    handler.NewSwapHandler(swapSvc, exportSvc),
		Review:  handler.NewReviewHandler(reviewSvc, exportSvc),
		Metrics: metricsHandler,
	}, authSvc)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
