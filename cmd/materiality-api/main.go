package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/materiality-api/api/swagger"
	"github.com/noah-isme/materiality-api/internal/handler"
	"github.com/noah-isme/materiality-api/internal/materiality"
	"github.com/noah-isme/materiality-api/internal/middleware"
	"github.com/noah-isme/materiality-api/internal/models"
	"github.com/noah-isme/materiality-api/internal/repository"
	"github.com/noah-isme/materiality-api/internal/service"
	"github.com/noah-isme/materiality-api/pkg/cache"
	"github.com/noah-isme/materiality-api/pkg/config"
	"github.com/noah-isme/materiality-api/pkg/database"
	"github.com/noah-isme/materiality-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/materiality-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/materiality-api/pkg/middleware/requestid"
)

// @title Materiality Assessment API
// @version 0.1.0
// @description Double materiality assessment engine for ESG reporting
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		cacheSvc = service.NewCacheService(nil, metricsSvc, cfg.Assessment.CacheTTL, logr, false)
	} else {
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		defer cacheRepo.Close() //nolint:errcheck
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Assessment.CacheTTL, logr, true)
	}

	topicRepo := repository.NewTopicRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)

	catalogSvc := service.NewCatalogService()
	topicSvc := service.NewTopicService(topicRepo, catalogSvc, cacheSvc,
		models.TopicCategory(cfg.Assessment.DefaultCustomCategory), nil, logr)
	scoringSvc := service.NewScoringService(topicRepo, cacheSvc, nil, logr)
	matrixSvc := service.NewMatrixService(topicSvc, materiality.MatrixConfig{
		Size:    cfg.Assessment.MatrixSize,
		Padding: cfg.Assessment.MatrixPadding,
	})
	assessmentSvc := service.NewAssessmentService(topicSvc, cacheSvc, logr)
	reportSvc := service.NewReportService(topicSvc, cfg.Assessment.ExportEnabled)
	orgSvc := service.NewOrganizationService(orgRepo)

	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	topicHandler := handler.NewTopicHandler(topicSvc)
	scoringHandler := handler.NewScoringHandler(scoringSvc)
	matrixHandler := handler.NewMatrixHandler(matrixSvc)
	assessmentHandler := handler.NewAssessmentHandler(assessmentSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	orgHandler := handler.NewOrganizationHandler(orgSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", metricsHandler.Health)

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(cfg.JWT.Secret))
	{
		api.GET("/catalog", catalogHandler.List)
		api.GET("/organizations", orgHandler.List)

		scoped := api.Group("", middleware.OrganizationScope(orgRepo))
		scoped.GET("/topics", topicHandler.List)
		scoped.POST("/topics/toggle", topicHandler.Toggle)
		scoped.POST("/topics/custom", topicHandler.AddCustom)
		scoped.DELETE("/topics/:id", topicHandler.Remove)
		scoped.PATCH("/topics/:id/score", scoringHandler.Score)
		scoped.PATCH("/topics/:id/report", scoringHandler.Report)

		scoped.GET("/matrix", matrixHandler.Get)
		scoped.GET("/assessment/overview", assessmentHandler.Overview)
		scoped.GET("/report", reportHandler.Final)
		scoped.GET("/report/export", reportHandler.Export)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
