package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/adapter/http/handler"
	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/adapter/http/middleware"
	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/domain/service"
	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/infrastructure/config"
	"github.com/so123-design/AI-Based-Emotion-Detection-Web-App/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(detector service.EmotionDetector, emotionService handler.ServicePinger, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.NewHTTPMetrics(prometheus.DefaultRegisterer).Handler())

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		router.Use(limiter.Handler())
	}

	// Health endpoints
	healthHandler := handler.NewHealthHandler(emotionService)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize usecases
	emotionUC := usecase.NewEmotionUsecase(detector)

	// Initialize handlers
	emotionHandler := handler.NewEmotionHandler(emotionUC)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		emotions := v1.Group("/emotions")
		{
			emotions.POST("/detect", emotionHandler.Detect)
			emotions.GET("/detect", emotionHandler.DetectQuery)
		}
	}

	return router
}
