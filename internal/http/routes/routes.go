package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shubhankar1313/glf-banner-generator/internal/http/handlers"
	"github.com/shubhankar1313/glf-banner-generator/internal/http/middleware"
)

type Router struct {
	cardHandler *handlers.CardHandler
	logger      *zap.Logger
}

func NewRouter(
	cardHandler *handlers.CardHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		cardHandler: cardHandler,
		logger:      logger,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.cardHandler.HealthCheck)

		cards := v1.Group("/cards")
		{
			cards.POST("/compose", r.cardHandler.ComposeCard)
		}
	}

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "Banner generator is running",
		})
	})

	return router
}
