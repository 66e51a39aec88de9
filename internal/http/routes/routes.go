package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/imagify-art/imagify-backend/internal/http/handlers"
	"github.com/imagify-art/imagify-backend/internal/http/middleware"
	"go.uber.org/zap"
)

type Router struct {
	imageHandler *handlers.ImageHandler
	logger       *zap.Logger
}

func NewRouter(
	imageHandler *handlers.ImageHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		imageHandler: imageHandler,
		logger:       logger,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.ValidateContentType())

	api := router.Group("/api")
	{
		api.GET("/hello", r.imageHandler.Hello)
		api.POST("/generate", r.imageHandler.GenerateImages)
		api.GET("/stats", r.imageHandler.GetStats)
	}

	router.GET("/test", r.imageHandler.TestDatabase)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"message": "Imagify.art Backend Running",
		})
	})

	return router
}
