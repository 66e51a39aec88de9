package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/imagify-art/imagify-backend/internal/config"
	"github.com/imagify-art/imagify-backend/internal/models"
	"github.com/imagify-art/imagify-backend/internal/services/database"
	"github.com/imagify-art/imagify-backend/internal/services/generator"
	"github.com/imagify-art/imagify-backend/internal/services/stats"
	"go.uber.org/zap"
)

type ImageHandler struct {
	generator *generator.Generator
	database  *database.Service
	stats     *stats.Service
	logger    *zap.Logger
	config    *config.Config
}

func NewImageHandler(
	generator *generator.Generator,
	database *database.Service,
	stats *stats.Service,
	logger *zap.Logger,
	config *config.Config,
) *ImageHandler {
	return &ImageHandler{
		generator: generator,
		database:  database,
		stats:     stats,
		logger:    logger,
		config:    config,
	}
}

// === MAIN API ENDPOINTS ===

func (h *ImageHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Hello from the backend API!"})
}

// GenerateImages answers POST /api/generate with a deterministic list of
// image URLs. The success body stays unenveloped for compatibility with
// existing clients.
func (h *ImageHandler) GenerateImages(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.generator.ValidatePrompt(req.Prompt); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	images := h.generator.Generate(&req)

	model := req.Model
	if model == "" {
		model = models.DefaultModel
	}
	h.stats.RecordGeneration(c.Request.Context(), model, len(images))

	c.JSON(http.StatusOK, models.GenerateResponse{Images: images})
}

// === RESPONSE HANDLING ===

func (h *ImageHandler) respondError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}
