package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/imagify-art/imagify-backend/internal/models"
	"go.uber.org/zap"
)

const maxListedTables = 10

// TestDatabase reports whether the optional database is configured and
// reachable. It always answers 200; the body carries the probe results.
func (h *ImageHandler) TestDatabase(c *gin.Context) {
	ctx := c.Request.Context()

	report := models.DatabaseDiagnostic{
		Backend:          models.StatusRunning,
		Database:         models.StatusNotAvailable,
		DatabaseURL:      models.StatusNotSet,
		DatabaseName:     models.StatusNotSet,
		ConnectionStatus: models.StatusNotConnected,
		Collections:      []string{},
	}

	if h.config.Database.URL != "" {
		report.DatabaseURL = models.StatusSet
	}
	if h.config.Database.Name != "" {
		report.DatabaseName = models.StatusSet
	}

	if h.database.Available() {
		report.Database = models.StatusAvailable

		if err := h.database.Ping(ctx); err != nil {
			report.ConnectionStatus = "error: " + truncateError(err, 50)
		} else {
			report.ConnectionStatus = models.StatusConnected
		}

		tables, err := h.database.Tables(ctx, maxListedTables)
		if err != nil {
			report.Database = "connected but error: " + truncateError(err, 50)
		} else {
			report.Collections = tables
			report.Database = "connected and working"
		}
	}

	c.JSON(http.StatusOK, report)
}

// GetStats reports usage counters and cache health.
func (h *ImageHandler) GetStats(c *gin.Context) {
	snapshot, err := h.stats.Snapshot(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to get usage stats", zap.Error(err))
		h.respondError(c, http.StatusInternalServerError, "Failed to get usage stats")
		return
	}

	c.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    snapshot,
	})
}

func truncateError(err error, limit int) string {
	message := []rune(err.Error())
	if len(message) > limit {
		return string(message[:limit])
	}
	return err.Error()
}
