package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/penomovu/Unveil/internal/model"
	"github.com/penomovu/Unveil/internal/service"
)

const defaultSearchLimit = 5

// WriteupHandler writeup upload and search endpoints
type WriteupHandler struct {
	writeups *service.WriteupService
	logger   *zap.Logger
}

// NewWriteupHandler creates the writeup handler
func NewWriteupHandler(writeups *service.WriteupService, logger *zap.Logger) *WriteupHandler {
	return &WriteupHandler{
		writeups: writeups,
		logger:   logger,
	}
}

// Upload ingests a writeup
func (h *WriteupHandler) Upload(c *gin.Context) {
	var req model.WriteupUpload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": "invalid request"})
		return
	}

	writeup, err := h.writeups.Ingest(req)
	if err != nil {
		h.logger.Error("writeup ingestion failed", zap.Error(err))
		c.JSON(500, gin.H{"error": "ingestion failed"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"id":      writeup.ID,
	})
}

// Search keyword search over stored writeups
func (h *WriteupHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(400, gin.H{"error": "q parameter is required"})
		return
	}

	limit := defaultSearchLimit
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results := h.writeups.Search(query, limit)
	c.JSON(200, gin.H{
		"results": results,
		"count":   len(results),
	})
}
