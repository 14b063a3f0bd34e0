package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/penomovu/Unveil/internal/corpus"
	"github.com/penomovu/Unveil/internal/knowledge"
)

// StatusHandler read-only system status.
// It reads the knowledge tables and corpus, never writes them.
type StatusHandler struct {
	base      *knowledge.Base
	store     *corpus.Store
	startedAt time.Time
	service   string
}

// NewStatusHandler creates the status handler
func NewStatusHandler(base *knowledge.Base, store *corpus.Store, serviceName string) *StatusHandler {
	return &StatusHandler{
		base:      base,
		store:     store,
		startedAt: time.Now(),
		service:   serviceName,
	}
}

// Status reports knowledge/corpus counts and uptime
func (h *StatusHandler) Status(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":     "UP",
		"service":    h.service,
		"uptime":     time.Since(h.startedAt).Round(time.Second).String(),
		"knowledge":  h.base.CountAll(),
		"writeups":   h.store.Count(),
		"byCategory": h.store.CountByCategory(),
	})
}

// Health liveness probe
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "UP",
		"service": h.service,
	})
}
