package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dc-atlas-api-server/internal/catalog"
	"dc-atlas-api-server/internal/store"
)

type AnalyticsHandler struct {
	Store *store.DataCenterStore
	Memo  *catalog.Memo
}

// Get serves the dashboard snapshot. Aggregation errors mean malformed store
// contents (every record is validated on the way in), so they surface as 500s
// rather than being papered over.
func (h *AnalyticsHandler) Get(c *gin.Context) {
	snap, err := h.Memo.Aggregate(h.Store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}
