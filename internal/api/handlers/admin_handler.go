package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"dc-atlas-api-server/internal/catalog"
	"dc-atlas-api-server/internal/models"
	"dc-atlas-api-server/internal/store"
)

// AdminHandler serves the admin console header stats.
type AdminHandler struct {
	Store *store.DataCenterStore
	Users *store.UserStore
}

func (h *AdminHandler) Stats(c *gin.Context) {
	all := h.Store.List()

	available := 0
	totalPower := 0
	var uptimeSum float64
	for _, dc := range all {
		if dc.Capacity.Status == models.CapacityAvailable {
			available++
		}
		power, err := catalog.ParseLeadingInt("specifications.power", dc.ID, dc.Specifications.Power)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		totalPower += power
		uptimeSum += dc.RealTimeData.Uptime
	}

	averageUptime := 0.0
	if len(all) > 0 {
		averageUptime = math.Round(uptimeSum/float64(len(all))*100) / 100
	}

	c.JSON(http.StatusOK, gin.H{
		"totalDataCenters":  len(all),
		"totalUsers":        h.Users.Count(),
		"availableCapacity": available,
		"totalPowerMW":      totalPower,
		"averageUptime":     averageUptime,
	})
}
