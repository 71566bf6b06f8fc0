package handlers

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"dc-atlas-api-server/internal/catalog"
	"dc-atlas-api-server/internal/store"
)

type CompareHandler struct {
	Store *store.DataCenterStore
}

type CompareRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,max=3"`
	// Fields limits the table to the named rows; empty means all.
	Fields []string `json:"fields"`
}

type compareScore struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Compare builds the side-by-side table for up to three facilities. Flags
// follow the engine's uniform max-wins rule; the presentation layer decides
// how to render lower-is-better fields like price and PUE.
func (h *CompareHandler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var sel catalog.Selection
	for _, id := range req.IDs {
		dc, err := h.Store.Get(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Data center %s not found", id)})
			return
		}
		sel.Add(dc) // duplicates in the request are a no-op
	}
	selected := sel.Items()

	fields := catalog.DefaultFields()
	if len(req.Fields) > 0 {
		byKey := make(map[string]catalog.Field, len(fields))
		for _, f := range fields {
			byKey[f.Key] = f
		}
		picked := make([]catalog.Field, 0, len(req.Fields))
		for _, key := range req.Fields {
			f, ok := byKey[key]
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown comparison field %q", key)})
				return
			}
			picked = append(picked, f)
		}
		fields = picked
	}

	rows := make([]catalog.Row, 0, len(fields))
	for _, f := range fields {
		row, err := catalog.CompareRow(f.Label, selected, f.Extract, f.Format)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		rows = append(rows, row)
	}

	scores := make([]compareScore, 0, len(selected))
	for _, dc := range selected {
		scores = append(scores, compareScore{
			ID:    dc.ID,
			Name:  dc.Name,
			Score: math.Round(catalog.CompositeScore(dc)*10) / 10,
		})
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows, "scores": scores})
}
