package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dc-atlas-api-server/internal/api/middleware"
	"dc-atlas-api-server/internal/catalog"
	"dc-atlas-api-server/internal/models"
	"dc-atlas-api-server/internal/seed"
	"dc-atlas-api-server/internal/store"
)

type DataCenterHandler struct {
	Store *store.DataCenterStore
	Users *store.UserStore
	Memo  *catalog.Memo
}

// List serves the directory view: prioritized for the authenticated caller's
// country unless showAll is set, then filtered by search/location/tier.
func (h *DataCenterHandler) List(c *gin.Context) {
	search := c.Query("search")
	location := c.Query("location")
	tier := c.Query("tier")
	showAll := c.Query("showAll") == "true"

	user := viewerFromContext(c, h.Users)
	result := h.Memo.Visible(h.Store, user, showAll, search, location, tier)

	resp := gin.H{
		"count":       len(result),
		"dataCenters": result,
	}
	if user != nil && !showAll {
		home := 0
		for _, dc := range h.Store.List() {
			if strings.EqualFold(dc.Country, user.Country) {
				home++
			}
		}
		resp["homeCountry"] = user.Country
		resp["homeCountryCount"] = home
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DataCenterHandler) Get(c *gin.Context) {
	dc, err := h.Store.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data center not found"})
		return
	}
	c.JSON(http.StatusOK, dc)
}

// Options serves the distinct location and tier values for filter dropdowns.
func (h *DataCenterHandler) Options(c *gin.Context) {
	all := h.Store.List()
	c.JSON(http.StatusOK, gin.H{
		"locations": catalog.DistinctLocations(all),
		"tiers":     catalog.DistinctTiers(all),
	})
}

func (h *DataCenterHandler) Create(c *gin.Context) {
	var dc models.DataCenter
	if err := c.ShouldBindJSON(&dc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg, ok := requiredFields(dc); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if dc.ID == "" {
		dc.ID = uuid.New().String()
	}
	if err := seed.Validate(dc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.Create(dc); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Data center with this ID already exists"})
		return
	}
	c.JSON(http.StatusCreated, dc)
}

// Update replaces the whole record at id; partial edits are not merged.
func (h *DataCenterHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var dc models.DataCenter
	if err := c.ShouldBindJSON(&dc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dc.ID = id
	if msg, ok := requiredFields(dc); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if err := seed.Validate(dc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.Replace(id, dc); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data center not found"})
		return
	}
	c.JSON(http.StatusOK, dc)
}

func (h *DataCenterHandler) Delete(c *gin.Context) {
	if err := h.Store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data center not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data center deleted successfully"})
}

func requiredFields(dc models.DataCenter) (string, bool) {
	switch {
	case dc.Name == "":
		return "name is required", false
	case dc.Location == "":
		return "location is required", false
	case dc.City == "":
		return "city is required", false
	case dc.Country == "":
		return "country is required", false
	case dc.Tier == "":
		return "tier is required", false
	}
	return "", true
}

// viewerFromContext rebuilds the catalog's view of the caller from the JWT
// claims the auth middleware stored, nil for anonymous requests.
func viewerFromContext(c *gin.Context, users *store.UserStore) *models.User {
	id, ok := c.Get(middleware.CtxUserID)
	if !ok {
		return nil
	}
	userID, _ := id.(string)
	if user, err := users.GetByID(userID); err == nil {
		return &user
	}
	// Token outlived the account; fall back to the claims country so
	// prioritization still works.
	country, _ := c.Get(middleware.CtxCountry)
	countryStr, _ := country.(string)
	if countryStr == "" {
		return nil
	}
	return &models.User{ID: userID, Country: countryStr}
}
