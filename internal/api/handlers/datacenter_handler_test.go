package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dc-atlas-api-server/internal/api/handlers"
	"dc-atlas-api-server/internal/api/middleware"
	"dc-atlas-api-server/internal/catalog"
	"dc-atlas-api-server/internal/models"
	"dc-atlas-api-server/internal/store"
)

type listResponse struct {
	Count            int                 `json:"count"`
	DataCenters      []models.DataCenter `json:"dataCenters"`
	HomeCountry      string              `json:"homeCountry"`
	HomeCountryCount int                 `json:"homeCountryCount"`
}

func newCatalogRouter(t *testing.T) (*gin.Engine, *store.DataCenterStore, *store.UserStore) {
	t.Helper()
	dataCenters := store.NewDataCenterStore([]models.DataCenter{
		testFacility("dc-1", "TechVault NYC", "New York, NY", "New York", "USA", models.Tier4),
		testFacility("dc-2", "CloudCore London", "London, UK", "London", "United Kingdom", models.Tier3),
		testFacility("dc-3", "DataFlex Tokyo", "Tokyo, Japan", "Tokyo", "Japan", models.Tier4),
	})
	users := seedUsers(t)
	h := &handlers.DataCenterHandler{Store: dataCenters, Users: users, Memo: &catalog.Memo{}}

	router := gin.New()
	public := router.Group("/api/v1")
	public.Use(middleware.OptionalAuthenticate())
	{
		public.GET("/datacenters", h.List)
		public.GET("/datacenters/:id", h.Get)
		public.GET("/filter-options", h.Options)
	}
	admin := router.Group("/api/v1/admin/datacenters")
	admin.Use(middleware.Authenticate())
	admin.Use(middleware.Authorize(models.RoleAdmin))
	{
		admin.POST("/", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
	return router, dataCenters, users
}

func listIDs(list []models.DataCenter) []string {
	out := make([]string, len(list))
	for i, dc := range list {
		out[i] = dc.ID
	}
	return out
}

func TestListAnonymousKeepsCatalogOrder(t *testing.T) {
	router, _, _ := newCatalogRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/datacenters", nil, "")
	requireStatus(t, w, http.StatusOK)

	var resp listResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, []string{"dc-1", "dc-2", "dc-3"}, listIDs(resp.DataCenters))
	assert.Empty(t, resp.HomeCountry)
}

func TestListPrioritizesAuthenticatedCountry(t *testing.T) {
	router, _, users := newCatalogRouter(t)
	viewer, err := users.GetByID("u-user") // Japan
	require.NoError(t, err)
	token := bearerToken(t, viewer)

	w := doJSON(t, router, http.MethodGet, "/api/v1/datacenters", nil, token)
	requireStatus(t, w, http.StatusOK)

	var resp listResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, []string{"dc-3", "dc-1", "dc-2"}, listIDs(resp.DataCenters))
	assert.Equal(t, "Japan", resp.HomeCountry)
	assert.Equal(t, 1, resp.HomeCountryCount)
}

func TestListShowAllSuppressesPrioritization(t *testing.T) {
	router, _, users := newCatalogRouter(t)
	viewer, err := users.GetByID("u-user")
	require.NoError(t, err)
	token := bearerToken(t, viewer)

	w := doJSON(t, router, http.MethodGet, "/api/v1/datacenters?showAll=true", nil, token)
	requireStatus(t, w, http.StatusOK)

	var resp listResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, []string{"dc-1", "dc-2", "dc-3"}, listIDs(resp.DataCenters))
	assert.Empty(t, resp.HomeCountry)
}

func TestListFilters(t *testing.T) {
	router, _, _ := newCatalogRouter(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"search", "?search=vault", []string{"dc-1"}},
		{"tier", "?tier=Tier+4", []string{"dc-1", "dc-3"}},
		{"location", "?location=London,+UK", []string{"dc-2"}},
		{"conjunction", "?search=cloud&tier=Tier+4", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodGet, "/api/v1/datacenters"+tt.query, nil, "")
			requireStatus(t, w, http.StatusOK)
			var resp listResponse
			decodeBody(t, w, &resp)
			if len(tt.want) == 0 {
				assert.Zero(t, resp.Count)
				return
			}
			assert.Equal(t, tt.want, listIDs(resp.DataCenters))
		})
	}
}

func TestGetDataCenter(t *testing.T) {
	router, _, _ := newCatalogRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/datacenters/dc-2", nil, "")
	requireStatus(t, w, http.StatusOK)
	var dc models.DataCenter
	decodeBody(t, w, &dc)
	assert.Equal(t, "CloudCore London", dc.Name)

	w = doJSON(t, router, http.MethodGet, "/api/v1/datacenters/missing", nil, "")
	requireStatus(t, w, http.StatusNotFound)
}

func TestFilterOptions(t *testing.T) {
	router, _, _ := newCatalogRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/filter-options", nil, "")
	requireStatus(t, w, http.StatusOK)

	var resp struct {
		Locations []string `json:"locations"`
		Tiers     []string `json:"tiers"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, []string{"New York, NY", "London, UK", "Tokyo, Japan"}, resp.Locations)
	assert.Equal(t, []string{models.Tier4, models.Tier3}, resp.Tiers)
}

func TestCreateRequiresAdmin(t *testing.T) {
	router, dataCenters, users := newCatalogRouter(t)
	body := testFacility("dc-9", "NewVault Austin", "Austin, TX", "Austin", "USA", models.Tier3)

	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/datacenters/", body, "")
	requireStatus(t, w, http.StatusUnauthorized)

	viewer, err := users.GetByID("u-user")
	require.NoError(t, err)
	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/datacenters/", body, bearerToken(t, viewer))
	requireStatus(t, w, http.StatusForbidden)

	require.Equal(t, 3, dataCenters.Count())
}

func TestCreateDataCenter(t *testing.T) {
	router, dataCenters, users := newCatalogRouter(t)
	admin, err := users.GetByID("u-admin")
	require.NoError(t, err)
	token := bearerToken(t, admin)

	body := testFacility("dc-9", "NewVault Austin", "Austin, TX", "Austin", "USA", models.Tier3)
	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/datacenters/", body, token)
	requireStatus(t, w, http.StatusCreated)
	assert.Equal(t, 4, dataCenters.Count())

	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/datacenters/", body, token)
	requireStatus(t, w, http.StatusConflict)
}

func TestCreateAssignsIDWhenMissing(t *testing.T) {
	router, dataCenters, users := newCatalogRouter(t)
	admin, err := users.GetByID("u-admin")
	require.NoError(t, err)

	body := testFacility("", "NewVault Austin", "Austin, TX", "Austin", "USA", models.Tier3)
	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/datacenters/", body, bearerToken(t, admin))
	requireStatus(t, w, http.StatusCreated)

	var created models.DataCenter
	decodeBody(t, w, &created)
	assert.NotEmpty(t, created.ID)
	_, err = dataCenters.Get(created.ID)
	assert.NoError(t, err)
}

func TestCreateRejectsInvalidRecords(t *testing.T) {
	router, _, users := newCatalogRouter(t)
	admin, err := users.GetByID("u-admin")
	require.NoError(t, err)
	token := bearerToken(t, admin)

	missingName := testFacility("dc-9", "", "Austin, TX", "Austin", "USA", models.Tier3)
	w := doJSON(t, router, http.MethodPost, "/api/v1/admin/datacenters/", missingName, token)
	requireStatus(t, w, http.StatusBadRequest)

	badPricing := testFacility("dc-9", "NewVault", "Austin, TX", "Austin", "USA", models.Tier3)
	badPricing.Pricing.Colocation = "N/A"
	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/datacenters/", badPricing, token)
	requireStatus(t, w, http.StatusBadRequest)

	badTier := testFacility("dc-9", "NewVault", "Austin, TX", "Austin", "USA", "Tier 9")
	w = doJSON(t, router, http.MethodPost, "/api/v1/admin/datacenters/", badTier, token)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestUpdateDataCenter(t *testing.T) {
	router, dataCenters, users := newCatalogRouter(t)
	admin, err := users.GetByID("u-admin")
	require.NoError(t, err)
	token := bearerToken(t, admin)

	body := testFacility("ignored", "TechVault NYC Renamed", "New York, NY", "New York", "USA", models.Tier4)
	w := doJSON(t, router, http.MethodPut, "/api/v1/admin/datacenters/dc-1", body, token)
	requireStatus(t, w, http.StatusOK)

	got, err := dataCenters.Get("dc-1")
	require.NoError(t, err)
	assert.Equal(t, "TechVault NYC Renamed", got.Name)

	w = doJSON(t, router, http.MethodPut, "/api/v1/admin/datacenters/missing", body, token)
	requireStatus(t, w, http.StatusNotFound)
}

func TestDeleteDataCenter(t *testing.T) {
	router, dataCenters, users := newCatalogRouter(t)
	admin, err := users.GetByID("u-admin")
	require.NoError(t, err)
	token := bearerToken(t, admin)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/admin/datacenters/dc-2", nil, token)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, 2, dataCenters.Count())

	w = doJSON(t, router, http.MethodDelete, "/api/v1/admin/datacenters/dc-2", nil, token)
	requireStatus(t, w, http.StatusNotFound)
}
