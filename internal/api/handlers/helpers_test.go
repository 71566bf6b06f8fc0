package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"dc-atlas-api-server/internal/auth"
	"dc-atlas-api-server/internal/models"
	"dc-atlas-api-server/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
	auth.Configure("test-secret", time.Hour)
}

var (
	hashOnce sync.Once
	demoHash string
)

// demoPasswordHash returns a shared bcrypt hash of "admin123". Hashing is
// deliberately slow, so the tests compute it once.
func demoPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		var err error
		demoHash, err = auth.HashPassword("admin123")
		require.NoError(t, err)
	})
	return demoHash
}

func seedUsers(t *testing.T) *store.UserStore {
	t.Helper()
	hash := demoPasswordHash(t)
	return store.NewUserStore([]models.User{
		{ID: "u-admin", Email: "admin@datacenter.com", Name: "Admin User", Location: "New York", Country: "USA", Role: models.RoleAdmin, Password: hash, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "u-user", Email: "user@example.com", Name: "John Doe", Location: "Tokyo", Country: "Japan", Role: models.RoleUser, Password: hash, CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
	})
}

func bearerToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)
	return token
}

func testFacility(id, name, location, city, country, tier string) models.DataCenter {
	dc := models.DataCenter{
		ID:       id,
		Name:     name,
		Location: location,
		City:     city,
		Country:  country,
		Tier:     tier,
	}
	dc.Specifications.Power = "25 MW"
	dc.Capacity.Used = 65
	dc.Capacity.AvailableRacks = 350
	dc.Capacity.Status = models.CapacityAvailable
	dc.Sustainability.PUE = 1.3
	dc.Sustainability.RenewableEnergy = 75
	dc.Reviews = models.Reviews{Rating: 4.7, TotalReviews: 120, Reliability: 4.8, Support: 4.6, Value: 4.5}
	dc.RealTimeData.Uptime = 99.98
	dc.Pricing = models.Pricing{
		Colocation:      "450",
		DedicatedServer: "250",
		CloudHosting:    "0.12",
		Bandwidth:       "3",
		Setup:           "500",
	}
	return dc
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "body: %s", w.Body.String())
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
