package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"unityplates-backend/config"
	"unityplates-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Food{}, &models.RequestedFood{}))

	cfg := &config.Config{
		Environment:    "development",
		JWTSecret:      "test-secret",
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	return SetupRouter(cfg, db)
}

func do(r *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, r *gin.Engine, email string) *http.Cookie {
	t.Helper()
	w := do(r, http.MethodPost, "/jwt", map[string]string{"email": email})
	require.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			assert.True(t, c.HttpOnly)
			assert.False(t, c.Secure, "dev cookies stay non-secure")
			return c
		}
	}
	t.Fatal("no token cookie set")
	return nil
}

func TestLiveness(t *testing.T) {
	r := newTestRouter(t)
	w := do(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unityplates")
}

func TestFoodLifecycle(t *testing.T) {
	r := newTestRouter(t)

	create := map[string]any{
		"foodName":     "Rice",
		"foodQuantity": 10,
		"status":       "available",
		"expiredDate":  "2026-09-20T00:00:00Z",
		"userDetails":  map[string]string{"email": "a@x.com", "name": "Aisha"},
	}
	w := do(r, http.MethodPost, "/postedfoods", create)
	require.Equal(t, http.StatusOK, w.Code)

	var created models.Food
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	detailsPath := fmt.Sprintf("/fooddetails/%d", created.ID)

	// Round trip.
	w = do(r, http.MethodGet, detailsPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Food
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Rice", fetched.FoodName)
	assert.Equal(t, float64(10), fetched.FoodQuantity)
	assert.Equal(t, "a@x.com", fetched.UserDetails.Email)

	updatePath := fmt.Sprintf("/updatesFoodData/%d", created.ID)

	// Update requires a session.
	w = do(r, http.MethodPut, updatePath, map[string]any{"foodQuantity": 5})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := sessionCookie(t, r, "a@x.com")
	w = do(r, http.MethodPut, updatePath, map[string]any{"foodQuantity": 5}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"matchedCount":1`)

	// Partial merge: quantity changed, name untouched.
	w = do(r, http.MethodGet, detailsPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, float64(5), fetched.FoodQuantity)
	assert.Equal(t, "Rice", fetched.FoodName)

	// Idempotent delete.
	deletePath := fmt.Sprintf("/deletefood/%d", created.ID)
	w = do(r, http.MethodDelete, deletePath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deletedCount":1`)

	w = do(r, http.MethodDelete, deletePath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deletedCount":0`)
}

func TestFoodQueries(t *testing.T) {
	r := newTestRouter(t)

	post := func(name string, quantity float64, status, expired string) {
		w := do(r, http.MethodPost, "/postedfoods", map[string]any{
			"foodName":     name,
			"foodQuantity": quantity,
			"status":       status,
			"expiredDate":  expired,
			"userDetails":  map[string]string{"email": "a@x.com"},
		})
		require.Equal(t, http.StatusOK, w.Code)
	}
	post("Fresh Bread", 4, "available", "2026-09-05T00:00:00Z")
	post("Soup", 20, "available", "2026-09-12T00:00:00Z")
	post("Cake", 9, "requested", "2026-09-03T00:00:00Z")

	t.Run("featured by quantity", func(t *testing.T) {
		w := do(r, http.MethodGet, "/foods", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var foods []models.Food
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
		require.Len(t, foods, 3)
		assert.Equal(t, "Soup", foods[0].FoodName)
	})

	t.Run("available ascending", func(t *testing.T) {
		w := do(r, http.MethodGet, "/availabefoods", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var foods []models.Food
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
		require.Len(t, foods, 2)
		assert.Equal(t, "Fresh Bread", foods[0].FoodName)
	})

	t.Run("available descending", func(t *testing.T) {
		w := do(r, http.MethodGet, "/availabefoodsorted", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var foods []models.Food
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
		require.Len(t, foods, 2)
		assert.Equal(t, "Soup", foods[0].FoodName)
	})

	t.Run("search case-insensitive", func(t *testing.T) {
		w := do(r, http.MethodGet, "/searchfoods/brea", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var foods []models.Food
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &foods))
		require.Len(t, foods, 1)
		assert.Equal(t, "Fresh Bread", foods[0].FoodName)
	})

	t.Run("details not found", func(t *testing.T) {
		w := do(r, http.MethodGet, "/fooddetails/9999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("details malformed id", func(t *testing.T) {
		w := do(r, http.MethodGet, "/fooddetails/not-an-id", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIdentityScopedRoutes(t *testing.T) {
	r := newTestRouter(t)
	cookie := sessionCookie(t, r, "a@x.com")

	w := do(r, http.MethodPost, "/requestedfoods", map[string]any{
		"foodId":         1,
		"foodName":       "Rice",
		"requestorEmail": "a@x.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("no token is 401", func(t *testing.T) {
		w := do(r, http.MethodGet, "/getMyFoods/a@x.com", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("foreign email is 403 even for absent resources", func(t *testing.T) {
		w := do(r, http.MethodGet, "/getMyFoods/b@y.com", nil, cookie)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = do(r, http.MethodGet, "/manageAllFoods/b@y.com", nil, cookie)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("own email lists requests", func(t *testing.T) {
		w := do(r, http.MethodGet, "/getMyFoods/a@x.com", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
		var requests []models.RequestedFood
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &requests))
		require.Len(t, requests, 1)
		assert.Equal(t, "a@x.com", requests[0].RequestorEmail)
	})

	t.Run("own email lists postings", func(t *testing.T) {
		w := do(r, http.MethodGet, "/manageAllFoods/a@x.com", nil, cookie)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	var token *http.Cookie
	for _, c := range cookies {
		if c.Name == "token" {
			token = c
		}
	}
	require.NotNil(t, token)
	assert.Empty(t, token.Value)
	assert.LessOrEqual(t, token.MaxAge, 0)
	assert.True(t, token.HttpOnly)
}

func TestCreateFoodValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing name", body: map[string]any{
			"foodQuantity": 1, "expiredDate": "2026-09-20T00:00:00Z",
			"userDetails": map[string]string{"email": "a@x.com"},
		}},
		{name: "negative quantity", body: map[string]any{
			"foodName": "Rice", "foodQuantity": -2, "expiredDate": "2026-09-20T00:00:00Z",
			"userDetails": map[string]string{"email": "a@x.com"},
		}},
		{name: "bad owner email", body: map[string]any{
			"foodName": "Rice", "foodQuantity": 1, "expiredDate": "2026-09-20T00:00:00Z",
			"userDetails": map[string]string{"email": "not-an-email"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/postedfoods", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
