package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studio-service/controllers"
	"studio-service/database"
	"studio-service/middleware"
	"studio-service/models"
	"studio-service/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCartRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := database.NewMemorySessionStore(time.Minute)
	controller := controllers.NewCartController(services.NewCartService(store, zap.NewNop()))

	r := gin.New()
	r.Use(middleware.Session())
	r.GET("/cart", controller.GetCart)
	r.POST("/cart/items", controller.AddItem)
	r.PATCH("/cart/items/:item_id", controller.UpdateQuantity)
	r.DELETE("/cart/items/:item_id", controller.RemoveItem)
	r.DELETE("/cart", controller.ClearCart)
	return r
}

func newGetRequest(path, sessionID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r *gin.Engine, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetCartSeedsNewSessions(t *testing.T) {
	r := newCartRouter()

	w := doJSON(r, http.MethodGet, "/cart", "tab-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tab-1", w.Header().Get("X-Session-ID"))

	var summary models.CartSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Len(t, summary.Items, 2)
	assert.InDelta(t, 5897.64, summary.Total, 1e-9)
}

func TestMissingSessionIDMintsOne(t *testing.T) {
	r := newCartRouter()

	w := doJSON(r, http.MethodGet, "/cart", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Session-ID"))
}

func TestUpdateQuantityEndpoint(t *testing.T) {
	r := newCartRouter()

	w := doJSON(r, http.MethodPatch, "/cart/items/1", "tab-1", gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.CartSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "2", summary.Items[0].ID)

	// quantity is required, not defaulted
	w = doJSON(r, http.MethodPatch, "/cart/items/2", "tab-1", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddItemEndpoint(t *testing.T) {
	r := newCartRouter()

	w := doJSON(r, http.MethodPost, "/cart/items", "tab-1", gin.H{
		"id": "oil", "name": "Organic Hair Oil", "price": 999, "quantity": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.CartSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Len(t, summary.Items, 3)

	w = doJSON(r, http.MethodPost, "/cart/items", "tab-1", gin.H{
		"id": "oil", "name": "Organic Hair Oil", "price": -1, "quantity": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearCartEndpoint(t *testing.T) {
	r := newCartRouter()

	w := doJSON(r, http.MethodDelete, "/cart", "tab-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.CartSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.TotalItems)
}
