package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	auction "auction-house/internal/auctionService"
	catalog "auction-house/internal/catalogService"
	"auction-house/internal/repository"
	"auction-house/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the router with in-memory repository for integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	auctionService := auction.NewAuctionService(repo)
	catalogService := catalog.NewCatalogService(repo)
	return server.SetupRouter(auctionService, catalogService)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// data extracts the data payload of a successful response as an object.
func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	require.True(t, ok, "response data should be an object, got %T", resp["data"])
	return d
}

// registerUser creates a user through the API and returns its id.
func registerUser(t *testing.T, router *gin.Engine, name, email string) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/users", map[string]any{
		"name":     name,
		"email":    email,
		"provider": "google",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return data(t, resp)["user_id"].(string)
}

// seedCatalog creates a category, a brand and a model through the API and
// returns the model id.
func seedCatalog(t *testing.T, router *gin.Engine, brandName, modelName string) string {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/categories", map[string]any{"name": "Mobile-" + brandName})
	require.Equal(t, http.StatusCreated, w.Code)
	categoryID := data(t, resp)["category_id"].(string)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/brands", map[string]any{"name": brandName})
	require.Equal(t, http.StatusCreated, w.Code)
	brandID := data(t, resp)["brand_id"].(string)

	resp, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/models", map[string]any{
		"name":         modelName,
		"brand_id":     brandID,
		"category_ids": []string{categoryID},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return data(t, resp)["model_id"].(string)
}

// listProduct creates a product with a bidding room and returns the
// product id and room id.
func listProduct(t *testing.T, router *gin.Engine, ownerID, modelID string, price float64, durationSeconds int64) (productID, roomID string) {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/products", map[string]any{
		"owner_id":         ownerID,
		"model_id":         modelID,
		"price":            price,
		"duration_seconds": durationSeconds,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	d := data(t, resp)
	room := d["room"].(map[string]any)
	return d["product_id"].(string), room["room_id"].(string)
}
