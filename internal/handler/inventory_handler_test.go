package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfwise/inventory-api/internal/service"
	"github.com/shelfwise/inventory-api/internal/storage"
	"github.com/shelfwise/inventory-api/internal/store"
	"github.com/shelfwise/inventory-api/internal/utils"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(storage.NewMemory(), "inventory:products")
	st.Initialize(context.Background())
	h := NewInventoryHandler(st, service.NewInventoryService(st))

	router := gin.New()
	router.GET("/v1/products", h.ListProducts)
	router.GET("/v1/products/categories", h.GetCategories)
	router.GET("/v1/products/:id", h.GetProduct)
	router.GET("/v1/stats", h.GetStats)
	router.POST("/v1/products", h.CreateProduct)
	router.PUT("/v1/products/:id", h.UpdateProduct)
	router.DELETE("/v1/products/:id", h.DeleteProduct)
	return router, st
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func dataAsList(t *testing.T, resp utils.Response) []map[string]interface{} {
	t.Helper()
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &list))
	return list
}

func TestListProducts(t *testing.T) {
	t.Run("ReturnsSeedCatalog", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w, resp := doJSON(t, router, http.MethodGet, "/v1/products", nil)

		assert.Equal(t, 200, w.Code)
		assert.True(t, resp.Success)
		assert.Len(t, dataAsList(t, resp), 5)
	})

	t.Run("SearchAndSortParams", func(t *testing.T) {
		router, _ := newTestRouter(t)
		_, resp := doJSON(t, router, http.MethodGet, "/v1/products?sort=price&dir=desc", nil)

		list := dataAsList(t, resp)
		require.Len(t, list, 5)
		assert.Equal(t, "Laptop", list[0]["name"])
		assert.Equal(t, "Apples", list[4]["name"])
	})

	t.Run("EmptyViewIsOK", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w, resp := doJSON(t, router, http.MethodGet, "/v1/products?search=nothing-matches", nil)

		assert.Equal(t, 200, w.Code)
		assert.Empty(t, dataAsList(t, resp))
	})

	t.Run("RejectsUnknownSortColumn", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w, resp := doJSON(t, router, http.MethodGet, "/v1/products?sort=bogus", nil)

		assert.Equal(t, 400, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_SORT", resp.Error.Code)
	})

	t.Run("RowsCarryStockStatus", func(t *testing.T) {
		router, _ := newTestRouter(t)
		_, resp := doJSON(t, router, http.MethodGet, "/v1/products?search=headphones", nil)

		list := dataAsList(t, resp)
		require.Len(t, list, 1)
		assert.Equal(t, "low_stock", list[0]["status"])
	})
}

func TestStatsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	_, resp := doJSON(t, router, http.MethodGet, "/v1/stats", nil)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var data struct {
		TotalValue    float64 `json:"totalValue"`
		LowStockCount int     `json:"lowStockCount"`
		ProductCount  int     `json:"productCount"`
	}
	require.NoError(t, json.Unmarshal(raw, &data))

	assert.InDelta(t, 15979.20, data.TotalValue, 1e-9)
	assert.Equal(t, 2, data.LowStockCount)
	assert.Equal(t, 5, data.ProductCount)
}

func TestCreateProductEndpoint(t *testing.T) {
	t.Run("CreatesAndReturns201", func(t *testing.T) {
		router, st := newTestRouter(t)
		w, resp := doJSON(t, router, http.MethodPost, "/v1/products", gin.H{
			"barcode": "4006381333931", "name": "Desk Lamp", "category": "Home",
			"quantity": 6, "price": 34.5,
		})

		assert.Equal(t, 201, w.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, 6, st.Count())
	})

	t.Run("DuplicateBarcodeReturns409", func(t *testing.T) {
		router, st := newTestRouter(t)
		w, resp := doJSON(t, router, http.MethodPost, "/v1/products", gin.H{
			"barcode": "1715623456789", "name": "Clone", "category": "Home",
			"quantity": 1, "price": 1,
		})

		assert.Equal(t, 409, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "DUPLICATE_BARCODE", resp.Error.Code)
		assert.Equal(t, 5, st.Count())
	})

	t.Run("ValidationFailureCarriesFieldDetails", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w, resp := doJSON(t, router, http.MethodPost, "/v1/products", gin.H{
			"barcode": "", "name": "", "category": "Home", "quantity": -2, "price": 1,
		})

		assert.Equal(t, 400, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
		assert.Contains(t, resp.Error.Fields, "name")
		assert.Contains(t, resp.Error.Fields, "quantity")
	})
}

func TestUpdateAndDeleteEndpoints(t *testing.T) {
	t.Run("UpdateUnknownIDReturns404", func(t *testing.T) {
		router, _ := newTestRouter(t)
		w, resp := doJSON(t, router, http.MethodPut, "/v1/products/missing", gin.H{
			"barcode": "5", "name": "X", "category": "Home", "quantity": 1, "price": 1,
		})

		assert.Equal(t, 404, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "PRODUCT_NOT_FOUND", resp.Error.Code)
	})

	t.Run("DeleteExistingShrinksList", func(t *testing.T) {
		router, st := newTestRouter(t)
		target, ok := st.GetByBarcode("1715623456790")
		require.True(t, ok)

		w, resp := doJSON(t, router, http.MethodDelete, "/v1/products/"+target.ID, nil)

		assert.Equal(t, 200, w.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, 4, st.Count())
	})

	t.Run("DeleteUnknownIDStillReportsSuccess", func(t *testing.T) {
		router, st := newTestRouter(t)
		w, resp := doJSON(t, router, http.MethodDelete, "/v1/products/missing", nil)

		assert.Equal(t, 200, w.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, 5, st.Count())
	})
}

func TestCategoriesEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	_, resp := doJSON(t, router, http.MethodGet, "/v1/products/categories", nil)

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var categories []string
	require.NoError(t, json.Unmarshal(raw, &categories))
	assert.Equal(t, []string{"Electronics", "Clothing", "Home", "Groceries"}, categories)
}
