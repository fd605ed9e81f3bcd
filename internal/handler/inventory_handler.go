package handler

import (
	"errors"
	"math"

	"github.com/gin-gonic/gin"

	"github.com/shelfwise/inventory-api/internal/models"
	"github.com/shelfwise/inventory-api/internal/query"
	"github.com/shelfwise/inventory-api/internal/service"
	"github.com/shelfwise/inventory-api/internal/stats"
	"github.com/shelfwise/inventory-api/internal/store"
	"github.com/shelfwise/inventory-api/internal/utils"
)

// InventoryHandler exposes the product list, the derived view, and the
// summary statistics over HTTP.
type InventoryHandler struct {
	store     *store.Store
	inventory *service.InventoryService
}

// NewInventoryHandler constructs an InventoryHandler.
func NewInventoryHandler(st *store.Store, inventory *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{store: st, inventory: inventory}
}

// productView is one row of the rendered table: the product plus its
// display-only stock status.
type productView struct {
	models.Product
	Status models.StockStatus `json:"status"`
}

func toViews(products []models.Product) []productView {
	views := make([]productView, len(products))
	for i, p := range products {
		views[i] = productView{Product: p, Status: p.Status()}
	}
	return views
}

// ListProducts handles GET /v1/products?search=&category=&sort=&dir=
// Sort state lives with the client: a header activation feeds the previous
// state through query.Sort.Next and sends the outcome as sort/dir, so
// re-selecting a column toggles its direction and switching columns resets
// to ascending. An empty result is a valid outcome and returns an empty
// array, not an error.
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	srt := query.Sort{}
	if column := c.Query("sort"); column != "" {
		if !query.ValidColumn(column) {
			utils.Error(c, 400, "INVALID_SORT", "Unknown sort column")
			return
		}
		srt.Column = column
		srt.Direction = query.Ascending
		if c.Query("dir") == string(query.Descending) {
			srt.Direction = query.Descending
		}
	}

	view := query.View(h.store.GetAll(), c.Query("search"), c.Query("category"), srt)
	utils.Success(c, 200, "Products retrieved", toViews(view))
}

// GetProduct handles GET /v1/products/:id, used to pre-populate the edit form.
func (h *InventoryHandler) GetProduct(c *gin.Context) {
	p, ok := h.store.Get(c.Param("id"))
	if !ok {
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}
	utils.Success(c, 200, "Product retrieved", productView{Product: p, Status: p.Status()})
}

// GetCategories handles GET /v1/products/categories for the filter dropdown.
func (h *InventoryHandler) GetCategories(c *gin.Context) {
	utils.Success(c, 200, "Categories retrieved", h.inventory.Categories())
}

// GetStats handles GET /v1/stats. Total value is rounded to two decimals here,
// at the presentation boundary only.
func (h *InventoryHandler) GetStats(c *gin.Context) {
	summary := stats.Compute(h.store.GetAll())
	summary.TotalValue = math.Round(summary.TotalValue*100) / 100
	utils.Success(c, 200, "Stats retrieved", summary)
}

// CreateProduct handles POST /v1/products.
func (h *InventoryHandler) CreateProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	p, err := h.inventory.Create(c.Request.Context(), &input)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	utils.Success(c, 201, "Product added successfully", productView{Product: p, Status: p.Status()})
}

// UpdateProduct handles PUT /v1/products/:id. The full editable field set is
// replaced, barcode included; the surrogate id never changes.
func (h *InventoryHandler) UpdateProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	p, err := h.inventory.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		h.writeMutationError(c, err)
		return
	}
	utils.Success(c, 200, "Product updated successfully", productView{Product: p, Status: p.Status()})
}

// DeleteProduct handles DELETE /v1/products/:id. Deleting an unknown id is a
// documented no-op and still reports success.
func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	h.inventory.Delete(c.Request.Context(), c.Param("id"))
	utils.Success(c, 200, "Product deleted successfully", nil)
}

// writeMutationError maps editor errors onto envelope responses.
func (h *InventoryHandler) writeMutationError(c *gin.Context, err error) {
	if ve, ok := utils.AsValidationError(err); ok {
		utils.ErrorWithFields(c, 400, "VALIDATION_FAILED", "One or more fields are invalid", ve.Fields)
		return
	}
	switch {
	case errors.Is(err, utils.ErrDuplicateBarcode):
		utils.Error(c, 409, "DUPLICATE_BARCODE", "A product with this barcode already exists")
	case errors.Is(err, utils.ErrProductNotFound):
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to apply product change")
	}
}
