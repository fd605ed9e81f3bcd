package models

import "github.com/google/uuid"

// StockStatus is a display-only classification derived from quantity.
type StockStatus string

const (
	StockStatusOut StockStatus = "out_of_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusIn  StockStatus = "in_stock"
)

// LowStockThreshold is the quantity below which a product counts as low stock.
const LowStockThreshold = 5

// Product represents one inventory record. ID is a surrogate key generated at
// creation and never edited; Barcode is the user-editable identifier carrying
// the uniqueness constraint.
type Product struct {
	ID       string  `json:"id"`
	Barcode  string  `json:"barcode"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Status classifies the product's stock level.
func (p Product) Status() StockStatus {
	switch {
	case p.Quantity == 0:
		return StockStatusOut
	case p.Quantity < LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// Seed returns the default catalog used when no persisted inventory exists or
// the stored document cannot be decoded. Barcodes are kept stable so existing
// labels keep scanning; surrogate IDs are minted fresh each time.
func Seed() []Product {
	return []Product{
		{ID: uuid.NewString(), Barcode: "1715623456789", Name: "Laptop", Category: "Electronics", Quantity: 15, Price: 999.99},
		{ID: uuid.NewString(), Barcode: "1715623456790", Name: "T-Shirt", Category: "Clothing", Quantity: 4, Price: 19.99},
		{ID: uuid.NewString(), Barcode: "1715623456791", Name: "Coffee Maker", Category: "Home", Quantity: 8, Price: 49.99},
		{ID: uuid.NewString(), Barcode: "1715623456792", Name: "Headphones", Category: "Electronics", Quantity: 3, Price: 149.99},
		{ID: uuid.NewString(), Barcode: "1715623456793", Name: "Apples", Category: "Groceries", Quantity: 50, Price: 0.99},
	}
}
