// Package stats computes the dashboard summary figures. Everything is
// recomputed in full from the current list; at this data scale incremental
// maintenance buys nothing.
package stats

import "github.com/shelfwise/inventory-api/internal/models"

// Summary holds the aggregate figures shown above the product table.
// TotalValue is kept at full precision; rounding to two decimals happens at
// the response boundary only.
type Summary struct {
	TotalValue    float64 `json:"totalValue"`
	LowStockCount int     `json:"lowStockCount"`
	ProductCount  int     `json:"productCount"`
}

// Compute derives the summary from the full product list. ProductCount is the
// total number of records, not the number of distinct categories.
func Compute(records []models.Product) Summary {
	var total float64
	low := 0
	for _, p := range records {
		total += p.Price * float64(p.Quantity)
		if p.Quantity < models.LowStockThreshold {
			low++
		}
	}
	return Summary{
		TotalValue:    total,
		LowStockCount: low,
		ProductCount:  len(records),
	}
}
