package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelfwise/inventory-api/internal/models"
)

func TestCompute(t *testing.T) {
	t.Run("SeedCatalog", func(t *testing.T) {
		records := []models.Product{
			{Name: "Laptop", Quantity: 15, Price: 999.99},
			{Name: "T-Shirt", Quantity: 4, Price: 19.99},
			{Name: "Coffee Maker", Quantity: 8, Price: 49.99},
			{Name: "Headphones", Quantity: 3, Price: 149.99},
			{Name: "Apples", Quantity: 50, Price: 0.99},
		}

		s := Compute(records)

		assert.InDelta(t, 15*999.99+4*19.99+8*49.99+3*149.99+50*0.99, s.TotalValue, 1e-9)
		assert.Equal(t, 2, s.LowStockCount)
		assert.Equal(t, 5, s.ProductCount)
	})

	t.Run("ZeroQuantityCountsAsLowStock", func(t *testing.T) {
		records := []models.Product{
			{Name: "Gone", Quantity: 0, Price: 10},
			{Name: "Plenty", Quantity: 100, Price: 1},
		}

		s := Compute(records)

		assert.Equal(t, 1, s.LowStockCount)
		assert.InDelta(t, 100.0, s.TotalValue, 1e-9)
	})

	t.Run("ThresholdIsExclusive", func(t *testing.T) {
		records := []models.Product{
			{Name: "AtThreshold", Quantity: models.LowStockThreshold, Price: 1},
			{Name: "JustBelow", Quantity: models.LowStockThreshold - 1, Price: 1},
		}

		s := Compute(records)

		assert.Equal(t, 1, s.LowStockCount)
	})

	t.Run("EmptyList", func(t *testing.T) {
		s := Compute(nil)

		assert.Zero(t, s.TotalValue)
		assert.Zero(t, s.LowStockCount)
		assert.Zero(t, s.ProductCount)
	})
}

func TestStockStatus(t *testing.T) {
	assert.Equal(t, models.StockStatusOut, models.Product{Quantity: 0}.Status())
	assert.Equal(t, models.StockStatusLow, models.Product{Quantity: 4}.Status())
	assert.Equal(t, models.StockStatusIn, models.Product{Quantity: 5}.Status())
}
