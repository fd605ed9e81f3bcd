package store

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/shelfwise/inventory-api/internal/models"
)

// persistedProduct is the on-disk shape of one record. Quantity and price
// tolerate string-encoded numbers because documents written by the legacy
// dashboard passed form values straight through; they are pointers so a
// record missing either field is detectable and rejected as corrupt rather
// than silently decoding to zero.
type persistedProduct struct {
	ID       string     `json:"id"`
	Barcode  string     `json:"barcode"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Quantity *flexInt   `json:"quantity"`
	Price    *flexFloat `json:"price"`
}

// flexInt decodes from a JSON number or a numeric string.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %s", data)
	}
	if n != math.Trunc(n) {
		return fmt.Errorf("not an integer: %s", data)
	}
	*f = flexInt(int(n))
	return nil
}

// flexFloat decodes from a JSON number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("not a number: %s", data)
	}
	*f = flexFloat(n)
	return nil
}

// decodeProducts parses a persisted inventory document. Any structural or
// semantic failure (negative numbers, missing identity, duplicate barcodes)
// marks the whole document corrupt so the caller falls back to seed data.
// Legacy records carry the barcode in the id field and no barcode field; they
// are migrated in place with a freshly minted surrogate id.
func decodeProducts(doc string) ([]models.Product, error) {
	var raw []persistedProduct
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, r := range raw {
		if r.Barcode == "" {
			// Legacy shape: id held the barcode.
			r.Barcode = r.ID
			r.ID = uuid.NewString()
		}
		if r.ID == "" || r.Barcode == "" || r.Name == "" {
			return nil, fmt.Errorf("record %d: missing identity or name", i)
		}
		if r.Quantity == nil || r.Price == nil {
			return nil, fmt.Errorf("record %d: missing quantity or price", i)
		}
		if *r.Quantity < 0 || *r.Price < 0 {
			return nil, fmt.Errorf("record %d: negative quantity or price", i)
		}
		if seen[r.Barcode] {
			return nil, fmt.Errorf("record %d: duplicate barcode %s", i, r.Barcode)
		}
		seen[r.Barcode] = true

		products = append(products, models.Product{
			ID:       r.ID,
			Barcode:  r.Barcode,
			Name:     r.Name,
			Category: r.Category,
			Quantity: int(*r.Quantity),
			Price:    float64(*r.Price),
		})
	}
	return products, nil
}

// encodeProducts serializes the full list as one JSON document.
func encodeProducts(products []models.Product) (string, error) {
	data, err := json.Marshal(products)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
