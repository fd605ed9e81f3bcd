package service

import (
	"context"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/shelfwise/inventory-api/internal/models"
	"github.com/shelfwise/inventory-api/internal/store"
	"github.com/shelfwise/inventory-api/internal/utils"
)

// InventoryService validates and applies product mutations. It is the only
// writer to the Store. mu serializes mutations so the duplicate-barcode check
// and the write it guards form one critical section under concurrent handlers;
// without it two simultaneous creates with the same barcode could both pass
// the check before either appends.
type InventoryService struct {
	store *store.Store
	mu    sync.Mutex
}

// NewInventoryService constructs an InventoryService.
func NewInventoryService(st *store.Store) *InventoryService {
	return &InventoryService{store: st}
}

// ProductInput carries the editable field set of a product form submission.
// Quantity and Price are pointers so a missing field is distinguishable from
// an explicit zero.
type ProductInput struct {
	Barcode  string   `json:"barcode"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Quantity *int     `json:"quantity"`
	Price    *float64 `json:"price"`
}

// Validate checks the input without touching any state. All field violations
// are aggregated into a single ValidationError.
func (s *InventoryService) Validate(input *ProductInput) error {
	fields := map[string]string{}
	if input.Barcode == "" {
		fields["barcode"] = "barcode is required"
	}
	if input.Name == "" {
		fields["name"] = "name is required"
	}
	if input.Category == "" {
		fields["category"] = "category is required"
	}
	switch {
	case input.Quantity == nil:
		fields["quantity"] = "quantity is required"
	case *input.Quantity < 0:
		fields["quantity"] = "quantity must be a non-negative integer"
	}
	switch {
	case input.Price == nil:
		fields["price"] = "price is required"
	case *input.Price < 0 || math.IsNaN(*input.Price) || math.IsInf(*input.Price, 0):
		fields["price"] = "price must be a non-negative number"
	}
	if len(fields) > 0 {
		return &utils.ValidationError{Fields: fields}
	}
	return nil
}

// Create validates the input and appends a new product with a fresh surrogate
// id. The barcode must not collide with any existing product.
func (s *InventoryService) Create(ctx context.Context, input *ProductInput) (models.Product, error) {
	if err := s.Validate(input); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.barcodeTaken(input.Barcode, "") {
		return models.Product{}, utils.ErrDuplicateBarcode
	}

	p := models.Product{
		ID:       uuid.NewString(),
		Barcode:  input.Barcode,
		Name:     input.Name,
		Category: input.Category,
		Quantity: *input.Quantity,
		Price:    *input.Price,
	}
	s.store.Add(ctx, p)
	log.Info().Str("product_id", p.ID).Str("barcode", p.Barcode).Msg("product created")
	return p, nil
}

// Update validates the input and replaces the full editable field set of the
// product with the given id. The barcode may change but must not collide with
// any other product. The surrogate id never changes.
func (s *InventoryService) Update(ctx context.Context, id string, input *ProductInput) (models.Product, error) {
	if err := s.Validate(input); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.store.Get(id); !ok {
		return models.Product{}, utils.ErrProductNotFound
	}
	if s.barcodeTaken(input.Barcode, id) {
		return models.Product{}, utils.ErrDuplicateBarcode
	}

	p := models.Product{
		ID:       id,
		Barcode:  input.Barcode,
		Name:     input.Name,
		Category: input.Category,
		Quantity: *input.Quantity,
		Price:    *input.Price,
	}
	if !s.store.Replace(ctx, id, p) {
		return models.Product{}, utils.ErrProductNotFound
	}
	log.Info().Str("product_id", id).Str("barcode", p.Barcode).Msg("product updated")
	return p, nil
}

// Delete removes the product with the given id. Deleting an unknown id is a
// documented no-op: the UI only offers delete against a rendered row.
func (s *InventoryService) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.Remove(ctx, id) {
		log.Info().Str("product_id", id).Msg("product deleted")
	} else {
		log.Debug().Str("product_id", id).Msg("delete of unknown product ignored")
	}
}

// Categories returns the distinct categories currently in the catalog, in
// first-appearance order, for the filter dropdown.
func (s *InventoryService) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.store.GetAll() {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// barcodeTaken reports whether any product other than excludeID carries the
// barcode.
func (s *InventoryService) barcodeTaken(barcode, excludeID string) bool {
	p, ok := s.store.GetByBarcode(barcode)
	return ok && p.ID != excludeID
}
