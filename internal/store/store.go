// Package store owns the authoritative in-memory product list and mirrors it
// write-through to the persistence collaborator after every mutation.
package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/shelfwise/inventory-api/internal/models"
	"github.com/shelfwise/inventory-api/internal/storage"
)

// Store holds the product list. The original dashboard ran single-threaded;
// under concurrent HTTP handlers an RWMutex keeps snapshot reads and
// write-through mutations atomic.
type Store struct {
	kv  storage.KV
	key string

	mu       sync.RWMutex
	products []models.Product
}

// New creates a Store over the given persistence backend and namespace key.
// Call Initialize before use.
func New(kv storage.KV, key string) *Store {
	return &Store{kv: kv, key: key}
}

// Initialize loads the persisted inventory. On absence or decode failure it
// falls back to the seed catalog. It never fails outward: the Store always
// ends up in a valid state.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok, err := s.kv.Load(ctx, s.key)
	if err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("inventory load failed, using seed data")
		s.products = models.Seed()
		return
	}
	if !ok {
		log.Info().Str("key", s.key).Msg("no persisted inventory, using seed data")
		s.products = models.Seed()
		return
	}

	products, err := decodeProducts(doc)
	if err != nil {
		log.Warn().Err(err).Str("key", s.key).Msg("persisted inventory corrupt, using seed data")
		s.products = models.Seed()
		return
	}
	s.products = products
	log.Info().Int("count", len(products)).Msg("inventory loaded")
}

// GetAll returns a snapshot copy of all products in insertion order.
func (s *Store) GetAll() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given surrogate id.
func (s *Store) Get(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// GetByBarcode returns the product carrying the given barcode.
func (s *Store) GetByBarcode(barcode string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Barcode == barcode {
			return p, true
		}
	}
	return models.Product{}, false
}

// Count returns the number of products.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Add appends a product and persists.
func (s *Store) Add(ctx context.Context, p models.Product) {
	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()
	s.persist(ctx)
}

// Replace swaps the product with the given id for p, keeping its position.
// It reports whether a product with that id existed.
func (s *Store) Replace(ctx context.Context, id string, p models.Product) bool {
	s.mu.Lock()
	replaced := false
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i] = p
			replaced = true
			break
		}
	}
	s.mu.Unlock()
	if replaced {
		s.persist(ctx)
	}
	return replaced
}

// Remove deletes the product with the given id. It reports whether a product
// was removed; removing an unknown id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	removed := false
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.persist(ctx)
	}
	return removed
}

// Persist writes the full list to the backend. Exposed for explicit flushes;
// mutations call it automatically.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.RLock()
	doc, err := encodeProducts(s.products)
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	return s.kv.Save(ctx, s.key, doc)
}

// persist is the fire-and-forget write-through after a mutation: failures are
// logged, never propagated.
func (s *Store) persist(ctx context.Context) {
	if err := s.Persist(ctx); err != nil {
		log.Error().Err(err).Str("key", s.key).Msg("inventory persist failed")
	}
}
