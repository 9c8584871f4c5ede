package comparison

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/mobimart/mobimart-backend/internal/catalog"
	"github.com/mobimart/mobimart-backend/internal/storage"
	"github.com/mobimart/mobimart-backend/pkg/enums"
	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
	"github.com/mobimart/mobimart-backend/pkg/logger"
)

// MaxProducts is the fixed capacity of the comparison set.
const MaxProducts = 3

// Store owns the ordered, duplicate-free set of products selected for
// side-by-side comparison. Persistence semantics mirror the cart store:
// synchronous writes, tolerant hydration, last write wins across processes.
type Store struct {
	mu    sync.Mutex
	kv    storage.KV
	logg  *logger.Logger
	items []catalog.Product
}

// NewStore hydrates the comparison set from durable storage. Absent or
// corrupt storage yields an empty set.
func NewStore(ctx context.Context, kv storage.KV, logg *logger.Logger) (*Store, error) {
	if kv == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kv storage required")
	}
	s := &Store{kv: kv, logg: logg}
	s.hydrate(ctx)
	return s, nil
}

func (s *Store) hydrate(ctx context.Context) {
	raw, err := s.kv.Get(ctx, storage.KeyComparison)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) && s.logg != nil {
			s.logg.Error(ctx, "comparison hydration failed, starting empty", err)
		}
		return
	}
	var items []catalog.Product
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "corrupt comparison payload, resetting", pkgerrors.Wrap(pkgerrors.CodeStorage, err, "decode comparison"))
		}
		return
	}
	if len(items) > MaxProducts {
		items = items[:MaxProducts]
	}
	s.items = items
}

// Add appends the product unless it is already present or the set is at
// capacity; the outcome names which rule blocked a rejected add.
func (s *Store) Add(ctx context.Context, product catalog.Product) enums.ComparisonOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == product.ID {
			return enums.ComparisonDuplicate
		}
	}
	if len(s.items) >= MaxProducts {
		return enums.ComparisonFull
	}

	s.items = append(s.items, product)
	s.persist(ctx)
	return enums.ComparisonAdded
}

// Remove drops the matching entry if present. Idempotent.
func (s *Store) Remove(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persist(ctx)
}

// Clear empties the set.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// Contains is the membership predicate.
func (s *Store) Contains(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// CanAddMore reports whether the set is below capacity.
func (s *Store) CanAddMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) < MaxProducts
}

// Items returns a copy of the comparison set in insertion order.
func (s *Store) Items() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]catalog.Product, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []catalog.Product{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "encode comparison failed", err)
		}
		return
	}
	if err := s.kv.Set(ctx, storage.KeyComparison, string(payload)); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "persist comparison failed", pkgerrors.Wrap(pkgerrors.CodeStorage, err, "write comparison"))
		}
	}
}
