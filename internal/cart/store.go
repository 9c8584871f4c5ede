package cart

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

// Line is one (product, quantity) pairing. At most one line exists
// per product id; a quantity that drops to zero destroys the line.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Store owns the cart line collection. Every mutation persists the full
// collection synchronously before returning, so in-memory and persisted
// state never diverge between calls. One logical writer is assumed;
// concurrent processes are not coordinated and the last write wins.
type Store struct {
	mu    sync.Mutex
	kv    storage.KV
	logg  *logger.Logger
	items []Line
}

// NewStore hydrates the cart from durable storage. Absent or corrupt
// storage yields an empty cart, never an error.
func NewStore(ctx context.Context, kv storage.KV, logg *logger.Logger) (*Store, error) {
	if kv == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kv storage required")
	}
	s := &Store{kv: kv, logg: logg}
	s.hydrate(ctx)
	return s, nil
}

func (s *Store) hydrate(ctx context.Context) {
	raw, err := s.kv.Get(ctx, storage.KeyCart)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) && s.logg != nil {
			s.logg.Error(ctx, "cart hydration failed, starting empty", err)
		}
		return
	}
	var items []Line
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "corrupt cart payload, resetting", pkgerrors.Wrap(pkgerrors.CodeStorage, err, "decode cart"))
		}
		return
	}
	s.items = items
}

// Add merges quantity into an existing line for the product, or appends a
// new line. It reports whether the cart was updated or a line was added.
func (s *Store) Add(ctx context.Context, product catalog.Product, quantity int) enums.CartEvent {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := enums.CartEventAdded
	merged := false
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			event = enums.CartEventUpdated
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, Line{Product: product, Quantity: quantity})
	}

	s.persist(ctx)
	return event
}

// Remove deletes the line for the product id. Removing an absent line is
// a no-op; the removed event is reported either way.
func (s *Store) Remove(ctx context.Context, productID int) enums.CartEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(ctx, productID)
	return enums.CartEventRemoved
}

// UpdateQuantity sets the line's quantity to an absolute value. Zero or
// negative quantities remove the line.
func (s *Store) UpdateQuantity(ctx context.Context, productID, quantity int) enums.CartEvent {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist(ctx)
	return enums.CartEventUpdated
}

// Clear empties the collection.
func (s *Store) Clear(ctx context.Context) enums.CartEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
	return enums.CartEventCleared
}

// Items returns a copy of the line collection.
func (s *Store) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Line, len(s.items))
	copy(items, s.items)
	return items
}

// Total is the sum of price × quantity over all lines.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, line := range s.items {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// Count is the sum of line quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, line := range s.items {
		count += line.Quantity
	}
	return count
}

func (s *Store) removeLocked(ctx context.Context, productID int) {
	kept := s.items[:0]
	for _, line := range s.items {
		if line.Product.ID != productID {
			kept = append(kept, line)
		}
	}
	s.items = kept
	s.persist(ctx)
}

// persist writes the full line collection. Write failures are logged and
// never surfaced: in-memory state stays authoritative for this process.
func (s *Store) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []Line{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "encode cart failed", err)
		}
		return
	}
	if err := s.kv.Set(ctx, storage.KeyCart, string(payload)); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "persist cart failed", pkgerrors.Wrap(pkgerrors.CodeStorage, err, "write cart"))
		}
	}
}
