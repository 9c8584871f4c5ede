package discount

import (
	"context"
	"time"

	"github.com/mobimart/mobimart-backend/internal/catalog"
	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
)

// Applied is the result of applying a discount code. The amount is
// computed once against the subtotal given at application time; callers
// must re-apply to refresh after the subtotal changes.
type Applied struct {
	Offer  catalog.Offer `json:"offer"`
	Amount float64       `json:"amount"`
}

// Engine validates discount codes against the offer collaborator. The
// engine is stateless across calls; applied-discount state lives in the
// caller (see Tracker).
type Engine struct {
	offers catalog.OfferLookup
	now    func() time.Time
}

// NewEngine builds a discount engine backed by the offer lookup.
func NewEngine(offers catalog.OfferLookup) (*Engine, error) {
	if offers == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "offer lookup required")
	}
	return &Engine{offers: offers, now: time.Now}, nil
}

// ApplyCode resolves the code (exact, case-sensitive) and computes the
// discount amount for the subtotal. Unknown codes fail with NOT_FOUND;
// offers outside their validity window fail with OFFER_EXPIRED.
func (e *Engine) ApplyCode(ctx context.Context, code string, subtotal float64) (*Applied, error) {
	offer, err := e.offers.GetByCode(ctx, code)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "look up offer")
	}
	if offer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "invalid discount code")
	}
	if !offer.ValidAt(e.now()) {
		return nil, pkgerrors.New(pkgerrors.CodeExpired, "this offer has expired")
	}

	return &Applied{
		Offer:  *offer,
		Amount: subtotal * offer.DiscountPercentage / 100,
	}, nil
}
