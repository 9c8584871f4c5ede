package controllers

import (
	"context"
	"net/http"

	"github.com/mobimart/mobimart-backend/api/responses"
	"github.com/mobimart/mobimart-backend/api/validators"
	"github.com/mobimart/mobimart-backend/internal/cart"
	"github.com/mobimart/mobimart-backend/internal/catalog"
	"github.com/mobimart/mobimart-backend/internal/discount"
	"github.com/mobimart/mobimart-backend/internal/notify"
	"github.com/mobimart/mobimart-backend/pkg/config"
	"github.com/mobimart/mobimart-backend/pkg/logger"
)

// OfferLister enumerates the storefront's advertised offers.
type OfferLister interface {
	ListAll(ctx context.Context) ([]catalog.Offer, error)
}

type discountApplyRequest struct {
	Code string `json:"code" validate:"required"`
}

// DiscountApply validates the code against the current cart subtotal and
// records the applied offer. The amount is fixed at application time; it
// does not recompute when the cart changes afterwards.
func DiscountApply(tracker *discount.Tracker, store *cart.Store, sink notify.Sink, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload discountApplyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		applied, err := tracker.Apply(r.Context(), payload.Code, store.Total())
		if err != nil {
			if sink != nil {
				sink.Error(r.Context(), "could not apply discount code")
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if sink != nil {
			sink.Success(r.Context(), "discount applied")
		}
		resp := buildCartResponse(store, tracker, cfg)
		responses.WriteSuccess(w, map[string]any{"applied": applied, "cart": resp})
	}
}

func DiscountRemove(tracker *discount.Tracker, store *cart.Store, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracker.Remove()
		responses.WriteSuccess(w, buildCartResponse(store, tracker, cfg))
	}
}

// OfferList exposes the storefront's advertised offers.
func OfferList(offers OfferLister, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := offers.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
