package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mobimart/mobimart-backend/api/responses"
	"github.com/mobimart/mobimart-backend/api/validators"
	"github.com/mobimart/mobimart-backend/internal/cart"
	"github.com/mobimart/mobimart-backend/internal/catalog"
	"github.com/mobimart/mobimart-backend/internal/discount"
	"github.com/mobimart/mobimart-backend/internal/notify"
	"github.com/mobimart/mobimart-backend/pkg/config"
	"github.com/mobimart/mobimart-backend/pkg/enums"
	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
	"github.com/mobimart/mobimart-backend/pkg/logger"
)

type cartResponse struct {
	Items   []cart.Line  `json:"items"`
	Count   int          `json:"count"`
	Summary cart.Summary `json:"summary"`
}

func buildCartResponse(store *cart.Store, tracker *discount.Tracker, cfg *config.Config) cartResponse {
	var discountAmount float64
	if tracker != nil {
		discountAmount = tracker.Amount()
	}
	return cartResponse{
		Items:   store.Items(),
		Count:   store.Count(),
		Summary: store.Summarize(cfg.Cart.ShippingFlat, discountAmount),
	}
}

func CartFetch(store *cart.Store, tracker *discount.Tracker, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, buildCartResponse(store, tracker, cfg))
	}
}

type cartAddRequest struct {
	ProductID int `json:"productId" validate:"required"`
	Quantity  int `json:"quantity"`
}

func CartAdd(store *cart.Store, tracker *discount.Tracker, products catalog.Catalog, sink notify.Sink, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := products.GetByID(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event := store.Add(r.Context(), *product, payload.Quantity)
		if sink != nil {
			if event == enums.CartEventAdded {
				sink.Success(r.Context(), product.Name+" added to cart")
			} else {
				sink.Info(r.Context(), product.Name+" quantity updated")
			}
		}

		resp := buildCartResponse(store, tracker, cfg)
		responses.WriteSuccess(w, map[string]any{"event": event, "cart": resp})
	}
}

type cartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func CartUpdateQuantity(store *cart.Store, tracker *discount.Tracker, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event := store.UpdateQuantity(r.Context(), productID, payload.Quantity)
		resp := buildCartResponse(store, tracker, cfg)
		responses.WriteSuccess(w, map[string]any{"event": event, "cart": resp})
	}
}

func CartRemove(store *cart.Store, tracker *discount.Tracker, sink notify.Sink, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event := store.Remove(r.Context(), productID)
		if sink != nil {
			sink.Info(r.Context(), "item removed from cart")
		}
		resp := buildCartResponse(store, tracker, cfg)
		responses.WriteSuccess(w, map[string]any{"event": event, "cart": resp})
	}
}

func CartClear(store *cart.Store, tracker *discount.Tracker, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event := store.Clear(r.Context())
		if tracker != nil {
			tracker.Remove()
		}
		resp := buildCartResponse(store, tracker, cfg)
		responses.WriteSuccess(w, map[string]any{"event": event, "cart": resp})
	}
}

func productIDParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "product id must be a positive integer")
	}
	return id, nil
}
