package controllers

import (
	"net/http"

	"github.com/mobimart/mobimart-backend/api/responses"
	"github.com/mobimart/mobimart-backend/api/validators"
	"github.com/mobimart/mobimart-backend/internal/catalog"
	"github.com/mobimart/mobimart-backend/internal/comparison"
	"github.com/mobimart/mobimart-backend/internal/notify"
	"github.com/mobimart/mobimart-backend/pkg/enums"
	"github.com/mobimart/mobimart-backend/pkg/logger"
)

type comparisonResponse struct {
	Items      []catalog.Product `json:"items"`
	CanAddMore bool              `json:"canAddMore"`
}

func buildComparisonResponse(store *comparison.Store) comparisonResponse {
	return comparisonResponse{
		Items:      store.Items(),
		CanAddMore: store.CanAddMore(),
	}
}

func ComparisonFetch(store *comparison.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, buildComparisonResponse(store))
	}
}

type comparisonAddRequest struct {
	ProductID int `json:"productId" validate:"required"`
}

func ComparisonAdd(store *comparison.Store, products catalog.Catalog, sink notify.Sink, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload comparisonAddRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := products.GetByID(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		outcome := store.Add(r.Context(), *product)
		if sink != nil {
			switch outcome {
			case enums.ComparisonAdded:
				sink.Success(r.Context(), product.Name+" added to comparison")
			case enums.ComparisonDuplicate:
				sink.Warning(r.Context(), product.Name+" is already being compared")
			case enums.ComparisonFull:
				sink.Warning(r.Context(), "you can compare up to 3 products")
			}
		}

		resp := buildComparisonResponse(store)
		responses.WriteSuccess(w, map[string]any{"outcome": outcome, "comparison": resp})
	}
}

func ComparisonRemove(store *comparison.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.Remove(r.Context(), productID)
		responses.WriteSuccess(w, buildComparisonResponse(store))
	}
}

func ComparisonClear(store *comparison.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.Clear(r.Context())
		responses.WriteSuccess(w, buildComparisonResponse(store))
	}
}
