package controllers

import (
	"net/http"
	"strings"

	"github.com/mobimart/mobimart-backend/api/responses"
	"github.com/mobimart/mobimart-backend/api/validators"
	"github.com/mobimart/mobimart-backend/internal/catalog"
	"github.com/mobimart/mobimart-backend/internal/filter"
	"github.com/mobimart/mobimart-backend/pkg/enums"
	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
	"github.com/mobimart/mobimart-backend/pkg/logger"
)

const (
	maxSearchQueryLen  = 120
	maxProductListSize = 100
)

// ProductList serves the catalog listing with optional category, search,
// sort and limit query parameters, applied in that order.
func ProductList(products catalog.Catalog, engine *filter.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := validators.SanitizeString(r.URL.Query().Get("category"), maxSearchQueryLen)
		query := validators.SanitizeString(r.URL.Query().Get("q"), maxSearchQueryLen)
		sortKey := enums.SortKey(strings.TrimSpace(r.URL.Query().Get("sort")))

		// limit=0 means unbounded.
		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, maxProductListSize)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if sortKey == "" {
			sortKey = enums.SortFeatured
		}
		if !sortKey.Valid() {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "unknown sort key").WithDetails(map[string]any{"sort": string(sortKey)}))
			return
		}

		var list []catalog.Product
		if category != "" {
			list, err = products.ListByCategory(r.Context(), category)
		} else {
			list, err = products.ListAll(r.Context())
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if query != "" {
			list = engine.Search(list, query)
		}
		list = engine.Sort(list, sortKey)
		if limit > 0 && len(list) > limit {
			list = list[:limit]
		}

		responses.WriteSuccess(w, list)
	}
}

func ProductDetail(products catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := productIDParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := products.GetByID(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

type productFilterRequest struct {
	Criteria catalog.Criteria `json:"criteria"`
	Sort     enums.SortKey    `json:"sort"`
}

// ProductFilter narrows the full catalog by the posted criteria, then
// sorts the survivors.
func ProductFilter(products catalog.Catalog, engine *filter.Engine, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload productFilterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Sort == "" {
			payload.Sort = enums.SortFeatured
		}
		if !payload.Sort.Valid() {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "unknown sort key").WithDetails(map[string]any{"sort": string(payload.Sort)}))
			return
		}

		list, err := products.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list = engine.Filter(list, payload.Criteria)
		list = engine.Sort(list, payload.Sort)
		responses.WriteSuccess(w, list)
	}
}

func ProductFeatured(products catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := products.ListFeatured(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func ProductTrending(products catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := products.ListTrending(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
