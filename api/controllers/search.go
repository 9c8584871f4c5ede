package controllers

import (
	"net/http"

	"github.com/mobimart/mobimart-backend/api/responses"
	"github.com/mobimart/mobimart-backend/api/validators"
	"github.com/mobimart/mobimart-backend/internal/catalog"
	"github.com/mobimart/mobimart-backend/internal/filter"
	"github.com/mobimart/mobimart-backend/internal/search"
	"github.com/mobimart/mobimart-backend/pkg/logger"
)

// ProductSearch runs a catalog search and records the term in the
// recent-search history.
func ProductSearch(products catalog.Catalog, engine *filter.Engine, recent *search.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := validators.SanitizeString(r.URL.Query().Get("q"), maxSearchQueryLen)

		list, err := products.ListAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		matches := engine.Search(list, query)
		if recent != nil {
			recent.Record(r.Context(), query)
		}
		responses.WriteSuccess(w, matches)
	}
}

func RecentSearches(recent *search.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, recent.Terms())
	}
}

func RecentSearchesClear(recent *search.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recent.Clear(r.Context())
		responses.WriteSuccess(w, []string{})
	}
}
