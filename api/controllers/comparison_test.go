package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/mobimart/mobimart-backend/internal/catalog"
	"github.com/mobimart/mobimart-backend/internal/comparison"
	"github.com/mobimart/mobimart-backend/internal/notify"
	"github.com/mobimart/mobimart-backend/internal/storage"
)

func newComparisonStore(t *testing.T) *comparison.Store {
	t.Helper()
	store, err := comparison.NewStore(context.Background(), storage.NewMemory(), nil)
	if err != nil {
		t.Fatalf("unexpected comparison store error: %v", err)
	}
	return store
}

func comparisonFixtures() *fakeCatalog {
	return &fakeCatalog{products: []catalog.Product{
		{ID: 1, Name: "iPhone 15"},
		{ID: 2, Name: "Galaxy S24"},
		{ID: 3, Name: "Pixel 8a"},
		{ID: 4, Name: "Redmi Note 13"},
	}}
}

func addToComparison(t *testing.T, store *comparison.Store, products *fakeCatalog, id int) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/comparison/items", strings.NewReader(`{"productId":`+strconv.Itoa(id)+`}`))
	rec := httptest.NewRecorder()
	ComparisonAdd(store, products, notify.NopSink{}, nil)(rec, req)
	return rec
}

func TestComparisonAddReportsOutcomes(t *testing.T) {
	store := newComparisonStore(t)
	products := comparisonFixtures()

	var payload struct {
		Outcome    string `json:"outcome"`
		Comparison struct {
			CanAddMore bool `json:"canAddMore"`
		} `json:"comparison"`
	}

	rec := addToComparison(t, store, products, 1)
	decodeData(t, rec, &payload)
	if payload.Outcome != "added" {
		t.Fatalf("expected added, got %q", payload.Outcome)
	}

	rec = addToComparison(t, store, products, 1)
	decodeData(t, rec, &payload)
	if payload.Outcome != "duplicate" {
		t.Fatalf("expected duplicate, got %q", payload.Outcome)
	}

	addToComparison(t, store, products, 2)
	rec = addToComparison(t, store, products, 3)
	decodeData(t, rec, &payload)
	if payload.Comparison.CanAddMore {
		t.Fatalf("expected full set after three adds")
	}

	rec = addToComparison(t, store, products, 4)
	decodeData(t, rec, &payload)
	if payload.Outcome != "full" {
		t.Fatalf("expected full, got %q", payload.Outcome)
	}
	if len(store.Items()) != 3 {
		t.Fatalf("fourth add must not grow the set, got %d items", len(store.Items()))
	}
}

func TestComparisonRemoveAndClear(t *testing.T) {
	store := newComparisonStore(t)
	products := comparisonFixtures()
	addToComparison(t, store, products, 1)
	addToComparison(t, store, products, 2)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/comparison/items/1", nil)
	req = withURLParam(req, "productId", "1")
	rec := httptest.NewRecorder()
	ComparisonRemove(store, nil)(rec, req)

	var payload struct {
		Items []catalog.Product `json:"items"`
	}
	decodeData(t, rec, &payload)
	if len(payload.Items) != 1 || payload.Items[0].ID != 2 {
		t.Fatalf("unexpected items after remove: %+v", payload.Items)
	}

	rec = httptest.NewRecorder()
	ComparisonClear(store)(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/comparison", nil))
	decodeData(t, rec, &payload)
	if len(payload.Items) != 0 {
		t.Fatalf("expected empty comparison after clear")
	}
}
