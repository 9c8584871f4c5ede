package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mobimart/mobimart-backend/internal/cart"
	"github.com/mobimart/mobimart-backend/internal/catalog"
	"github.com/mobimart/mobimart-backend/internal/discount"
	"github.com/mobimart/mobimart-backend/internal/storage"
	"github.com/mobimart/mobimart-backend/pkg/config"
	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
)

type fakeCatalog struct {
	products []catalog.Product
	err      error
}

func (f *fakeCatalog) ListAll(context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalog) GetByID(_ context.Context, id int) (*catalog.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

func (f *fakeCatalog) ListByCategory(_ context.Context, category string) ([]catalog.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []catalog.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalog) Search(_ context.Context, _ string) ([]catalog.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalog) Filter(_ context.Context, _ catalog.Criteria) ([]catalog.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalog) ListFeatured(context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalog) ListTrending(context.Context) ([]catalog.Product, error) {
	return f.products, f.err
}

type fakeOffers struct {
	offers []catalog.Offer
	err    error
}

func (f *fakeOffers) GetByCode(_ context.Context, code string) (*catalog.Offer, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.offers {
		if f.offers[i].Code == code {
			return &f.offers[i], nil
		}
	}
	return nil, nil
}

func (f *fakeOffers) ListAll(context.Context) ([]catalog.Offer, error) {
	return f.offers, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		App:  config.AppConfig{Env: "dev", Port: "8080"},
		Cart: config.CartConfig{ShippingFlat: 10},
	}
}

func newCartStore(t *testing.T) *cart.Store {
	t.Helper()
	store, err := cart.NewStore(context.Background(), storage.NewMemory(), nil)
	if err != nil {
		t.Fatalf("unexpected cart store error: %v", err)
	}
	return store
}

func newTracker(t *testing.T, offers *fakeOffers) *discount.Tracker {
	t.Helper()
	engine, err := discount.NewEngine(offers)
	if err != nil {
		t.Fatalf("unexpected discount engine error: %v", err)
	}
	return discount.NewTracker(engine)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unexpected response body: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		t.Fatalf("unexpected data payload: %v", err)
	}
}
