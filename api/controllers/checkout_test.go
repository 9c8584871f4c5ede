package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mobimart/mobimart-backend/internal/checkout"
	"github.com/mobimart/mobimart-backend/internal/notify"
)

const shippingJSON = `{"name":"Jane Doe","email":"jane@example.com","phone":"5550100","address":"1 Main St","city":"Springfield","state":"IL","zipcode":"62701"}`

func TestCheckoutCompleteEmptyCart(t *testing.T) {
	store := newCartStore(t)
	handler := CheckoutComplete(checkout.NewValidator(false), store, newTracker(t, &fakeOffers{}), notify.NopSink{}, testConfig(), nil)

	body := `{"shipping":` + shippingJSON + `,"paymentMethod":"cod"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an empty cart, got %d", rec.Code)
	}
}

func TestCheckoutCompleteClearsCart(t *testing.T) {
	store := newCartStore(t)
	tracker := newTracker(t, &fakeOffers{})
	cfg := testConfig()

	addReq := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":2,"quantity":1}`))
	CartAdd(store, tracker, cartFixtures(), notify.NopSink{}, cfg, nil)(httptest.NewRecorder(), addReq)

	handler := CheckoutComplete(checkout.NewValidator(false), store, tracker, notify.NopSink{}, cfg, nil)
	body := `{"shipping":` + shippingJSON + `,"paymentMethod":"upi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Summary struct {
			Subtotal float64 `json:"subtotal"`
			Total    float64 `json:"total"`
		} `json:"summary"`
	}
	decodeData(t, rec, &payload)
	if payload.Summary.Subtotal != 499 || payload.Summary.Total != 509 {
		t.Fatalf("unexpected summary: %+v", payload.Summary)
	}
	if store.Count() != 0 {
		t.Fatalf("expected cart cleared after checkout")
	}
}

func TestCheckoutCompleteMissingShippingField(t *testing.T) {
	store := newCartStore(t)
	tracker := newTracker(t, &fakeOffers{})
	cfg := testConfig()

	addReq := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":1,"quantity":1}`))
	CartAdd(store, tracker, cartFixtures(), notify.NopSink{}, cfg, nil)(httptest.NewRecorder(), addReq)

	handler := CheckoutComplete(checkout.NewValidator(false), store, tracker, notify.NopSink{}, cfg, nil)
	body := `{"shipping":{"name":"Jane Doe","email":"jane@example.com"},"paymentMethod":"cod"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if store.Count() == 0 {
		t.Fatalf("cart must survive a failed checkout")
	}
}

func TestCheckoutStrictRejectsInvalidCard(t *testing.T) {
	store := newCartStore(t)
	tracker := newTracker(t, &fakeOffers{})
	cfg := testConfig()

	addReq := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"productId":1,"quantity":1}`))
	CartAdd(store, tracker, cartFixtures(), notify.NopSink{}, cfg, nil)(httptest.NewRecorder(), addReq)

	handler := CheckoutComplete(checkout.NewValidator(true), store, tracker, notify.NopSink{}, cfg, nil)
	body := `{"shipping":` + shippingJSON + `,"paymentMethod":"creditCard","card":{"cardNumber":"4532015112830367","cardholderName":"Jane Doe","expiryDate":"1299","cvv":"123"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a failing checksum, got %d", rec.Code)
	}
}

func TestCardPreviewFormatsInput(t *testing.T) {
	handler := CardPreview(checkout.NewValidator(false), nil)

	body := `{"cardNumber":"4532015112830366","expiryDate":"1299"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/card-preview", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var form struct {
		CardNumber struct {
			Value string `json:"value"`
			State string `json:"state"`
		} `json:"cardNumber"`
		Expiry struct {
			Value string `json:"value"`
			State string `json:"state"`
		} `json:"expiryDate"`
		CVV struct {
			State string `json:"state"`
		} `json:"cvv"`
	}
	decodeData(t, rec, &form)
	if form.CardNumber.Value != "4532 0151 1283 0366" || form.CardNumber.State != "valid" {
		t.Fatalf("unexpected card number field: %+v", form.CardNumber)
	}
	if form.Expiry.Value != "12/99" || form.Expiry.State != "valid" {
		t.Fatalf("unexpected expiry field: %+v", form.Expiry)
	}
	if form.CVV.State != "untouched" {
		t.Fatalf("expected untouched cvv, got %+v", form.CVV)
	}
}
