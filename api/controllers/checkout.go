package controllers

import (
	"net/http"

	"github.com/mobimart/mobimart-backend/api/responses"
	"github.com/mobimart/mobimart-backend/api/validators"
	"github.com/mobimart/mobimart-backend/internal/cart"
	"github.com/mobimart/mobimart-backend/internal/checkout"
	"github.com/mobimart/mobimart-backend/internal/discount"
	"github.com/mobimart/mobimart-backend/internal/notify"
	"github.com/mobimart/mobimart-backend/pkg/config"
	"github.com/mobimart/mobimart-backend/pkg/enums"
	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
	"github.com/mobimart/mobimart-backend/pkg/logger"
)

type cardDetailsRequest struct {
	CardNumber     string `json:"cardNumber"`
	CardholderName string `json:"cardholderName"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
}

type checkoutRequest struct {
	Shipping      checkout.ShippingForm `json:"shipping"`
	PaymentMethod enums.PaymentMethod   `json:"paymentMethod" validate:"required"`
	Card          *cardDetailsRequest   `json:"card,omitempty"`
}

type checkoutResponse struct {
	Summary cart.Summary `json:"summary"`
}

// CheckoutComplete validates shipping and payment input against the
// current cart and, on success, empties the cart and drops any applied
// discount.
func CheckoutComplete(validator *checkout.Validator, store *cart.Store, tracker *discount.Tracker, sink notify.Sink, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if store.Count() == 0 {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "your cart is empty"))
			return
		}

		var card *checkout.CardForm
		if payload.Card != nil {
			card = validator.NewCardForm()
			card.SetNumber(payload.Card.CardNumber)
			card.SetCardholder(payload.Card.CardholderName)
			card.SetExpiry(payload.Card.ExpiryDate)
			card.SetCVV(payload.Card.CVV)
		}

		if err := validator.Complete(&payload.Shipping, payload.PaymentMethod, card); err != nil {
			if sink != nil {
				sink.Error(r.Context(), "please review your checkout details")
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var discountAmount float64
		if tracker != nil {
			discountAmount = tracker.Amount()
		}
		summary := store.Summarize(cfg.Cart.ShippingFlat, discountAmount)

		store.Clear(r.Context())
		if tracker != nil {
			tracker.Remove()
		}
		if sink != nil {
			sink.Success(r.Context(), "order placed successfully")
		}

		responses.WriteSuccess(w, checkoutResponse{Summary: summary})
	}
}

// CardPreview formats and validates card fields without completing a
// checkout, mirroring the storefront's per-keystroke feedback.
func CardPreview(validator *checkout.Validator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cardDetailsRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		form := validator.NewCardForm()
		if payload.CardNumber != "" {
			form.SetNumber(payload.CardNumber)
		}
		if payload.CardholderName != "" {
			form.SetCardholder(payload.CardholderName)
		}
		if payload.ExpiryDate != "" {
			form.SetExpiry(payload.ExpiryDate)
		}
		if payload.CVV != "" {
			form.SetCVV(payload.CVV)
		}

		responses.WriteSuccess(w, form)
	}
}
