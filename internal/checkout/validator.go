package checkout

import (
	"time"

	"github.com/mobimart/mobimart-backend/pkg/enums"
	pkgerrors "github.com/mobimart/mobimart-backend/pkg/errors"
)

// Validator gates checkout completion. By default a selected card method
// only requires the method to be chosen, mirroring the storefront's
// behavior; strict mode additionally requires valid card details.
type Validator struct {
	strictCard bool
	now        func() time.Time
}

func NewValidator(strictCard bool) *Validator {
	return &Validator{strictCard: strictCard, now: time.Now}
}

// NewCardForm builds a card form sharing the validator's clock.
func (v *Validator) NewCardForm() *CardForm {
	return newCardForm(v.now)
}

// Complete checks everything checkout requires: a fully-filled shipping
// form and a selected payment method from the closed set. In strict mode
// a card method also requires its card details to be valid. card may be
// nil for non-card methods.
func (v *Validator) Complete(shipping *ShippingForm, method enums.PaymentMethod, card *CardForm) error {
	if shipping == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "shipping details required")
	}
	if err := shipping.Validate(); err != nil {
		return err
	}
	if !method.Valid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "please select a payment method")
	}
	if v.strictCard && method.IsCard() {
		if card == nil || !card.Valid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "card details are incomplete or invalid")
		}
	}
	return nil
}
